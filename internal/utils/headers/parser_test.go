package headers

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	out, err := Parse([]string{"User-Agent: Bot", "accept: text/html", "Cookie: a=1", "Cookie: b=2", "X-Empty:"})
	if err != nil {
		t.Fatal(err)
	}
	want := http.Header{
		"User-Agent": {"Bot"},
		"Accept":     {"text/html"},
		"Cookie":     {"a=1", "b=2"},
		"X-Empty":    {""},
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"BadHeader", ": value"} {
		if _, err := Parse([]string{in}); err == nil {
			t.Errorf("Parse(%q) expected error", in)
		}
	}
}

func TestApply(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
	req.Header.Set("User-Agent", "default")
	Apply(req, http.Header{"User-Agent": {"custom"}, "Referer": {"http://example.com/search"}})

	if got := req.Header.Get("User-Agent"); got != "custom" {
		t.Errorf("User-Agent = %q", got)
	}
	if got := req.Header.Get("Referer"); got != "http://example.com/search" {
		t.Errorf("Referer = %q", got)
	}
}
