package urlutil

import (
	"testing"

	"github.com/law-makers/appraiser/pkg/models"
)

func TestValidate(t *testing.T) {
	valid := []string{
		"http://example.com",
		"https://example.com/path",
	}
	for _, u := range valid {
		if err := ValidateURL(u); err != nil {
			t.Fatalf("expected valid, got error: %v", err)
		}
	}

	invalid := []string{"ftp://example.com", "//example.com", "http:///"}
	for _, u := range invalid {
		if err := ValidateURL(u); err == nil {
			t.Fatalf("expected invalid for %s", u)
		}
	}
}

func TestResolveURL(t *testing.T) {
	base := "https://www.leepa.org/Display/DisplayParcel.aspx?FolioID=1"
	tests := map[string]string{
		"/Docs/123.pdf":             "https://www.leepa.org/Docs/123.pdf",
		"Deed.aspx?id=5":            "https://www.leepa.org/Display/Deed.aspx?id=5",
		"https://or.leeclerk.org/x": "https://or.leeclerk.org/x",
	}
	for href, want := range tests {
		if got := ResolveURL(base, href); got != want {
			t.Errorf("ResolveURL(%q) = %q, want %q", href, got, want)
		}
	}
	if got := ResolveURL("", "/a.pdf"); got != "/a.pdf" {
		t.Errorf("expected relative href kept without base, got %q", got)
	}
}

func TestResolveFileLinks(t *testing.T) {
	p := &models.Parcel{
		Source: models.Provenance{SourceHTTPRequest: &models.SourceHTTPRequest{URL: "https://example.com/parcel/view"}},
		Sales: []models.SaleRecord{
			{File: &models.File{OriginalURL: models.String("../docs/1.pdf")}},
			{},
		},
	}
	ResolveFileLinks(p)
	if got := *p.Sales[0].File.OriginalURL; got != "https://example.com/docs/1.pdf" {
		t.Errorf("unexpected resolved link %q", got)
	}
}
