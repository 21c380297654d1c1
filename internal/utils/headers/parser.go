// Package headers parses repeated --header "Key: Value" flags.
package headers

import (
	"fmt"
	"net/http"
	"strings"
)

// Parse converts "Key: Value" strings into an http.Header. Repeated keys add
// values; an entry without a colon or with an empty key is an error.
func Parse(h []string) (http.Header, error) {
	out := make(http.Header, len(h))
	for _, hdr := range h {
		key, value, ok := strings.Cut(hdr, ":")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid header %q, want \"Key: Value\"", hdr)
		}
		out.Add(key, strings.TrimSpace(value))
	}
	return out, nil
}

// Apply sets every header on req, replacing existing values for those keys.
func Apply(req *http.Request, h http.Header) {
	for k, vs := range h {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
}
