// Package extract holds the goquery lookups shared by every county extractor.
package extract

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/law-makers/appraiser/internal/text"
)

// Parse reads an HTML page into a goquery document.
func Parse(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, NewError(ErrCodeParse, "failed to parse HTML", err)
	}
	return doc, nil
}

// ParseString is Parse over an in-memory page.
func ParseString(html string) (*goquery.Document, error) {
	return Parse(strings.NewReader(html))
}

const labelSelector = "th, td, dt, span, label, div, b, strong"

func normalizeLabel(s string) string {
	s = text.Upper(s)
	return strings.TrimSpace(strings.TrimSuffix(s, ":"))
}

// LabelCell finds the element holding the value for a label, e.g. the td next
// to <th>Year Built:</th>. Labels are compared case-insensitively with any
// trailing colon removed; the first label with a non-empty value wins.
func LabelCell(root *goquery.Selection, labels ...string) *goquery.Selection {
	want := make(map[string]bool, len(labels))
	for _, l := range labels {
		want[normalizeLabel(l)] = true
	}

	var found *goquery.Selection
	root.Find(labelSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !want[normalizeLabel(s.Text())] {
			return true
		}
		value := s.Next()
		if goquery.NodeName(s) == "dt" {
			value = s.NextFiltered("dd")
		}
		if value.Length() == 0 || text.Clean(value.Text()) == "" {
			return true
		}
		found = value
		return false
	})
	return found
}

// LabelValue returns the cleaned text of LabelCell, or "" when absent.
func LabelValue(root *goquery.Selection, labels ...string) string {
	cell := LabelCell(root, labels...)
	if cell == nil {
		return ""
	}
	return text.Clean(cell.Text())
}

// ByID returns the cleaned text of #id.
func ByID(root *goquery.Selection, id string) string {
	return text.Clean(root.Find("#" + id).First().Text())
}

// Heading finds the first short element whose text contains heading.
func Heading(root *goquery.Selection, heading string) *goquery.Selection {
	want := text.Upper(heading)
	var found *goquery.Selection
	root.Find("h1, h2, h3, h4, h5, h6, caption, legend, div, span, p, td, th").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		t := text.Upper(s.Text())
		if len(t) > 80 || !strings.Contains(t, want) {
			return true
		}
		// prefer the innermost element carrying the heading text
		if s.Children().Length() > 0 && strings.Contains(text.Upper(s.Children().First().Text()), want) {
			return true
		}
		found = s
		return false
	})
	return found
}

// SectionAfter returns the first element matching selector that follows a
// heading. When the heading is wrapped (e.g. <h3><span>Sales</span></h3>) the
// search climbs a few ancestors.
func SectionAfter(root *goquery.Selection, heading, selector string) *goquery.Selection {
	h := Heading(root, heading)
	if h == nil {
		return nil
	}
	if goquery.NodeName(h) == "caption" {
		return h.Closest("table")
	}
	for depth := 0; depth < 4 && h.Length() > 0; depth++ {
		if next := h.NextAllFiltered(selector).First(); next.Length() > 0 {
			return next
		}
		if next := h.NextAll().Find(selector).First(); next.Length() > 0 {
			return next
		}
		h = h.Parent()
	}
	return nil
}
