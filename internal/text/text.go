// Package text normalizes the strings scraped out of appraiser pages.
package text

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	spaceRe      = regexp.MustCompile(`\s+`)
	numberRe     = regexp.MustCompile(`-?\d[\d,]*(?:\.\d+)?|-?\.\d+`)
	apostropheRe = regexp.MustCompile(`\b([OD])'([a-z])`)
	hyphenRe     = regexp.MustCompile(`-([a-z])`)
	macRe        = regexp.MustCompile(`\bMc([a-z])`)
)

// Clean collapses all whitespace (including non-breaking spaces) and trims.
func Clean(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// Upper cleans and upper-cases s.
func Upper(s string) string {
	return strings.ToUpper(Clean(s))
}

// Money parses a currency amount. Parenthesised amounts and a leading minus
// before the currency sign are negative. Blank or non-numeric input returns nil.
func Money(s string) *float64 {
	s = Clean(s)
	if s == "" {
		return nil
	}
	negative := strings.HasPrefix(s, "-") || strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")
	m := numberRe.FindString(s)
	if m == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil {
		return nil
	}
	if negative && f > 0 {
		f = -f
	}
	f = math.Round(f*100) / 100
	return &f
}

// Float parses the first number in s.
func Float(s string) *float64 {
	m := numberRe.FindString(Clean(s))
	if m == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil {
		return nil
	}
	return &f
}

// Int parses the first number in s, truncating any fraction.
func Int(s string) *int {
	f := Float(s)
	if f == nil {
		return nil
	}
	i := int(*f)
	return &i
}

var dateLayouts = []string{
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"01/02/06",
	"2006-01-02",
	"01-02-2006",
	"1-2-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"02-Jan-2006",
	"20060102",
}

// Date converts the supported date layouts into YYYY-MM-DD.
func Date(s string) (string, bool) {
	s = Clean(s)
	if s == "" {
		return "", false
	}
	// Some pages append a time of day.
	if i := strings.Index(s, " "); i > 0 && strings.Contains(s[i:], ":") {
		s = s[:i]
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// DatePtr is Date returning nil when s does not parse.
func DatePtr(s string) *string {
	d, ok := Date(s)
	if !ok {
		return nil
	}
	return &d
}

// Year extracts a plausible four digit year.
func Year(s string) *int {
	i := Int(s)
	if i == nil || *i < 1700 || *i > 2200 {
		return nil
	}
	return i
}

// Title title-cases a name: "O'BRIEN-SMITH" becomes "O'Brien-Smith".
func Title(s string) string {
	s = Clean(s)
	if s == "" {
		return ""
	}
	out := cases.Title(language.English).String(strings.ToLower(s))
	out = apostropheRe.ReplaceAllStringFunc(out, strings.ToUpper)
	out = hyphenRe.ReplaceAllStringFunc(out, strings.ToUpper)
	out = macRe.ReplaceAllStringFunc(out, func(m string) string {
		return "Mc" + strings.ToUpper(m[2:])
	})
	return out
}
