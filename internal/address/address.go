// Package address splits free-form situs strings into the address.json fields.
package address

import (
	"regexp"
	"strings"

	"github.com/law-makers/appraiser/internal/text"
	"github.com/law-makers/appraiser/pkg/models"
)

var (
	stateZip    = regexp.MustCompile(`(?:^|\s)([A-Z]{2})\s*(\d{5})(?:-?(\d{4}))?$`)
	zipOnly     = regexp.MustCompile(`^(\d{5})(?:-?(\d{4}))?$`)
	unitHash    = regexp.MustCompile(`#\s*`)
	strDashed   = regexp.MustCompile(`\b(\d{1,2})\s*[-/ ]\s*(\d{1,2}[NS]?)\s*[-/ ]\s*(\d{1,2}[EW]?)\b`)
	strLabeled  = regexp.MustCompile(`SEC(?:TION)?\.?:?\s*(\d{1,2}).*?(?:TWP|TOWNSHIP)\.?:?\s*(\d{1,2}[NS]?).*?(?:RGE|RNG|RANGE)\.?:?\s*(\d{1,2}[EW]?)`)
	blockNumber = regexp.MustCompile(`\b(?:BLK|BLOCK)\s+([A-Z0-9]+)`)
	lotNumber   = regexp.MustCompile(`\bLOTS?\s+([A-Z0-9]+)`)
)

// Parse splits "123 N MAIN ST APT 4, FORT MYERS, FL 33901-1234". Parts that
// cannot be identified are left nil. City and street name stay upper case.
func Parse(full string) models.Address {
	var a models.Address
	s := strings.ToUpper(text.Clean(full))
	s = strings.TrimRight(s, ", ")
	if s == "" {
		return a
	}

	parts := splitParts(s)
	last := parts[len(parts)-1]
	if m := stateZip.FindStringSubmatch(last); m != nil && states[m[1]] {
		a.StateCode = models.String(m[1])
		a.PostalCode = models.String(m[2])
		a.PlusFourPostalCode = models.String(m[3])
		last = strings.TrimSpace(last[:len(last)-len(m[0])])
	} else if m := zipOnly.FindStringSubmatch(last); m != nil && len(parts) > 1 {
		a.PostalCode = models.String(m[1])
		a.PlusFourPostalCode = models.String(m[2])
		last = ""
	} else if states[last] && len(parts) > 1 {
		a.StateCode = models.String(last)
		last = ""
	}
	parts[len(parts)-1] = last
	parts = compact(parts)

	// "CITY, FL" leaves a bare state in the city slot.
	if len(parts) > 2 && a.StateCode == nil && states[parts[len(parts)-1]] {
		a.StateCode = models.String(parts[len(parts)-1])
		parts = parts[:len(parts)-1]
	}
	if a.StateCode != nil {
		a.CountryCode = models.String("US")
	}

	switch len(parts) {
	case 0:
		return a
	case 1:
		tokens := tokenize(parts[0])
		street, city := splitCity(tokens)
		applyStreet(&a, street)
		a.CityName = models.String(strings.Join(city, " "))
	default:
		applyStreet(&a, tokenize(parts[0]))
		// A second part that is only a unit belongs to the street.
		rest := parts[1:]
		if len(rest) > 1 && isUnit(tokenize(rest[0])) {
			applyStreet(&a, append(tokenize(parts[0]), tokenize(rest[0])...))
			rest = rest[1:]
		}
		a.CityName = models.String(rest[len(rest)-1])
	}
	return a
}

// NormalizeSuffix maps any USPS spelling of a street suffix to its
// abbreviation, e.g. "AVENUE" to "Ave".
func NormalizeSuffix(s string) (string, bool) {
	v, ok := streetSuffixes[strings.Trim(strings.ToUpper(s), ". ")]
	return v, ok
}

// ParseSTR reads section, township and range from "17-44-25",
// "17 44S 25E" or "SEC 17 TWP 44 RGE 25".
func ParseSTR(s string) (section, township, rng string, ok bool) {
	s = strings.ToUpper(text.Clean(s))
	if m := strLabeled.FindStringSubmatch(s); m != nil {
		return trimZero(m[1]), trimZero(m[2]), trimZero(m[3]), true
	}
	if m := strDashed.FindStringSubmatch(s); m != nil {
		return trimZero(m[1]), trimZero(m[2]), trimZero(m[3]), true
	}
	return "", "", "", false
}

// BlockLot pulls "BLK 5 LOT 12" out of a legal description.
func BlockLot(legal string) (block, lot string) {
	s := strings.ToUpper(text.Clean(legal))
	if m := blockNumber.FindStringSubmatch(s); m != nil {
		block = m[1]
	}
	if m := lotNumber.FindStringSubmatch(s); m != nil {
		lot = m[1]
	}
	return block, lot
}

func splitParts(s string) []string {
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		parts = append(parts, strings.TrimSpace(p))
	}
	return compact(parts)
}

func compact(parts []string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func tokenize(s string) []string {
	s = unitHash.ReplaceAllString(s, "# ")
	s = strings.ReplaceAll(s, ".", "")
	return strings.Fields(s)
}

func isUnit(tokens []string) bool {
	return len(tokens) > 0 && (unitDesignators[tokens[0]] || tokens[0] == "#")
}

// splitCity separates "123 MAIN ST FORT MYERS" at the first street suffix
// that follows the street name. When no suffix is found the whole line is
// treated as street.
func splitCity(tokens []string) (street, city []string) {
	start := 1
	if len(tokens) > 0 && startsWithDigit(tokens[0]) {
		start = 2
	}
	end := -1
	for i := start; i < len(tokens)-1; i++ {
		if _, ok := streetSuffixes[tokens[i]]; ok {
			end = i + 1
			break
		}
	}
	if end < 0 {
		return tokens, nil
	}
	if end < len(tokens)-1 && len(tokens[end]) <= 2 {
		if _, ok := directionals[tokens[end]]; ok {
			end++
		}
	}
	if end < len(tokens)-1 && (unitDesignators[tokens[end]] || tokens[end] == "#") {
		end += 2
	}
	if end > len(tokens) {
		end = len(tokens)
	}
	return tokens[:end], tokens[end:]
}

func applyStreet(a *models.Address, tokens []string) {
	a.StreetNumber, a.StreetPreDirectionalText, a.StreetName = nil, nil, nil
	a.StreetSuffixType, a.StreetPostDirectionalText, a.UnitIdentifier = nil, nil, nil

	for i := 1; i < len(tokens); i++ {
		if unitDesignators[tokens[i]] || tokens[i] == "#" {
			unit := tokens[i+1:]
			if len(unit) == 0 && tokens[i] != "#" {
				unit = tokens[i : i+1]
			}
			a.UnitIdentifier = models.String(strings.Join(unit, " "))
			tokens = tokens[:i]
			break
		}
	}
	if len(tokens) > 1 && startsWithDigit(tokens[0]) {
		a.StreetNumber = models.String(tokens[0])
		tokens = tokens[1:]
	}
	if len(tokens) > 1 {
		if d, ok := directionals[tokens[0]]; ok {
			a.StreetPreDirectionalText = models.String(d)
			tokens = tokens[1:]
		}
	}
	if len(tokens) > 1 {
		if d, ok := directionals[tokens[len(tokens)-1]]; ok {
			a.StreetPostDirectionalText = models.String(d)
			tokens = tokens[:len(tokens)-1]
		}
	}
	if len(tokens) > 1 {
		if sfx, ok := streetSuffixes[tokens[len(tokens)-1]]; ok {
			a.StreetSuffixType = models.String(sfx)
			tokens = tokens[:len(tokens)-1]
		}
	}
	a.StreetName = models.String(strings.Join(tokens, " "))
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

func trimZero(s string) string {
	t := strings.TrimLeft(s, "0")
	if t == "" || !startsWithDigit(t) {
		return s
	}
	return t
}
