// Package names turns owner, grantor and grantee strings from appraiser pages
// into person and company records.
//
// Appraiser sites print composite names such as "SMITH JOHN A & MARY K" or
// "DOE, JANE ET AL". Parse splits them into individual parties, decides
// whether each one is a person or an organisation and assigns name parts.
// Registry de-duplicates the parties found across owners and sales history.
package names

import (
	"strings"

	"github.com/law-makers/appraiser/internal/text"
	"github.com/law-makers/appraiser/pkg/models"
)

// Order says how a person's name is laid out when it carries no comma.
type Order int

const (
	// LastFirst is the appraiser roll layout: SMITH JOHN A.
	LastFirst Order = iota
	// FirstLast is the deed layout some sites use for grantors: JOHN A SMITH.
	FirstLast
)

// Options tune Parse for one site's conventions.
type Options struct {
	Order Order
}

// Parse splits raw into parties. Fragments that cannot be read as a person
// (no surname) are returned as companies so no name is lost.
func Parse(raw string, opts Options) []models.Party {
	raw = strings.ReplaceAll(strings.ToUpper(raw), "&AMP;", "&")

	var parties []models.Party
	for _, chunk := range hardSplit.Split(raw, -1) {
		chunk = stripNoise(chunk)
		if chunk == "" {
			continue
		}
		parties = append(parties, parseChunk(chunk, opts)...)
	}
	return parties
}

// IsCompany reports whether s reads as an organisation name.
func IsCompany(s string) bool {
	s = strings.ToUpper(s)
	if companyPhrases.MatchString(s) {
		return true
	}
	for _, tok := range strings.Fields(punctuation.ReplaceAllString(strings.ReplaceAll(s, ".", ""), " ")) {
		if companyWords[strings.Trim(tok, ",'-")] {
			return true
		}
	}
	return false
}

func stripNoise(s string) string {
	for _, re := range noise {
		s = re.ReplaceAllString(s, " ")
	}
	s = text.Clean(s)
	return strings.Trim(s, " ,&+")
}

func splitParts(chunk string) []string {
	var parts []string
	for _, p := range softSplit.Split(chunk, -1) {
		p = strings.Trim(text.Clean(p), " ,")
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// splittable decides whether a chunk holding an organisation name is really
// a list of parties ("SMITH JOHN & ABC HOLDINGS LLC") rather than one
// organisation with an ampersand in its name ("SMITH & JONES LLC").
func splittable(parts []string) bool {
	if len(parts) < 2 {
		return false
	}
	for _, p := range parts {
		if IsCompany(p) {
			continue
		}
		if len(strings.Fields(p)) < 2 {
			return false
		}
	}
	return true
}

func parseChunk(chunk string, opts Options) []models.Party {
	parts := splitParts(chunk)
	if IsCompany(chunk) && !splittable(parts) {
		return []models.Party{company(chunk)}
	}

	var (
		out     []models.Party
		prev    *models.Person
		pending []int
	)
	for _, part := range parts {
		if IsCompany(part) {
			out = append(out, company(part))
			continue
		}

		p, needsSurname := parsePerson(part, opts.Order, prev)
		switch {
		case p == nil:
			out = append(out, company(part))
		case needsSurname:
			pending = append(pending, len(out))
			out = append(out, models.Party{Person: p})
		default:
			for _, i := range pending {
				out[i].Person.LastName = p.LastName
			}
			pending = nil
			prev = p
			out = append(out, models.Party{Person: p})
		}
	}

	// JOHN SMITH & MARY: borrow the surname already seen, otherwise the given
	// name alone is not enough for a person record.
	for _, i := range pending {
		if prev != nil {
			out[i].Person.LastName = prev.LastName
			continue
		}
		out[i] = company(out[i].Person.FirstName)
	}
	return out
}

func company(name string) models.Party {
	name = strings.Trim(text.Clean(name), " ,")
	return models.Party{Company: &models.Company{Name: name}}
}

// parsePerson reads one person. needsSurname is set when the part is only a
// given name (plus optional initial) whose surname comes from a later part.
func parsePerson(part string, order Order, prev *models.Person) (p *models.Person, needsSurname bool) {
	part = estateOf.ReplaceAllString(part, "")
	part = strings.ReplaceAll(part, ".", " ")
	part = punctuation.ReplaceAllString(part, " ")

	var (
		prefix, suffix string
		last           []string
		given          []string
	)

	if i := strings.Index(part, ","); i >= 0 {
		var pre1, suf1, pre2, suf2 string
		last, pre1, suf1 = affixes(strings.Fields(part[:i]))
		given, pre2, suf2 = affixes(strings.Fields(strings.ReplaceAll(part[i+1:], ",", " ")))
		given, suf2 = fifth(given, 1, suf2)
		prefix, suffix = firstOf(pre1, pre2), firstOf(suf1, suf2)
		if len(last) == 0 || len(given) == 0 {
			return nil, false
		}
		return build(prefix, given[0], given[1:], strings.Join(last, " "), suffix), false
	}

	tokens, prefix, suffix := affixes(strings.Fields(part))
	tokens, suffix = fifth(tokens, 2, suffix)
	if len(tokens) == 0 {
		return nil, false
	}

	givenOnly := len(tokens) == 1 || (len(tokens) == 2 && len(tokens[1]) == 1)

	switch order {
	case FirstLast:
		if givenOnly {
			return build(prefix, tokens[0], tokens[1:], "", suffix), true
		}
		j := len(tokens) - 1
		for j-1 >= 1 && particles[tokens[j-1]] {
			j--
		}
		last = tokens[j:]
		return build(prefix, tokens[0], tokens[1:j], strings.Join(last, " "), suffix), false

	default:
		if givenOnly && prev != nil {
			person := build(prefix, tokens[0], tokens[1:], "", suffix)
			person.LastName = prev.LastName
			return person, false
		}
		if len(tokens) == 1 {
			return nil, false
		}
		i := 0
		for i < len(tokens)-2 && particles[tokens[i]] {
			i++
		}
		last, given = tokens[:i+1], tokens[i+1:]
		return build(prefix, given[0], given[1:], strings.Join(last, " "), suffix), false
	}
}

// affixes removes titles, generational suffixes and role words such as
// TRUSTEE from a token list.
func affixes(tokens []string) (rest []string, prefix, suffix string) {
	for _, t := range tokens {
		t = strings.Trim(t, "'-")
		switch {
		case t == "":
		case prefixes[t] != "" && prefix == "":
			prefix = prefixes[t]
		case suffixes[t] != "" && suffix == "":
			suffix = suffixes[t]
		case roleWords[t]:
		default:
			rest = append(rest, t)
		}
	}
	return rest, prefix, suffix
}

// fifth reads a trailing V as the suffix when at least min name tokens come
// before it; otherwise it stays a middle initial.
func fifth(tokens []string, min int, suffix string) ([]string, string) {
	n := len(tokens)
	if suffix != "" || n <= min || tokens[n-1] != "V" {
		return tokens, suffix
	}
	return tokens[:n-1], "V"
}

func build(prefix, first string, middle []string, last, suffix string) *models.Person {
	return &models.Person{
		PrefixName: models.String(prefix),
		FirstName:  text.Title(first),
		MiddleName: models.String(text.Title(strings.Join(middle, " "))),
		LastName:   text.Title(last),
		SuffixName: models.String(suffix),
	}
}

func firstOf(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
