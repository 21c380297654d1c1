package names

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/law-makers/appraiser/pkg/models"
)

// Kind is the document family a party is written to.
type Kind string

const (
	KindPerson  Kind = "person"
	KindCompany Kind = "company"
)

// Ref points at a de-duplicated party. Index is 1-based.
type Ref struct {
	Kind  Kind
	Index int
}

// File is the document name the party is written to, e.g. person_2.json.
func (r Ref) File() string {
	return fmt.Sprintf("%s_%d.json", r.Kind, r.Index)
}

// Registry de-duplicates parties in first-seen order. "John Smith" and
// "John A Smith" are one person; the fuller middle name is kept.
type Registry struct {
	persons     []*models.Person
	companies   []*models.Company
	companyKeys map[string]int
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{companyKeys: make(map[string]int)}
}

// Add registers p and returns its reference.
func (r *Registry) Add(p models.Party) (Ref, bool) {
	switch {
	case p.IsPerson():
		return r.addPerson(p.Person), true
	case p.Company != nil && strings.TrimSpace(p.Company.Name) != "":
		return r.addCompany(p.Company), true
	}
	return Ref{}, false
}

// AddAll registers every party and returns the distinct references in order.
func (r *Registry) AddAll(parties []models.Party) []Ref {
	var refs []Ref
	seen := make(map[Ref]bool, len(parties))
	for _, p := range parties {
		ref, ok := r.Add(p)
		if !ok || seen[ref] {
			continue
		}
		seen[ref] = true
		refs = append(refs, ref)
	}
	return refs
}

// Persons returns the registered persons in index order.
func (r *Registry) Persons() []models.Person {
	out := make([]models.Person, len(r.persons))
	for i, p := range r.persons {
		out[i] = *p
	}
	return out
}

// Companies returns the registered companies in index order.
func (r *Registry) Companies() []models.Company {
	out := make([]models.Company, len(r.companies))
	for i, c := range r.companies {
		out[i] = *c
	}
	return out
}

func (r *Registry) addPerson(p *models.Person) Ref {
	for i, existing := range r.persons {
		if !samePerson(existing, p) {
			continue
		}
		if len(models.Deref(p.MiddleName)) > len(models.Deref(existing.MiddleName)) {
			existing.MiddleName = p.MiddleName
		}
		if existing.PrefixName == nil {
			existing.PrefixName = p.PrefixName
		}
		return Ref{Kind: KindPerson, Index: i + 1}
	}
	cp := *p
	r.persons = append(r.persons, &cp)
	return Ref{Kind: KindPerson, Index: len(r.persons)}
}

func (r *Registry) addCompany(c *models.Company) Ref {
	key := CompanyKey(c.Name)
	if i, ok := r.companyKeys[key]; ok {
		return Ref{Kind: KindCompany, Index: i}
	}
	cp := *c
	r.companies = append(r.companies, &cp)
	r.companyKeys[key] = len(r.companies)
	return Ref{Kind: KindCompany, Index: len(r.companies)}
}

func samePerson(a, b *models.Person) bool {
	if key(a.FirstName) != key(b.FirstName) || key(a.LastName) != key(b.LastName) {
		return false
	}
	if key(models.Deref(a.SuffixName)) != key(models.Deref(b.SuffixName)) {
		return false
	}
	return middleCompatible(key(models.Deref(a.MiddleName)), key(models.Deref(b.MiddleName)))
}

// middleCompatible treats a missing middle name or a matching initial as the
// same person.
func middleCompatible(a, b string) bool {
	if a == "" || b == "" || a == b {
		return true
	}
	if len(a) == 1 && strings.HasPrefix(b, a) {
		return true
	}
	return len(b) == 1 && strings.HasPrefix(a, b)
}

var (
	nonAlnum      = regexp.MustCompile(`[^A-Z0-9 ]+`)
	spacedLetters = regexp.MustCompile(`\bL L C\b`)
	entityForms   = map[string]string{
		"INCORPORATED": "INC",
		"CORPORATION":  "CORP",
		"COMPANY":      "CO",
		"LIMITED":      "LTD",
	}
)

func key(s string) string {
	s = strings.ToUpper(strings.ReplaceAll(s, ".", ""))
	return strings.Join(strings.Fields(nonAlnum.ReplaceAllString(s, " ")), " ")
}

// CompanyKey normalizes an organisation name for comparison: punctuation,
// a leading THE and long-form entity suffixes are ignored.
func CompanyKey(name string) string {
	fields := strings.Fields(spacedLetters.ReplaceAllString(key(name), "LLC"))
	if len(fields) > 1 && fields[0] == "THE" {
		fields = fields[1:]
	}
	for i, f := range fields {
		if short, ok := entityForms[f]; ok {
			fields[i] = short
		}
	}
	return strings.Join(fields, " ")
}
