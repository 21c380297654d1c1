// Package graph turns an extracted parcel into named JSON documents and the
// relationship files that link them.
package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/law-makers/appraiser/internal/extract"
	"github.com/law-makers/appraiser/internal/names"
	"github.com/law-makers/appraiser/pkg/models"
)

// Document is one file of the bundle.
type Document struct {
	Name  string
	Value interface{}
}

// Bundle is the full output for one parcel, in emission order.
type Bundle struct {
	ParcelID  string
	Documents []Document

	names map[string]int

	// counters for the run log
	Sales     int
	Persons   int
	Companies int
}

func newBundle(parcelID string) *Bundle {
	return &Bundle{ParcelID: parcelID, names: make(map[string]int)}
}

func (b *Bundle) add(name string, v interface{}) {
	if i, ok := b.names[name]; ok {
		b.Documents[i].Value = v
		return
	}
	b.names[name] = len(b.Documents)
	b.Documents = append(b.Documents, Document{Name: name, Value: v})
}

func (b *Bundle) relate(name, from, to string) {
	b.add(name, models.NewRelationship(from, to))
}

// Has reports whether a document with this file name is in the bundle.
func (b *Bundle) Has(name string) bool {
	_, ok := b.names[name]
	return ok
}

// Get returns the named document.
func (b *Bundle) Get(name string) (interface{}, bool) {
	i, ok := b.names[name]
	if !ok {
		return nil, false
	}
	return b.Documents[i].Value, true
}

// Names lists the file names in emission order.
func (b *Bundle) Names() []string {
	out := make([]string, len(b.Documents))
	for i, d := range b.Documents {
		out[i] = d.Name
	}
	return out
}

// Relationships returns just the relationship documents.
func (b *Bundle) Relationships() map[string]models.Relationship {
	out := make(map[string]models.Relationship)
	for _, d := range b.Documents {
		if r, ok := d.Value.(models.Relationship); ok {
			out[d.Name] = r
		}
	}
	return out
}

// Validate checks that every relationship points at documents in the bundle.
func (b *Bundle) Validate() error {
	for name, r := range b.Relationships() {
		for _, link := range []models.Link{r.From, r.To} {
			target := strings.TrimPrefix(link.Path, "./")
			if !b.Has(target) {
				return extract.NewError(extract.ErrCodeValidation, fmt.Sprintf("%s points at missing %s", name, target), nil).
					WithDetail("parcel_id", b.ParcelID)
			}
		}
	}
	return nil
}

// Build lays out the parcel's documents. Parties are de-duplicated across the
// current owners and every sale, so the same person keeps one person_N.json.
func Build(p *models.Parcel) (*Bundle, error) {
	if p == nil {
		return nil, fmt.Errorf("parcel is required")
	}
	prov := p.Source
	b := newBundle(p.ParcelID)

	prop := p.Property
	prop.Provenance = prov
	if prop.ParcelIdentifier == "" {
		prop.ParcelIdentifier = p.ParcelID
	}
	b.add("property.json", prop)

	if p.Address != nil {
		a := *p.Address
		a.Provenance = prov
		b.add("address.json", a)
		b.relate("relationship_property_address.json", "property.json", "address.json")
	}
	if p.Lot != nil {
		l := *p.Lot
		l.Provenance = prov
		b.add("lot.json", l)
		b.relate("relationship_property_lot.json", "property.json", "lot.json")
	}

	for _, t := range p.Taxes {
		t.Provenance = prov
		name := fmt.Sprintf("tax_%d.json", t.TaxYear)
		b.add(name, t)
		b.relate(fmt.Sprintf("relationship_property_tax_%d.json", t.TaxYear), "property.json", name)
	}

	sales := Sales(p.Sales)
	reg := names.NewRegistry()
	ownerRefs := reg.AddAll(normalize(p.Owners))

	type saleRefs struct {
		grantees []names.Ref
		grantors []names.Ref
	}
	refs := make([]saleRefs, len(sales))
	for i, rec := range sales {
		refs[i].grantees = reg.AddAll(normalize(rec.Grantees))
		refs[i].grantors = reg.AddAll(normalize(rec.Grantors))
	}

	for i, rec := range sales {
		n := i + 1
		saleName := fmt.Sprintf("sales_%d.json", n)
		s := rec.Sale
		s.Provenance = prov
		b.add(saleName, s)
		b.relate(fmt.Sprintf("relationship_property_sales_%d.json", n), "property.json", saleName)

		if rec.Deed != nil {
			d := *rec.Deed
			d.Provenance = prov
			deedName := fmt.Sprintf("deed_%d.json", n)
			b.add(deedName, d)
			b.relate(fmt.Sprintf("relationship_sales_deed_%d.json", n), saleName, deedName)

			if rec.File != nil {
				f := *rec.File
				f.Provenance = prov
				fileName := fmt.Sprintf("file_%d.json", n)
				b.add(fileName, f)
				b.relate(fmt.Sprintf("relationship_deed_file_%d.json", n), deedName, fileName)
			}
		}
	}

	for i, person := range reg.Persons() {
		person.Provenance = prov
		b.add(fmt.Sprintf("person_%d.json", i+1), person)
	}
	for i, company := range reg.Companies() {
		company.Provenance = prov
		b.add(fmt.Sprintf("company_%d.json", i+1), company)
	}

	for i := range sales {
		saleName := fmt.Sprintf("sales_%d.json", i+1)
		for _, ref := range refs[i].grantees {
			b.relate(fmt.Sprintf("relationship_sales_%d_%s_%d.json", i+1, ref.Kind, ref.Index), saleName, ref.File())
		}
		for _, ref := range refs[i].grantors {
			b.relate(fmt.Sprintf("relationship_%s_%d_sales_%d.json", ref.Kind, ref.Index, i+1), ref.File(), saleName)
		}
	}
	for _, ref := range ownerRefs {
		b.relate(fmt.Sprintf("relationship_%s_%d_property.json", ref.Kind, ref.Index), ref.File(), "property.json")
	}

	if p.Structure != nil {
		s := *p.Structure
		s.Provenance = prov
		b.add("structure.json", s)
		b.relate("relationship_property_structure.json", "property.json", "structure.json")
	}
	if p.Utility != nil {
		u := *p.Utility
		u.Provenance = prov
		b.add("utility.json", u)
		b.relate("relationship_property_utility.json", "property.json", "utility.json")
	}
	for i, l := range p.Layouts {
		l.Provenance = prov
		if l.SpaceIndex == 0 {
			l.SpaceIndex = i + 1
		}
		name := fmt.Sprintf("layout_%d.json", i+1)
		b.add(name, l)
		b.relate(fmt.Sprintf("relationship_property_layout_%d.json", i+1), "property.json", name)
	}

	b.Sales = len(sales)
	b.Persons = len(reg.Persons())
	b.Companies = len(reg.Companies())

	if err := b.Validate(); err != nil {
		return nil, err
	}
	log.Debug().
		Str("parcel_id", p.ParcelID).
		Int("count", len(b.Documents)).
		Int("sales", b.Sales).
		Int("persons", b.Persons).
		Int("companies", b.Companies).
		Msg("Built document graph")
	return b, nil
}

// Sales drops rows with neither a price nor a date and orders the rest newest
// first. Undated rows keep their page order after the dated ones.
func Sales(records []models.SaleRecord) []models.SaleRecord {
	out := make([]models.SaleRecord, 0, len(records))
	for _, r := range records {
		if r.Sale.PurchasePriceAmount == nil && r.Sale.OwnershipTransferDate == nil {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Sale.OwnershipTransferDate, out[j].Sale.OwnershipTransferDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		}
		return *a > *b
	})
	return out
}

// normalize turns persons without a surname into companies so no
// person_N.json has an empty last_name.
func normalize(parties []models.Party) []models.Party {
	out := make([]models.Party, 0, len(parties))
	for _, p := range parties {
		if p.Person != nil && strings.TrimSpace(p.Person.LastName) == "" {
			name := strings.TrimSpace(p.Person.FirstName)
			if name == "" {
				continue
			}
			p = models.Party{Company: &models.Company{Name: name}}
		}
		out = append(out, p)
	}
	return out
}
