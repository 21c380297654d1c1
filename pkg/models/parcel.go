package models

// Link is an IPLD-style reference to a sibling document.
type Link struct {
	Path string `json:"/"`
}

// Relationship is a directed edge between two emitted documents.
type Relationship struct {
	From Link `json:"from"`
	To   Link `json:"to"`
}

// NewRelationship links two documents by file name.
func NewRelationship(from, to string) Relationship {
	return Relationship{
		From: Link{Path: "./" + from},
		To:   Link{Path: "./" + to},
	}
}

// Party is one parsed owner, grantor or grantee. Exactly one of Person and
// Company is set.
type Party struct {
	Person  *Person  `json:"person,omitempty"`
	Company *Company `json:"company,omitempty"`
}

// IsPerson reports whether the party is a natural person.
func (p Party) IsPerson() bool {
	return p.Person != nil
}

// DisplayName renders the party for logs.
func (p Party) DisplayName() string {
	switch {
	case p.Person != nil:
		name := p.Person.FirstName
		if p.Person.MiddleName != nil {
			name += " " + *p.Person.MiddleName
		}
		name += " " + p.Person.LastName
		if p.Person.SuffixName != nil {
			name += " " + *p.Person.SuffixName
		}
		return name
	case p.Company != nil:
		return p.Company.Name
	}
	return ""
}

// SaleRecord is one row of a sales-history table.
type SaleRecord struct {
	Sale     Sale
	Deed     *Deed
	File     *File
	Grantors []Party
	Grantees []Party

	// RawGrantee keeps the unparsed text for diagnostics.
	RawGrantee string
}

// Parcel is everything a county extractor found on one page.
type Parcel struct {
	ParcelID string
	County   string
	Source   Provenance

	Property  Property
	Address   *Address
	Lot       *Lot
	Taxes     []Tax
	Sales     []SaleRecord
	Owners    []Party
	Structure *Structure
	Utility   *Utility
	Layouts   []Layout
}
