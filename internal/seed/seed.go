// Package seed loads the JSON files delivered beside a parcel's input.html.
package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/law-makers/appraiser/internal/extract"
	"github.com/law-makers/appraiser/pkg/models"
)

// Files names the seed files relative to the parcel directory.
type Files struct {
	PropertySeed string
	Address      string
	Owners       string
	Utilities    string
	Layouts      string
}

// DefaultFiles returns the conventional seed layout.
func DefaultFiles() Files {
	return Files{
		PropertySeed: "property_seed.json",
		Address:      "unnormalized_address.json",
		Owners:       filepath.Join("owners", "owner_data.json"),
		Utilities:    filepath.Join("owners", "utilities_data.json"),
		Layouts:      filepath.Join("owners", "layout_data.json"),
	}
}

// PropertySeed is property_seed.json.
type PropertySeed struct {
	ParcelID          string                    `json:"parcel_id"`
	RequestIdentifier string                    `json:"request_identifier"`
	SourceHTTPRequest *models.SourceHTTPRequest `json:"source_http_request"`
}

// AddressSeed is unnormalized_address.json.
type AddressSeed struct {
	FullAddress        string                    `json:"full_address"`
	CountyJurisdiction string                    `json:"county_jurisdiction"`
	RequestIdentifier  string                    `json:"request_identifier"`
	SourceHTTPRequest  *models.SourceHTTPRequest `json:"source_http_request"`
	Latitude           *float64                  `json:"latitude"`
	Longitude          *float64                  `json:"longitude"`
}

// Seeds is everything loaded for one parcel.
type Seeds struct {
	Dir      string
	Property PropertySeed
	Address  *AddressSeed

	// Optional pre-parsed data. Nil when the file is absent or has no entry
	// for this parcel.
	Owners  *OwnerData
	Utility *models.Utility
	Layouts []models.Layout
}

// ParcelID is the seed parcel id, falling back to the request identifier.
func (s *Seeds) ParcelID() string {
	if s.Property.ParcelID != "" {
		return s.Property.ParcelID
	}
	return s.Property.RequestIdentifier
}

// Provenance is embedded in every emitted document.
func (s *Seeds) Provenance() models.Provenance {
	return models.Provenance{
		SourceHTTPRequest: s.Property.SourceHTTPRequest,
		RequestIdentifier: s.Property.RequestIdentifier,
	}
}

// County is the county named by the address seed, lower-cased.
func (s *Seeds) County() string {
	if s.Address == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(s.Address.CountyJurisdiction))
}

// Load reads the seeds in dir. A missing property seed is an error; every
// other file is optional.
func Load(dir string, files Files) (*Seeds, error) {
	s := &Seeds{Dir: dir}

	path := filepath.Join(dir, files.PropertySeed)
	found, err := readJSON(path, &s.Property)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, extract.NewError(extract.ErrCodeNotFound, "property seed", extract.ErrMissingInput).
			WithDetail("file", path)
	}
	if s.ParcelID() == "" {
		return nil, extract.NewError(extract.ErrCodeValidation, "property seed has no parcel_id", extract.ErrMissingField).
			WithDetail("file", path)
	}

	var addr AddressSeed
	found, err = readJSON(filepath.Join(dir, files.Address), &addr)
	if err != nil {
		return nil, err
	}
	if found {
		s.Address = &addr
	}

	key := "property_" + s.ParcelID()
	if err := s.loadOptional(dir, files, key); err != nil {
		return nil, err
	}

	log.Debug().
		Str("dir", dir).
		Str("parcel_id", s.ParcelID()).
		Bool("address", s.Address != nil).
		Bool("owners", s.Owners != nil).
		Msg("Loaded seeds")
	return s, nil
}

func (s *Seeds) loadOptional(dir string, files Files, key string) error {
	var owners map[string]OwnerData
	found, err := readJSON(filepath.Join(dir, files.Owners), &owners)
	if err != nil {
		return err
	}
	if od, ok := owners[key]; found && ok {
		s.Owners = &od
	}

	var utilities map[string]models.Utility
	found, err = readJSON(filepath.Join(dir, files.Utilities), &utilities)
	if err != nil {
		return err
	}
	if u, ok := utilities[key]; found && ok {
		s.Utility = &u
	}

	var layouts map[string]struct {
		Layouts []models.Layout `json:"layouts"`
	}
	found, err = readJSON(filepath.Join(dir, files.Layouts), &layouts)
	if err != nil {
		return err
	}
	if l, ok := layouts[key]; found && ok {
		s.Layouts = l.Layouts
	}
	return nil
}

// readJSON decodes path into v. It reports false without error when the file
// does not exist.
func readJSON(path string, v interface{}) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, extract.NewError(extract.ErrCodeIO, "read "+filepath.Base(path), err).
			WithDetail("file", path)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, extract.NewError(extract.ErrCodeParse, fmt.Sprintf("decode %s", filepath.Base(path)), errors.Join(extract.ErrParse, err)).
			WithDetail("file", path)
	}
	return true, nil
}

// OwnerData is one parcel's entry in owner_data.json.
type OwnerData struct {
	OwnersByDate map[string][]OwnerRecord `json:"owners_by_date"`
}

// OwnerRecord is a pre-parsed owner.
type OwnerRecord struct {
	Type       string  `json:"type"`
	Name       string  `json:"name"`
	PrefixName *string `json:"prefix_name"`
	FirstName  string  `json:"first_name"`
	MiddleName *string `json:"middle_name"`
	LastName   string  `json:"last_name"`
	SuffixName *string `json:"suffix_name"`
}

// Party converts the record. Records without a last name are companies.
func (r OwnerRecord) Party() models.Party {
	if strings.EqualFold(r.Type, "company") || r.LastName == "" {
		name := r.Name
		if name == "" {
			name = strings.TrimSpace(r.FirstName + " " + r.LastName)
		}
		return models.Party{Company: &models.Company{Name: name}}
	}
	return models.Party{Person: &models.Person{
		PrefixName: r.PrefixName,
		FirstName:  r.FirstName,
		MiddleName: r.MiddleName,
		LastName:   r.LastName,
		SuffixName: r.SuffixName,
	}}
}

// Current returns the "current" owners.
func (o *OwnerData) Current() []models.Party {
	return o.On("current")
}

// On returns the owners recorded for date (ISO) or "current".
func (o *OwnerData) On(date string) []models.Party {
	if o == nil {
		return nil
	}
	records := o.OwnersByDate[date]
	parties := make([]models.Party, 0, len(records))
	for _, r := range records {
		p := r.Party()
		if p.DisplayName() == "" {
			continue
		}
		parties = append(parties, p)
	}
	return parties
}
