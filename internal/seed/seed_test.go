package seed

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/law-makers/appraiser/internal/extract"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

const propertySeed = `{
  "parcel_id": "10-44-25-P1-00012.0010",
  "request_identifier": "10442511000120010",
  "source_http_request": {
    "method": "GET",
    "url": "https://www.leepa.org/Display/DisplayParcel.aspx",
    "multiValueQueryString": {"FolioID": ["10012345"]}
  }
}`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "property_seed.json", propertySeed)
	writeFile(t, dir, "unnormalized_address.json", `{"full_address": "123 MAIN ST, FORT MYERS, FL 33901", "county_jurisdiction": "Lee"}`)
	writeFile(t, dir, "owners/owner_data.json", `{
  "property_10-44-25-P1-00012.0010": {
    "owners_by_date": {
      "current": [
        {"type": "person", "first_name": "John", "middle_name": "A", "last_name": "Smith"},
        {"type": "company", "name": "Smith Family Trust"}
      ],
      "2015-03-02": [{"type": "person", "first_name": "Ann", "last_name": "Jones"}],
      "2019-07-10": [{"type": "company", "name": ""}]
    }
  }
}`)
	writeFile(t, dir, "owners/utilities_data.json", `{"property_10-44-25-P1-00012.0010": {"cooling_system_type": "CentralAir", "solar_panel_present": false}}`)

	s, err := Load(dir, DefaultFiles())
	require.NoError(t, err)

	assert.Equal(t, "10-44-25-P1-00012.0010", s.ParcelID())
	assert.Equal(t, "lee", s.County())
	require.NotNil(t, s.Address)
	assert.Equal(t, "123 MAIN ST, FORT MYERS, FL 33901", s.Address.FullAddress)

	prov := s.Provenance()
	assert.Equal(t, "10442511000120010", prov.RequestIdentifier)
	u, err := prov.SourceHTTPRequest.FullURL()
	require.NoError(t, err)
	assert.Equal(t, "https://www.leepa.org/Display/DisplayParcel.aspx?FolioID=10012345", u)

	require.NotNil(t, s.Owners)
	current := s.Owners.Current()
	require.Len(t, current, 2)
	assert.Equal(t, "John A Smith", current[0].DisplayName())
	assert.Equal(t, "Smith Family Trust", current[1].Company.Name)
	assert.Contains(t, s.Owners.OwnersByDate, "2015-03-02")
	assert.Empty(t, s.Owners.On("2019-07-10"))

	require.NotNil(t, s.Utility)
	assert.Equal(t, "CentralAir", *s.Utility.CoolingSystemType)
	assert.Nil(t, s.Layouts)
}

func TestLoadMissingPropertySeed(t *testing.T) {
	_, err := Load(t.TempDir(), DefaultFiles())
	require.Error(t, err)
	assert.True(t, errors.Is(err, extract.ErrMissingInput))
}

func TestLoadOptionalFilesAbsent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "property_seed.json", `{"request_identifier": "ABC123"}`)

	s, err := Load(dir, DefaultFiles())
	require.NoError(t, err)
	assert.Equal(t, "ABC123", s.ParcelID())
	assert.Nil(t, s.Address)
	assert.Nil(t, s.Owners)
	assert.Empty(t, s.County())
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "property_seed.json", `{"parcel_id": `)

	_, err := Load(dir, DefaultFiles())
	require.Error(t, err)
	assert.True(t, errors.Is(err, extract.ErrParse))

	var e *extract.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, extract.ErrCodeParse, e.Code)
}

func TestLoadLayouts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "property_seed.json", `{"parcel_id": "P1"}`)
	writeFile(t, dir, "owners/layout_data.json", `{"property_P1": {"layouts": [
  {"space_type": "Bedroom", "space_index": 1, "is_finished": true},
  {"space_type": "Full Bathroom", "space_index": 2, "is_finished": true}
]}}`)

	s, err := Load(dir, DefaultFiles())
	require.NoError(t, err)
	require.Len(t, s.Layouts, 2)
	assert.Equal(t, "Full Bathroom", s.Layouts[1].SpaceType)
}
