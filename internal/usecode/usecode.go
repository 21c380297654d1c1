// Package usecode maps county use codes onto the property taxonomy.
package usecode

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/law-makers/appraiser/internal/extract"
	"github.com/law-makers/appraiser/internal/text"
	"github.com/law-makers/appraiser/pkg/models"
)

//go:embed tables
var tablesFS embed.FS

// Mapping is one row of a county table.
type Mapping struct {
	Code                string `yaml:"code"`
	Description         string `yaml:"description"`
	PropertyType        string `yaml:"property_type"`
	PropertyUsageType   string `yaml:"property_usage_type"`
	StructureForm       string `yaml:"structure_form"`
	BuildStatus         string `yaml:"build_status"`
	OwnershipEstateType string `yaml:"ownership_estate_type"`
}

// Apply copies the taxonomy fields onto p. Blank fields stay nil.
func (m Mapping) Apply(p *models.Property) {
	p.PropertyType = models.String(m.PropertyType)
	p.PropertyUsageType = models.String(m.PropertyUsageType)
	p.StructureForm = models.String(m.StructureForm)
	p.BuildStatus = models.String(m.BuildStatus)
	p.OwnershipEstateType = models.String(m.OwnershipEstateType)
}

// Table is the parsed YAML for one county.
type Table struct {
	County string    `yaml:"county"`
	Codes  []Mapping `yaml:"codes"`

	byCode map[string]Mapping
	byDesc map[string]Mapping
}

func (t *Table) index() {
	t.byCode = make(map[string]Mapping, len(t.Codes))
	t.byDesc = make(map[string]Mapping, len(t.Codes))
	for _, m := range t.Codes {
		t.byCode[normalizeCode(m.Code)] = m
		t.byDesc[normalizeDesc(m.Description)] = m
	}
}

// Len is the number of codes in the table.
func (t *Table) Len() int {
	return len(t.Codes)
}

var (
	loadOnce sync.Once
	tables   map[string]*Table
	loadErr  error
)

func load() (map[string]*Table, error) {
	loadOnce.Do(func() {
		tables = make(map[string]*Table)
		loadErr = fs.WalkDir(tablesFS, "tables", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || path.Ext(p) != ".yaml" {
				return nil
			}
			data, err := tablesFS.ReadFile(p)
			if err != nil {
				return err
			}
			var t Table
			if err := yaml.Unmarshal(data, &t); err != nil {
				return fmt.Errorf("parse %s: %w", p, err)
			}
			if t.County == "" {
				t.County = strings.TrimSuffix(path.Base(p), ".yaml")
			}
			t.index()
			tables[strings.ToLower(t.County)] = &t
			return nil
		})
	})
	return tables, loadErr
}

// Get returns the table for county.
func Get(county string) (*Table, error) {
	all, err := load()
	if err != nil {
		return nil, err
	}
	t, ok := all[strings.ToLower(county)]
	if !ok {
		return nil, extract.NewError(extract.ErrCodeNotFound, "no use code table for "+county, extract.ErrUnknownCounty).
			WithDetail("county", county)
	}
	return t, nil
}

// Counties lists the counties that ship a table.
func Counties() []string {
	all, err := load()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	parenCode   = regexp.MustCompile(`\((\d{1,4})\)\s*$`)
	leadingCode = regexp.MustCompile(`^(\d{1,4})\b\s*[-:]?\s*`)
)

// Split separates "SINGLE FAMILY (0100)" or "0100 - SINGLE FAMILY" into its
// code and description. Either may be empty.
func Split(raw string) (code, desc string) {
	s := strings.ToUpper(text.Clean(raw))
	if m := parenCode.FindStringSubmatchIndex(s); m != nil {
		return s[m[2]:m[3]], strings.TrimSpace(s[:m[0]])
	}
	if m := leadingCode.FindStringSubmatchIndex(s); m != nil {
		return s[m[2]:m[3]], strings.TrimSpace(s[m[1]:])
	}
	return "", s
}

// Lookup maps a raw use-code cell for county. A code match wins over a
// description match. When nothing matches and strict is set the error wraps
// extract.ErrUnknownUseCode; otherwise a zero Mapping is returned.
func Lookup(county, raw string, strict bool) (Mapping, error) {
	t, err := Get(county)
	if err != nil {
		return Mapping{}, err
	}
	return t.Lookup(raw, strict)
}

// Lookup is Lookup against a single table.
func (t *Table) Lookup(raw string, strict bool) (Mapping, error) {
	code, desc := Split(raw)
	if code != "" {
		if m, ok := t.byCode[normalizeCode(code)]; ok {
			return m, nil
		}
	}
	if desc != "" {
		if m, ok := t.byDesc[normalizeDesc(desc)]; ok {
			return m, nil
		}
	}

	if strict {
		return Mapping{}, extract.NewError(extract.ErrCodeMapping, fmt.Sprintf("use code %q", raw), extract.ErrUnknownUseCode).
			WithDetail("county", t.County).
			WithDetail("code", code)
	}
	log.Warn().
		Str("county", t.County).
		Str("use_code", raw).
		Msg("Unknown use code, leaving property type empty")
	return Mapping{}, nil
}

func normalizeCode(code string) string {
	c := strings.TrimLeft(strings.TrimSpace(code), "0")
	if c == "" {
		return "0"
	}
	return c
}

var descNoise = regexp.MustCompile(`[^A-Z0-9]+`)

func normalizeDesc(desc string) string {
	return strings.TrimSpace(descNoise.ReplaceAllString(strings.ToUpper(desc), " "))
}
