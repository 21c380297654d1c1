package names

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/law-makers/appraiser/pkg/models"
)

func person(first, middle, last, suffix string) models.Party {
	return models.Party{Person: &models.Person{
		FirstName:  first,
		MiddleName: models.String(middle),
		LastName:   last,
		SuffixName: models.String(suffix),
	}}
}

func org(name string) models.Party {
	return models.Party{Company: &models.Company{Name: name}}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		order Order
		want  []models.Party
	}{
		{
			name: "shared surname",
			raw:  "SMITH JOHN A & MARY K",
			want: []models.Party{person("John", "A", "Smith", ""), person("Mary", "K", "Smith", "")},
		},
		{
			name: "comma form with et al",
			raw:  "DOE, JANE ET AL",
			want: []models.Party{person("Jane", "", "Doe", "")},
		},
		{
			name: "comma form shared surname",
			raw:  "SMITH, JOHN & MARY",
			want: []models.Party{person("John", "", "Smith", ""), person("Mary", "", "Smith", "")},
		},
		{
			name: "company with ampersand",
			raw:  "SMITH & JONES LLC",
			want: []models.Party{org("SMITH & JONES LLC")},
		},
		{
			name: "person and company",
			raw:  "SMITH JOHN & ABC HOLDINGS LLC",
			want: []models.Party{person("John", "", "Smith", ""), org("ABC HOLDINGS LLC")},
		},
		{
			name:  "first last with borrowed surname",
			raw:   "JOHN A & MARY B SMITH",
			order: FirstLast,
			want:  []models.Party{person("John", "A", "Smith", ""), person("Mary", "B", "Smith", "")},
		},
		{
			name:  "compound surname first last",
			raw:   "MARIA DE LA CRUZ",
			order: FirstLast,
			want:  []models.Party{person("Maria", "", "De La Cruz", "")},
		},
		{
			name: "compound surname last first",
			raw:  "VAN DYKE PETER J",
			want: []models.Party{person("Peter", "J", "Van Dyke", "")},
		},
		{
			name: "suffix and trustee role",
			raw:  "SMITH JOHN JR TR",
			want: []models.Party{person("John", "", "Smith", "Jr.")},
		},
		{
			name: "fifth generation suffix",
			raw:  "SMITH JOHN A V",
			want: []models.Party{person("John", "A", "Smith", "V")},
		},
		{
			name: "fifth after given name",
			raw:  "SMITH JOHN V",
			want: []models.Party{person("John", "", "Smith", "V")},
		},
		{
			name: "bare V stays an initial",
			raw:  "SMITH JOHN & MARY V",
			want: []models.Party{person("John", "", "Smith", ""), person("Mary", "V", "Smith", "")},
		},
		{
			name:  "fifth first last",
			raw:   "JOHN ALAN SMITH V",
			order: FirstLast,
			want:  []models.Party{person("John", "Alan", "Smith", "V")},
		},
		{
			name: "husband and wife marker",
			raw:  "GARCIA LUIS H/W",
			want: []models.Party{person("Luis", "", "Garcia", "")},
		},
		{
			name:  "estate of",
			raw:   "ESTATE OF JOHN SMITH",
			order: FirstLast,
			want:  []models.Party{person("John", "", "Smith", "")},
		},
		{
			name: "lone surname becomes company",
			raw:  "JOHNSON",
			want: []models.Party{org("JOHNSON")},
		},
		{
			name: "line separated owners",
			raw:  "SMITH JOHN\nJONES MARY",
			want: []models.Party{person("John", "", "Smith", ""), person("Mary", "", "Jones", "")},
		},
		{
			name: "care of line",
			raw:  "C/O ABC MANAGEMENT",
			want: []models.Party{org("ABC MANAGEMENT")},
		},
		{
			name: "government",
			raw:  "CITY OF FORT MYERS",
			want: []models.Party{org("CITY OF FORT MYERS")},
		},
		{
			name: "html entity",
			raw:  "O'BRIEN SEAN &amp; KATE",
			want: []models.Party{person("Sean", "", "O'Brien", ""), person("Kate", "", "O'Brien", "")},
		},
		{
			name: "empty",
			raw:  "  ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw, Options{Order: tt.order})
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestParsePrefix(t *testing.T) {
	got := Parse("DR JANE Q PUBLIC", Options{Order: FirstLast})
	if len(got) != 1 || got[0].Person == nil {
		t.Fatalf("expected one person, got %+v", got)
	}
	if models.Deref(got[0].Person.PrefixName) != "Dr." {
		t.Errorf("expected prefix Dr., got %q", models.Deref(got[0].Person.PrefixName))
	}
	if got[0].Person.LastName != "Public" {
		t.Errorf("expected last name Public, got %q", got[0].Person.LastName)
	}
}

func TestIsCompany(t *testing.T) {
	companies := []string{"ACME INC", "First National Bank", "SMITH FAMILY TRUST", "L.L.C. HOLDINGS", "STATE OF FLORIDA"}
	for _, c := range companies {
		if !IsCompany(c) {
			t.Errorf("expected %q to be a company", c)
		}
	}
	people := []string{"SMITH JOHN", "COLLINS MARY", "TRUSTMAN ANN"}
	for _, p := range people {
		if IsCompany(p) {
			t.Errorf("expected %q to be a person", p)
		}
	}
}
