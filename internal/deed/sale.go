package deed

import (
	"regexp"
	"strings"

	"github.com/law-makers/appraiser/internal/text"
)

// Sale types emitted in sales.json.
const (
	TypicallyMotivated                = "TypicallyMotivated"
	ReoPostForeclosureSale            = "ReoPostForeclosureSale"
	ShortSale                         = "ShortSale"
	ProbateSale                       = "ProbateSale"
	CourtOrderedNonForeclosureSale    = "CourtOrderedNonForeclosureSale"
	TrusteeNonJudicialForeclosureSale = "TrusteeNonJudicialForeclosureSale"
	TrusteeJudicialForeclosureSale    = "TrusteeJudicialForeclosureSale"
	RelocationSale                    = "RelocationSale"
)

var saleRules = []struct {
	re   *regexp.Regexp
	kind string
}{
	{regexp.MustCompile(`SHORT\s+SALE`), ShortSale},
	{regexp.MustCompile(`RELOCAT`), RelocationSale},
	{regexp.MustCompile(`NON-?JUDICIAL|TRUSTEE\s+SALE`), TrusteeNonJudicialForeclosureSale},
	{regexp.MustCompile(`JUDICIAL\s+FORECLOS`), TrusteeJudicialForeclosureSale},
	{regexp.MustCompile(`FORECLOS|\bREO\b|BANK\s*OWNED|LENDER|CERTIFICATE\s+OF\s+TITLE`), ReoPostForeclosureSale},
	{regexp.MustCompile(`PROBATE|ESTATE\s+SALE|PERSONAL\s+REP`), ProbateSale},
	{regexp.MustCompile(`\bCOURT\b|JUDGMENT|DIVORCE`), CourtOrderedNonForeclosureSale},
}

var qualified = regexp.MustCompile(`^(?:Q|QUAL|QUALIFIED)\b`)

// SaleType derives sale_type from the qualification column and the
// instrument. An unqualified sale with no recognisable reason has no type.
func SaleType(qualification, instrument string) *string {
	q := strings.ToUpper(text.Clean(qualification))
	for _, r := range saleRules {
		if r.re.MatchString(q) {
			return &r.kind
		}
	}
	switch Classify(instrument) {
	case SheriffsDeed, DeedInLieuOfForeclosure:
		v := ReoPostForeclosureSale
		return &v
	case PersonalRepresentative, AdministratorsDeed:
		v := ProbateSale
		return &v
	case CourtOrderDeed:
		v := CourtOrderedNonForeclosureSale
		return &v
	}
	if qualified.MatchString(q) {
		v := TypicallyMotivated
		return &v
	}
	return nil
}

var (
	bookPageLabeled = regexp.MustCompile(`(?:BOOK|BK|OR\s*BOOK)\.?\s*:?\s*(\d+)\D+?(?:PAGE|PG)\.?\s*:?\s*(\d+)`)
	bookPageSlashed = regexp.MustCompile(`(?:^|[^\d])(\d{1,6})\s*[/-]\s*(\d{1,5})(?:$|[^\d])`)
)

// BookPage reads official-records references such as "OR 1234/567",
// "1234-0567" or "Book 1234 Page 567". Leading zeros are kept.
func BookPage(s string) (book, page string, ok bool) {
	s = strings.ToUpper(text.Clean(s))
	if m := bookPageLabeled.FindStringSubmatch(s); m != nil {
		return m[1], m[2], true
	}
	if m := bookPageSlashed.FindStringSubmatch(s); m != nil {
		return m[1], m[2], true
	}
	return "", "", false
}
