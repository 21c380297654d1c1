package county

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/law-makers/appraiser/internal/address"
	"github.com/law-makers/appraiser/internal/deed"
	"github.com/law-makers/appraiser/internal/names"
	"github.com/law-makers/appraiser/internal/seed"
	"github.com/law-makers/appraiser/internal/text"
	"github.com/law-makers/appraiser/internal/usecode"
	"github.com/law-makers/appraiser/pkg/models"
)

// NewParcel starts a parcel from the seeds.
func NewParcel(county string, s *seed.Seeds) *models.Parcel {
	return &models.Parcel{
		ParcelID: s.ParcelID(),
		County:   county,
		Source:   s.Provenance(),
		Property: models.Property{ParcelIdentifier: s.ParcelID()},
	}
}

// ApplyUseCode maps raw onto the property taxonomy fields.
func ApplyUseCode(p *models.Parcel, raw string, opts Options) error {
	p.Property.UseCode = models.String(raw)
	if text.Clean(raw) == "" {
		return nil
	}
	m, err := usecode.Lookup(p.County, raw, opts.Strict)
	if err != nil {
		return err
	}
	m.Apply(&p.Property)
	return nil
}

// Address prefers the seed's full address and falls back to the situs
// scraped from the page. County and coordinates come from the seed.
func Address(s *seed.Seeds, situs, county string) *models.Address {
	full := situs
	if s.Address != nil && strings.TrimSpace(s.Address.FullAddress) != "" {
		full = s.Address.FullAddress
	}
	if text.Clean(full) == "" {
		return nil
	}
	a := address.Parse(full)
	if a.StateCode == nil {
		a.StateCode = models.String("FL")
		a.CountryCode = models.String("US")
	}
	name := county
	if s.Address != nil && s.Address.CountyJurisdiction != "" {
		name = s.Address.CountyJurisdiction
	}
	a.CountyName = models.String(text.Title(name))
	if s.Address != nil {
		a.Latitude = s.Address.Latitude
		a.Longitude = s.Address.Longitude
	}
	return &a
}

// ApplySTR fills section/township/range from an "ss-tt-rr" string.
func ApplySTR(a *models.Address, raw string) {
	if a == nil {
		return
	}
	if sec, twp, rng, ok := address.ParseSTR(raw); ok {
		a.Section = models.String(sec)
		a.Township = models.String(twp)
		a.Range = models.String(rng)
	}
}

// ApplyLegal copies block and lot numbers found in the legal description.
func ApplyLegal(a *models.Address, legal string) {
	if a == nil {
		return
	}
	block, lot := address.BlockLot(legal)
	if a.Block == nil {
		a.Block = models.String(block)
	}
	if a.Lot == nil {
		a.Lot = models.String(lot)
	}
}

// Owners returns the pre-parsed current owners when the seed carries them,
// otherwise parses the owner lines scraped from the page.
func Owners(s *seed.Seeds, lines []string, order names.Order) []models.Party {
	if s.Owners != nil {
		if current := s.Owners.Current(); len(current) > 0 {
			return current
		}
	}
	return names.Parse(OwnerText(lines), names.Options{Order: order})
}

var (
	mailingLine = regexp.MustCompile(`^(?:\d|P\s*O\s*BOX|POST OFFICE|PMB\b)`)
	cityLine    = regexp.MustCompile(`\b[A-Z]{2}\s+\d{5}(?:-\d{4})?$`)
)

// OwnerText joins the name lines of an owner block. Mailing address lines end
// the block; a line ending in "&" continues onto the next one.
func OwnerText(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		line = text.Upper(line)
		if line == "" {
			continue
		}
		if b.Len() > 0 && (mailingLine.MatchString(line) || cityLine.MatchString(line)) {
			break
		}
		if b.Len() > 0 {
			prev := b.String()
			if strings.HasSuffix(prev, "&") || strings.HasSuffix(prev, " AND") || strings.HasPrefix(line, "&") {
				b.WriteString(" ")
			} else {
				b.WriteString("\n")
			}
		}
		b.WriteString(line)
	}
	return b.String()
}

// SaleInput is one sales-table row as scraped.
type SaleInput struct {
	Date          string
	Price         string
	Instrument    string
	Qualification string
	BookPage      string
	Book          string
	Page          string
	InstrumentNo  string
	DocumentURL   string
	Grantor       string
	Grantee       string
	Order         names.Order
}

// Sale turns a scraped row into a SaleRecord with its deed and file.
func Sale(in SaleInput) models.SaleRecord {
	rec := models.SaleRecord{
		Sale: models.Sale{
			OwnershipTransferDate: text.DatePtr(in.Date),
			PurchasePriceAmount:   text.Money(in.Price),
			SaleType:              deed.SaleType(in.Qualification, in.Instrument),
		},
		RawGrantee: in.Grantee,
	}

	book, page := in.Book, in.Page
	if book == "" && page == "" {
		book, page, _ = deed.BookPage(in.BookPage)
	}
	d := &models.Deed{
		DeedType:         deed.Classify(in.Instrument),
		Book:             models.String(book),
		Page:             models.String(page),
		InstrumentNumber: models.String(in.InstrumentNo),
	}
	rec.Deed = d

	if in.DocumentURL != "" {
		name := in.InstrumentNo
		if name == "" && book != "" {
			name = book + "/" + page
		}
		rec.File = &models.File{
			DocumentType: models.String("ConveyanceDeed"),
			FileFormat:   models.String(fileFormat(in.DocumentURL)),
			Name:         models.String(name),
			OriginalURL:  models.String(in.DocumentURL),
		}
	}

	opts := names.Options{Order: in.Order}
	rec.Grantors = names.Parse(in.Grantor, opts)
	rec.Grantees = names.Parse(in.Grantee, opts)
	return rec
}

func fileFormat(u string) string {
	u = strings.ToLower(u)
	switch {
	case strings.Contains(u, ".pdf"):
		return "pdf"
	case strings.Contains(u, ".tif"):
		return "tiff"
	case strings.Contains(u, ".png"):
		return "png"
	case strings.Contains(u, ".jpg"), strings.Contains(u, ".jpeg"):
		return "jpeg"
	}
	return "html"
}

// AttachOwnerHistory fills empty grantee lists from the seed's owners_by_date
// when a sale's date has an entry there.
func AttachOwnerHistory(p *models.Parcel, s *seed.Seeds) {
	if s.Owners == nil {
		return
	}
	for i := range p.Sales {
		rec := &p.Sales[i]
		if len(rec.Grantees) > 0 || rec.Sale.OwnershipTransferDate == nil {
			continue
		}
		rec.Grantees = s.Owners.On(*rec.Sale.OwnershipTransferDate)
	}
}

// Area renders a square-footage cell as the digit string used by the area
// fields ("1,850 SF" becomes "1850").
func Area(raw string) *string {
	n := text.Int(raw)
	if n == nil || *n <= 0 {
		return nil
	}
	return models.String(strconv.Itoa(*n))
}

// Lot builds lot.json from acreage, square footage and frontage/depth cells.
// Square footage is derived from acreage when the page lists only acres.
func Lot(acres, sqft, width, depth string) *models.Lot {
	l := &models.Lot{
		LotSizeAcre:   text.Float(acres),
		LotAreaSqft:   text.Int(sqft),
		LotWidthFeet:  text.Float(width),
		LotLengthFeet: text.Float(depth),
	}
	if l.LotSizeAcre != nil && *l.LotSizeAcre <= 0 {
		l.LotSizeAcre = nil
	}
	if l.LotAreaSqft != nil && *l.LotAreaSqft <= 0 {
		l.LotAreaSqft = nil
	}
	if l.LotAreaSqft == nil && l.LotSizeAcre != nil {
		l.LotAreaSqft = models.Int(int(math.Round(*l.LotSizeAcre * 43560)))
	}
	if l.LotSizeAcre == nil && l.LotAreaSqft != nil {
		l.LotSizeAcre = models.Float(math.Round(float64(*l.LotAreaSqft)/43560*10000) / 10000)
	}
	if l.LotSizeAcre != nil {
		if *l.LotSizeAcre <= 0.25 {
			l.LotType = models.String("LessThanOrEqualToOneQuarterAcre")
		} else {
			l.LotType = models.String("GreaterThanOneQuarterAcre")
		}
	}
	if l.LotSizeAcre == nil && l.LotWidthFeet == nil && l.LotLengthFeet == nil {
		return nil
	}
	return l
}

// Tax starts a tax_<year>.json with the calendar-year period.
func Tax(year int) models.Tax {
	y := strconv.Itoa(year)
	return models.Tax{
		TaxYear:         year,
		PeriodStartDate: models.String(y + "-01-01"),
		PeriodEndDate:   models.String(y + "-12-31"),
	}
}

// SetYearlyTax records the billed amount and its monthly share.
func SetYearlyTax(t *models.Tax, amount *float64) {
	t.YearlyTaxAmount = amount
	if amount != nil {
		t.MonthlyTaxAmount = models.Float(math.Round(*amount/12*100) / 100)
	}
}
