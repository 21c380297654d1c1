// Package collier extracts Collier County property appraiser parcel pages.
package collier

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/law-makers/appraiser/internal/county"
	"github.com/law-makers/appraiser/internal/extract"
	"github.com/law-makers/appraiser/internal/names"
	"github.com/law-makers/appraiser/internal/seed"
	"github.com/law-makers/appraiser/internal/text"
	"github.com/law-makers/appraiser/pkg/models"
)

// Name is the registry key.
const Name = "collier"

func init() {
	county.Register(Extractor{})
}

// Extractor reads the #ParcelSummary layout with its span ids.
type Extractor struct{}

// Name implements county.Extractor.
func (Extractor) Name() string { return Name }

var subdivisionCode = regexp.MustCompile(`^\d+\s*-\s*`)

// Extract implements county.Extractor.
func (Extractor) Extract(doc *goquery.Document, s *seed.Seeds, opts county.Options) (*models.Parcel, error) {
	summary := doc.Find("#ParcelSummary")
	if summary.Length() == 0 {
		return nil, extract.NewError(extract.ErrCodeParse, "no #ParcelSummary section", extract.ErrParse).
			WithDetail("parcel_id", s.ParcelID())
	}
	page := doc.Selection

	p := county.NewParcel(Name, s)
	if err := county.ApplyUseCode(p, extract.ByID(summary, "UseCode"), opts); err != nil {
		return nil, err
	}

	prop := &p.Property
	prop.PropertyLegalDescriptionText = models.String(extract.ByID(summary, "LegalDesc"))
	prop.Subdivision = models.String(subdivisionCode.ReplaceAllString(extract.ByID(summary, "SubCondo"), ""))

	situs := extract.ByID(summary, "SiteAddress")
	if situs != "" {
		situs = fmt.Sprintf("%s, %s, FL %s", situs, extract.ByID(summary, "SiteCity"), extract.ByID(summary, "SiteZip"))
	}
	p.Address = county.Address(s, situs, Name)
	county.ApplySTR(p.Address, extract.ByID(summary, "STR"))
	county.ApplyLegal(p.Address, models.Deref(prop.PropertyLegalDescriptionText))

	p.Lot = county.Lot(extract.ByID(summary, "Acres"), "", "", "")

	readBuilding(page, s, p)
	p.Taxes = readTaxes(page)
	p.Sales = readSales(page)

	var lines []string
	for i := 1; i <= 5; i++ {
		lines = append(lines, extract.ByID(summary, fmt.Sprintf("Name%d", i)))
	}
	p.Owners = county.Owners(s, lines, names.LastFirst)
	county.AttachOwnerHistory(p, s)

	log.Debug().
		Str("parcel_id", p.ParcelID).
		Int("sales", len(p.Sales)).
		Int("owners", len(p.Owners)).
		Msg("Extracted Collier parcel")
	return p, nil
}

func grid(page *goquery.Selection, id, heading string) *extract.Table {
	sel := page.Find("table#" + id)
	if sel.Length() == 0 {
		sel = extract.SectionAfter(page, heading, "table")
	}
	return extract.ParseTable(sel)
}

func readBuilding(page *goquery.Selection, s *seed.Seeds, p *models.Parcel) {
	rows := grid(page, "BuildingTable", "Building Information").Rows
	if len(rows) == 0 {
		p.Utility, p.Layouts = s.Utility, s.Layouts
		return
	}
	// The first building carries the living area; the rest are outbuildings.
	b := rows[0]

	p.Property.PropertyStructureBuiltYear = text.Year(b.Get("Year Built"))
	p.Property.LivableFloorArea = county.Area(b.Get("Living Area"))
	p.Property.AreaUnderAir = p.Property.LivableFloorArea

	total := 0
	for _, r := range rows {
		if a := text.Int(r.Get("Living Area")); a != nil {
			total += *a
		}
	}
	if total > 0 {
		p.Property.TotalArea = models.String(fmt.Sprint(total))
	}

	st := &models.Structure{
		ExteriorWallMaterialPrimary: county.ExteriorWall(b.Get("Ext Wall", "Exterior")),
		RoofCoveringMaterial:        county.RoofCovering(b.Get("Roof")),
		NumberOfStories:             text.Float(b.Get("Stories")),
		FinishedBaseArea:            text.Int(b.Get("Living Area")),
		NumberOfBuildings:           models.Int(len(rows)),
	}
	// Condo rows report the building's floor count, which says nothing about
	// the unit itself.
	if models.Deref(p.Property.PropertyType) == "Unit" {
		st.NumberOfStories = nil
		st.AttachmentType = models.String("Attached")
	}
	if !county.IsEmptyStructure(st) {
		p.Structure = st
	}

	if s.Utility != nil {
		p.Utility = s.Utility
	} else {
		u := &models.Utility{
			HeatingSystemType: county.HeatingType(b.Get("Heat")),
			CoolingSystemType: county.CoolingType(b.Get("A/C", "AC")),
		}
		if !county.IsEmptyUtility(u) {
			p.Utility = u
		}
	}

	if len(s.Layouts) > 0 {
		p.Layouts = s.Layouts
		return
	}
	var beds, half int
	var baths float64
	if v := text.Int(b.Get("Beds", "Bedrooms")); v != nil {
		beds = *v
	}
	if v := text.Float(b.Get("Baths", "Bathrooms")); v != nil {
		baths = *v
	}
	if v := text.Int(b.Get("Half Baths")); v != nil {
		half = *v
	}
	p.Layouts = county.Layouts(beds, baths, half)
}

func readTaxes(page *goquery.Selection) []models.Tax {
	var taxes []models.Tax
	for _, row := range grid(page, "TaxRoll", "Tax Roll").Rows {
		year := text.Year(row.Get("Roll Year", "Year"))
		if year == nil {
			continue
		}
		t := county.Tax(*year)
		t.PropertyLandAmount = text.Money(row.Get("Land Value"))
		t.PropertyBuildingAmount = text.Money(row.Get("Improved Value"))
		t.PropertyMarketValueAmount = text.Money(row.Get("Market Value", "Just Value"))
		t.PropertyAssessedValueAmount = text.Money(row.Get("Assessed Value"))
		t.PropertyTaxableValueAmount = text.Money(row.Get("Taxable Value"))
		county.SetYearlyTax(&t, text.Money(row.Get("Total Tax", "Tax")))
		taxes = append(taxes, t)
	}
	sort.SliceStable(taxes, func(i, j int) bool { return taxes[i].TaxYear > taxes[j].TaxYear })
	return taxes
}

func readSales(page *goquery.Selection) []models.SaleRecord {
	var sales []models.SaleRecord
	for _, row := range grid(page, "SalesGrid", "Sales History").Rows {
		in := county.SaleInput{
			Date:       row.Get("Date"),
			BookPage:   row.Get("Book-Page", "Book/Page"),
			Price:      row.Get("Amount", "Price"),
			Instrument: row.Get("Deed", "Type"),
			Grantor:    strings.Join(row.Lines("Grantor"), "\n"),
			Grantee:    strings.Join(row.Lines("Grantee"), "\n"),
			Order:      names.FirstLast,
		}
		// no qualification column; priced sales count as qualified
		if p := text.Money(in.Price); p != nil && *p > 100 {
			in.Qualification = "Q"
		}
		if c := row.Cell("Book-Page", "Book/Page"); c != nil {
			in.DocumentURL, _ = c.Find("a").Attr("href")
		}
		sales = append(sales, county.Sale(in))
	}
	return sales
}
