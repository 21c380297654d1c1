// Package lee extracts Lee County property appraiser parcel pages.
package lee

import (
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
const Name = "lee"

func init() {
	county.Register(Extractor{})
}

// Extractor reads the #PropertyDetailsCurrent layout.
type Extractor struct{}

// Name implements county.Extractor.
func (Extractor) Name() string { return Name }

// Extract implements county.Extractor.
func (Extractor) Extract(doc *goquery.Document, s *seed.Seeds, opts county.Options) (*models.Parcel, error) {
	root := doc.Find("#PropertyDetailsCurrent")
	if root.Length() == 0 {
		return nil, extract.NewError(extract.ErrCodeParse, "no #PropertyDetailsCurrent section", extract.ErrParse).
			WithDetail("parcel_id", s.ParcelID())
	}

	p := county.NewParcel(Name, s)
	if strap := extract.LabelValue(root, "STRAP"); strap != "" && strap != s.ParcelID() {
		log.Debug().
			Str("parcel_id", s.ParcelID()).
			Str("strap", strap).
			Msg("Page STRAP differs from seed parcel id")
	}

	if err := county.ApplyUseCode(p, extract.LabelValue(root, "Use Code", "Land Use"), opts); err != nil {
		return nil, err
	}
	readProperty(root, p)

	situs := strings.Join(extract.Lines(extract.SectionAfter(root, "Site Address", "div.textPanel")), ", ")
	p.Address = county.Address(s, situs, Name)
	county.ApplySTR(p.Address, extract.LabelValue(root, "Section/Township/Range", "STR"))
	county.ApplyLegal(p.Address, models.Deref(p.Property.PropertyLegalDescriptionText))

	p.Lot = county.Lot(
		extract.LabelValue(root, "Land Area (Acres)", "Acres"),
		extract.LabelValue(root, "Land Area (Sq Ft)", "Land Area"),
		extract.LabelValue(root, "Frontage"),
		extract.LabelValue(root, "Depth"),
	)

	readBuilding(root, s, p)
	p.Taxes = readTaxes(root)
	p.Sales = readSales(root)

	owners := extract.Lines(extract.SectionAfter(root, "Owner Of Record", "div.textPanel"))
	p.Owners = county.Owners(s, owners, names.LastFirst)
	county.AttachOwnerHistory(p, s)

	log.Debug().
		Str("parcel_id", p.ParcelID).
		Int("sales", len(p.Sales)).
		Int("owners", len(p.Owners)).
		Msg("Extracted Lee parcel")
	return p, nil
}

func readProperty(root *goquery.Selection, p *models.Parcel) {
	prop := &p.Property
	prop.Subdivision = models.String(extract.LabelValue(root, "Subdivision"))
	prop.Zoning = models.String(extract.LabelValue(root, "Zoning"))
	prop.HistoricDesignation = text.Upper(extract.LabelValue(root, "Historic District")) == "YES"

	var legal []string
	for _, line := range extract.Lines(extract.SectionAfter(root, "Property Description", "div.textPanel")) {
		if strings.Contains(text.Upper(line), "DO NOT USE FOR LEGAL") {
			continue
		}
		legal = append(legal, line)
	}
	prop.PropertyLegalDescriptionText = models.String(strings.Join(legal, " "))

	prop.PropertyStructureBuiltYear = text.Year(extract.LabelValue(root, "Year Built"))
	prop.PropertyEffectiveBuiltYear = text.Year(extract.LabelValue(root, "Effective Year Built"))
	prop.LivableFloorArea = county.Area(extract.LabelValue(root, "Living Area"))
	prop.AreaUnderAir = prop.LivableFloorArea
	prop.TotalArea = county.Area(extract.LabelValue(root, "Gross Area"))
	prop.NumberOfUnits = text.Int(extract.LabelValue(root, "Units", "Number of Units"))
}

func readBuilding(root *goquery.Selection, s *seed.Seeds, p *models.Parcel) {
	st := &models.Structure{
		ExteriorWallMaterialPrimary:        county.ExteriorWall(extract.LabelValue(root, "Exterior Wall")),
		RoofCoveringMaterial:               county.RoofCovering(extract.LabelValue(root, "Roof Cover")),
		RoofDesignType:                     county.RoofDesign(extract.LabelValue(root, "Roof Structure")),
		FoundationType:                     county.Foundation(extract.LabelValue(root, "Foundation")),
		FlooringMaterialPrimary:            county.Flooring(extract.LabelValue(root, "Floor Cover")),
		InteriorWallSurfaceMaterialPrimary: county.InteriorWall(extract.LabelValue(root, "Interior Wall")),
		NumberOfStories:                    text.Float(extract.LabelValue(root, "Stories")),
		FinishedBaseArea:                   text.Int(extract.LabelValue(root, "Living Area")),
		NumberOfBuildings:                  text.Int(extract.LabelValue(root, "Buildings")),
	}
	if !county.IsEmptyStructure(st) {
		p.Structure = st
	}

	if s.Utility != nil {
		p.Utility = s.Utility
	} else {
		u := &models.Utility{
			HeatingSystemType: county.HeatingType(extract.LabelValue(root, "Heating")),
			CoolingSystemType: county.CoolingType(extract.LabelValue(root, "Cooling", "Air Conditioning")),
			WaterSourceType:   county.WaterSource(extract.LabelValue(root, "Water")),
			SewerType:         county.SewerType(extract.LabelValue(root, "Sewer")),
		}
		if !county.IsEmptyUtility(u) {
			p.Utility = u
		}
	}

	if len(s.Layouts) > 0 {
		p.Layouts = s.Layouts
		return
	}
	beds := text.Int(extract.LabelValue(root, "Bedrooms"))
	baths := text.Float(extract.LabelValue(root, "Bathrooms"))
	if beds == nil && baths == nil {
		return
	}
	var b int
	var ba float64
	if beds != nil {
		b = *beds
	}
	if baths != nil {
		ba = *baths
	}
	p.Layouts = county.Layouts(b, ba, 0)
}

func table(root *goquery.Selection, id, heading string) *extract.Table {
	sel := root.Find("#" + id)
	if sel.Length() == 0 {
		sel = extract.SectionAfter(root, heading, "table")
	}
	return extract.ParseTable(sel)
}

func readTaxes(root *goquery.Selection) []models.Tax {
	byYear := make(map[int]*models.Tax)
	get := func(year int) *models.Tax {
		if t, ok := byYear[year]; ok {
			return t
		}
		t := county.Tax(year)
		byYear[year] = &t
		return &t
	}

	for _, row := range table(root, "ValueHistory", "Property Values").Rows {
		year := text.Year(row.Get("Tax Year", "Year"))
		if year == nil {
			continue
		}
		t := get(*year)
		t.PropertyMarketValueAmount = text.Money(row.Get("Just", "Market"))
		t.PropertyLandAmount = text.Money(row.Get("Land"))
		t.PropertyBuildingAmount = text.Money(row.Get("Building"))
		t.PropertyAssessedValueAmount = text.Money(row.Get("Assessed"))
		t.PropertyTaxableValueAmount = text.Money(row.Get("Taxable"))
	}
	for _, row := range table(root, "TaxBills", "Tax Bills").Rows {
		year := text.Year(row.Get("Tax Year", "Year"))
		if year == nil {
			continue
		}
		county.SetYearlyTax(get(*year), text.Money(row.Get("Amount Billed", "Amount", "Total")))
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	taxes := make([]models.Tax, 0, len(years))
	for _, y := range years {
		taxes = append(taxes, *byYear[y])
	}
	return taxes
}

func readSales(root *goquery.Selection) []models.SaleRecord {
	var sales []models.SaleRecord
	for _, row := range table(root, "SalesDetails", "Sales / Transactions").Rows {
		in := county.SaleInput{
			Price:         row.Get("Sale Price", "Price"),
			Date:          row.Get("Date"),
			Instrument:    row.Get("Type", "Deed Type"),
			Qualification: row.Get("Qualification", "Vacant/Improved"),
			Grantee:       strings.Join(row.Lines("Grantee", "Buyer"), "\n"),
			Grantor:       strings.Join(row.Lines("Grantor", "Seller"), "\n"),
			Order:         names.LastFirst,
		}

		ref := row.Get("OR Number", "OR Book/Page", "Instrument")
		if isInstrumentNumber(ref) {
			in.InstrumentNo = ref
		} else {
			in.BookPage = ref
		}
		if c := row.Cell("OR Number", "OR Book/Page", "Instrument"); c != nil {
			in.DocumentURL, _ = c.Find("a").Attr("href")
		}
		sales = append(sales, county.Sale(in))
	}
	return sales
}

func isInstrumentNumber(s string) bool {
	if len(s) < 8 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
