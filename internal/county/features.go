package county

import (
	"strings"

	"github.com/law-makers/appraiser/internal/text"
	"github.com/law-makers/appraiser/pkg/models"
)

type rule struct {
	contains []string
	value    string
}

// match returns the value of the first rule with a keyword found in raw.
func match(raw string, rules []rule) *string {
	s := text.Upper(raw)
	if s == "" {
		return nil
	}
	for _, r := range rules {
		for _, c := range r.contains {
			if hasKeyword(s, c) {
				v := r.value
				return &v
			}
		}
	}
	return nil
}

// hasKeyword reports whether kw starts a word in s. Keywords of three letters
// or fewer must also end one, so AC matches "CENTRAL AC" but not "SPACE".
func hasKeyword(s, kw string) bool {
	for i := 0; i < len(s); {
		j := strings.Index(s[i:], kw)
		if j < 0 {
			return false
		}
		start, end := i+j, i+j+len(kw)
		if (start == 0 || !isWordByte(s[start-1])) && (len(kw) > 3 || end == len(s) || !isWordByte(s[end])) {
			return true
		}
		i = start + 1
	}
	return false
}

func isWordByte(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

var heatingRules = []rule{
	{[]string{"HEAT PUMP"}, "HeatPump"},
	{[]string{"NONE", "NO HEAT"}, "None"},
	{[]string{"GAS"}, "GasFurnace"},
	{[]string{"ELECTRIC", "ELEC", "CENTRAL", "FORCED AIR"}, "ElectricFurnace"},
	{[]string{"RADIANT"}, "Radiant"},
	{[]string{"BASEBOARD"}, "Baseboard"},
}

var coolingRules = []rule{
	{[]string{"NONE", "NO A/C", "NO AC"}, "None"},
	{[]string{"WINDOW", "WALL UNIT"}, "WindowAirConditioner"},
	{[]string{"CENTRAL", "AIR COND", "A/C", "AC", "HEAT PUMP"}, "CentralAir"},
	{[]string{"DUCTLESS", "MINI SPLIT"}, "Ductless"},
}

var sewerRules = []rule{
	{[]string{"SEPTIC"}, "Septic"},
	{[]string{"SEWER", "PUBLIC", "MUNICIPAL", "CITY"}, "Public"},
}

var waterRules = []rule{
	{[]string{"WELL"}, "Well"},
	{[]string{"PUBLIC", "MUNICIPAL", "CITY", "COUNTY", "UTILITY"}, "Public"},
}

var exteriorWallRules = []rule{
	{[]string{"STUCCO"}, "Stucco"},
	{[]string{"BRICK"}, "Brick"},
	{[]string{"BLOCK", "CONC", "CBS", "MASONRY"}, "Concrete Block"},
	{[]string{"VINYL"}, "Vinyl Siding"},
	{[]string{"WOOD", "FRAME"}, "Wood Siding"},
	{[]string{"HARDI", "FIBER CEMENT"}, "Fiber Cement Siding"},
	{[]string{"METAL", "ALUM"}, "Metal Siding"},
	{[]string{"STONE"}, "Natural Stone"},
}

var roofCoveringRules = []rule{
	{[]string{"TILE", "CLAY", "CONCRETE TILE"}, "Concrete Tile"},
	{[]string{"METAL", "STEEL", "ALUM"}, "Metal Standing Seam"},
	{[]string{"SHINGLE", "COMP", "ASPHALT"}, "Architectural Asphalt Shingle"},
	{[]string{"BUILT", "TAR", "GRAVEL", "FLAT", "MEMBRANE"}, "Built-Up Roof"},
	{[]string{"WOOD", "SHAKE"}, "Wood Shake"},
}

var roofDesignRules = []rule{
	{[]string{"HIP"}, "Hip"},
	{[]string{"GABLE"}, "Gable"},
	{[]string{"FLAT"}, "Flat"},
	{[]string{"MANSARD"}, "Mansard"},
	{[]string{"SHED"}, "Shed"},
	{[]string{"GAMBREL"}, "Gambrel"},
}

var foundationRules = []rule{
	{[]string{"SLAB"}, "Slab on Grade"},
	{[]string{"PILING", "PILE", "STILT"}, "Pier and Beam"},
	{[]string{"CRAWL"}, "Crawl Space"},
	{[]string{"BASEMENT"}, "Full Basement"},
}

var flooringRules = []rule{
	{[]string{"TILE", "CERAMIC"}, "Ceramic Tile"},
	{[]string{"CARPET"}, "Carpet"},
	{[]string{"HARDWOOD", "WOOD"}, "Solid Hardwood"},
	{[]string{"VINYL"}, "Sheet Vinyl"},
	{[]string{"LAMINATE"}, "Laminate"},
	{[]string{"TERRAZZO"}, "Terrazzo"},
}

var interiorWallRules = []rule{
	{[]string{"DRYWALL", "GYPSUM"}, "Drywall"},
	{[]string{"PLASTER"}, "Plaster"},
	{[]string{"PANEL"}, "Wood Paneling"},
}

// HeatingType maps a heating description.
func HeatingType(raw string) *string { return match(raw, heatingRules) }

// CoolingType maps an air-conditioning description.
func CoolingType(raw string) *string { return match(raw, coolingRules) }

// SewerType maps a sewer description.
func SewerType(raw string) *string { return match(raw, sewerRules) }

// WaterSource maps a water supply description.
func WaterSource(raw string) *string { return match(raw, waterRules) }

// ExteriorWall maps an exterior wall description.
func ExteriorWall(raw string) *string { return match(raw, exteriorWallRules) }

// RoofCovering maps a roof cover description.
func RoofCovering(raw string) *string { return match(raw, roofCoveringRules) }

// RoofDesign maps a roof structure description.
func RoofDesign(raw string) *string { return match(raw, roofDesignRules) }

// Foundation maps a foundation description.
func Foundation(raw string) *string { return match(raw, foundationRules) }

// Flooring maps a floor cover description.
func Flooring(raw string) *string { return match(raw, flooringRules) }

// InteriorWall maps an interior wall description.
func InteriorWall(raw string) *string { return match(raw, interiorWallRules) }

// Layouts lists one bedroom layout per bedroom followed by the bathrooms.
// Half baths are given as the fractional part of a "2.5" bath count or
// separately. Indexes are 1-based across all spaces.
func Layouts(beds int, baths float64, halfBaths int) []models.Layout {
	full := int(baths)
	if halfBaths == 0 && baths-float64(full) >= 0.5 {
		halfBaths = 1
	}

	var out []models.Layout
	add := func(kind string, n int) {
		for i := 0; i < n; i++ {
			out = append(out, models.Layout{
				SpaceType:  kind,
				SpaceIndex: len(out) + 1,
				IsFinished: true,
			})
		}
	}
	add("Bedroom", beds)
	add("Full Bathroom", full)
	add("Half Bathroom / Powder Room", halfBaths)
	return out
}

// IsEmptyUtility reports whether no utility field was found.
func IsEmptyUtility(u *models.Utility) bool {
	return u == nil || (u.CoolingSystemType == nil && u.HeatingSystemType == nil &&
		u.PublicUtilityType == nil && u.SewerType == nil && u.WaterSourceType == nil &&
		u.ElectricalPanelCapacity == nil && !u.SolarPanelPresent)
}

// IsEmptyStructure reports whether no structure field was found.
func IsEmptyStructure(s *models.Structure) bool {
	return s == nil || (s.ArchitecturalStyleType == nil && s.AttachmentType == nil &&
		s.ExteriorWallMaterialPrimary == nil && s.RoofCoveringMaterial == nil &&
		s.RoofDesignType == nil && s.FoundationType == nil &&
		s.FlooringMaterialPrimary == nil && s.InteriorWallSurfaceMaterialPrimary == nil &&
		s.NumberOfStories == nil && s.FinishedBaseArea == nil && s.NumberOfBuildings == nil)
}
