package models

// Property is property.json.
type Property struct {
	Provenance
	ParcelIdentifier             string   `json:"parcel_identifier"`
	PropertyType                 *string  `json:"property_type"`
	PropertyUsageType            *string  `json:"property_usage_type"`
	StructureForm                *string  `json:"structure_form"`
	BuildStatus                  *string  `json:"build_status"`
	OwnershipEstateType          *string  `json:"ownership_estate_type"`
	PropertyStructureBuiltYear   *int     `json:"property_structure_built_year"`
	PropertyEffectiveBuiltYear   *int     `json:"property_effective_built_year"`
	LivableFloorArea             *string  `json:"livable_floor_area"`
	TotalArea                    *string  `json:"total_area"`
	AreaUnderAir                 *string  `json:"area_under_air"`
	NumberOfUnits                *int     `json:"number_of_units"`
	NumberOfUnitsType            *string  `json:"number_of_units_type"`
	Subdivision                  *string  `json:"subdivision"`
	PropertyLegalDescriptionText *string  `json:"property_legal_description_text"`
	Zoning                       *string  `json:"zoning"`
	HistoricDesignation          bool     `json:"historic_designation"`
	UseCode                      *string  `json:"-"`
	MarketValue                  *float64 `json:"-"`
}

// Address is address.json.
type Address struct {
	Provenance
	StreetNumber              *string  `json:"street_number"`
	StreetPreDirectionalText  *string  `json:"street_pre_directional_text"`
	StreetName                *string  `json:"street_name"`
	StreetSuffixType          *string  `json:"street_suffix_type"`
	StreetPostDirectionalText *string  `json:"street_post_directional_text"`
	UnitIdentifier            *string  `json:"unit_identifier"`
	CityName                  *string  `json:"city_name"`
	StateCode                 *string  `json:"state_code"`
	PostalCode                *string  `json:"postal_code"`
	PlusFourPostalCode        *string  `json:"plus_four_postal_code"`
	CountyName                *string  `json:"county_name"`
	CountryCode               *string  `json:"country_code"`
	MunicipalityName          *string  `json:"municipality_name"`
	Township                  *string  `json:"township"`
	Range                     *string  `json:"range"`
	Section                   *string  `json:"section"`
	Block                     *string  `json:"block"`
	Lot                       *string  `json:"lot"`
	Latitude                  *float64 `json:"latitude"`
	Longitude                 *float64 `json:"longitude"`
}

// Lot is lot.json.
type Lot struct {
	Provenance
	LotAreaSqft   *int     `json:"lot_area_sqft"`
	LotSizeAcre   *float64 `json:"lot_size_acre"`
	LotType       *string  `json:"lot_type"`
	LotLengthFeet *float64 `json:"lot_length_feet"`
	LotWidthFeet  *float64 `json:"lot_width_feet"`
}

// Tax is tax_<year>.json.
type Tax struct {
	Provenance
	TaxYear                     int      `json:"tax_year"`
	PropertyAssessedValueAmount *float64 `json:"property_assessed_value_amount"`
	PropertyMarketValueAmount   *float64 `json:"property_market_value_amount"`
	PropertyBuildingAmount      *float64 `json:"property_building_amount"`
	PropertyLandAmount          *float64 `json:"property_land_amount"`
	PropertyTaxableValueAmount  *float64 `json:"property_taxable_value_amount"`
	YearlyTaxAmount             *float64 `json:"yearly_tax_amount"`
	MonthlyTaxAmount            *float64 `json:"monthly_tax_amount"`
	PeriodStartDate             *string  `json:"period_start_date"`
	PeriodEndDate               *string  `json:"period_end_date"`
}

// Sale is sales_<n>.json.
type Sale struct {
	Provenance
	OwnershipTransferDate *string  `json:"ownership_transfer_date"`
	PurchasePriceAmount   *float64 `json:"purchase_price_amount"`
	SaleType              *string  `json:"sale_type"`
}

// Deed is deed_<n>.json.
type Deed struct {
	Provenance
	DeedType         string  `json:"deed_type"`
	Book             *string `json:"book"`
	Page             *string `json:"page"`
	InstrumentNumber *string `json:"instrument_number"`
}

// File is file_<n>.json, a pointer to the recorded deed document.
type File struct {
	Provenance
	DocumentType *string `json:"document_type"`
	FileFormat   *string `json:"file_format"`
	Name         *string `json:"name"`
	OriginalURL  *string `json:"original_url"`
	IPFSURL      *string `json:"ipfs_url"`
}

// Person is person_<n>.json.
type Person struct {
	Provenance
	PrefixName          *string `json:"prefix_name"`
	FirstName           string  `json:"first_name"`
	MiddleName          *string `json:"middle_name"`
	LastName            string  `json:"last_name"`
	SuffixName          *string `json:"suffix_name"`
	BirthDate           *string `json:"birth_date"`
	USCitizenshipStatus *string `json:"us_citizenship_status"`
	VeteranStatus       *bool   `json:"veteran_status"`
}

// Company is company_<n>.json.
type Company struct {
	Provenance
	Name string `json:"name"`
}

// Structure is structure.json.
type Structure struct {
	Provenance
	ArchitecturalStyleType             *string  `json:"architectural_style_type"`
	AttachmentType                     *string  `json:"attachment_type"`
	ExteriorWallMaterialPrimary        *string  `json:"exterior_wall_material_primary"`
	RoofCoveringMaterial               *string  `json:"roof_covering_material"`
	RoofDesignType                     *string  `json:"roof_design_type"`
	FoundationType                     *string  `json:"foundation_type"`
	FlooringMaterialPrimary            *string  `json:"flooring_material_primary"`
	InteriorWallSurfaceMaterialPrimary *string  `json:"interior_wall_surface_material_primary"`
	NumberOfStories                    *float64 `json:"number_of_stories"`
	FinishedBaseArea                   *int     `json:"finished_base_area"`
	NumberOfBuildings                  *int     `json:"number_of_buildings"`
}

// Utility is utility.json.
type Utility struct {
	Provenance
	CoolingSystemType       *string `json:"cooling_system_type"`
	HeatingSystemType       *string `json:"heating_system_type"`
	PublicUtilityType       *string `json:"public_utility_type"`
	SewerType               *string `json:"sewer_type"`
	WaterSourceType         *string `json:"water_source_type"`
	ElectricalPanelCapacity *string `json:"electrical_panel_capacity"`
	SolarPanelPresent       bool    `json:"solar_panel_present"`
}

// Layout is layout_<n>.json, one room or space.
type Layout struct {
	Provenance
	SpaceType      string  `json:"space_type"`
	SpaceIndex     int     `json:"space_index"`
	FloorLevel     *string `json:"floor_level"`
	SizeSquareFeet *int    `json:"size_square_feet"`
	IsFinished     bool    `json:"is_finished"`
	IsExterior     bool    `json:"is_exterior"`
}
