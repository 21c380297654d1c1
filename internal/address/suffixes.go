package address

// streetSuffixes maps USPS Publication 28 suffix spellings to the abbreviation
// used in address.json.
var streetSuffixes = map[string]string{
	"ALLEY": "Aly", "ALLY": "Aly", "ALY": "Aly",
	"ANNEX": "Anx", "ANX": "Anx",
	"ARCADE": "Arc", "ARC": "Arc",
	"AVENUE": "Ave", "AVE": "Ave", "AV": "Ave", "AVEN": "Ave", "AVN": "Ave",
	"BAYOU": "Byu", "BYU": "Byu",
	"BEACH": "Bch", "BCH": "Bch",
	"BEND": "Bnd", "BND": "Bnd",
	"BLUFF": "Blf", "BLF": "Blf",
	"BOULEVARD": "Blvd", "BLVD": "Blvd", "BOUL": "Blvd",
	"BRANCH": "Br", "BR": "Br",
	"BRIDGE": "Brg", "BRG": "Brg",
	"BROOK": "Brk", "BRK": "Brk",
	"BYPASS": "Byp", "BYP": "Byp",
	"CAUSEWAY": "Cswy", "CSWY": "Cswy",
	"CENTER": "Ctr", "CTR": "Ctr", "CENTRE": "Ctr",
	"CIRCLE": "Cir", "CIR": "Cir", "CIRC": "Cir", "CRCL": "Cir",
	"CLOSE": "Cl", "CL": "Cl",
	"COMMON": "Cmn", "CMN": "Cmn",
	"COURT": "Ct", "CT": "Ct", "CRT": "Ct",
	"COURTS": "Cts", "CTS": "Cts",
	"COVE": "Cv", "CV": "Cv",
	"CREEK": "Crk", "CRK": "Crk",
	"CRESCENT": "Cres", "CRES": "Cres",
	"CROSSING": "Xing", "XING": "Xing", "CRSSNG": "Xing",
	"DRIVE": "Dr", "DR": "Dr", "DRV": "Dr",
	"ESTATE": "Est", "EST": "Est",
	"ESTATES": "Ests", "ESTS": "Ests",
	"EXPRESSWAY": "Expy", "EXPY": "Expy",
	"EXTENSION": "Ext", "EXT": "Ext",
	"FREEWAY": "Fwy", "FWY": "Fwy",
	"GARDENS": "Gdns", "GDNS": "Gdns",
	"GLEN": "Gln", "GLN": "Gln",
	"GREEN": "Grn", "GRN": "Grn",
	"GROVE": "Grv", "GRV": "Grv",
	"HARBOR": "Hbr", "HBR": "Hbr",
	"HEIGHTS": "Hts", "HTS": "Hts",
	"HIGHWAY": "Hwy", "HWY": "Hwy",
	"HILL": "Hl", "HL": "Hl",
	"HOLLOW": "Holw", "HOLW": "Holw",
	"ISLAND": "Is", "IS": "Is",
	"ISLE": "Isle",
	"JUNCTION": "Jct", "JCT": "Jct",
	"KEY": "Ky", "KY": "Ky",
	"LAKE": "Lk", "LK": "Lk",
	"LANDING": "Lndg", "LNDG": "Lndg",
	"LANE": "Ln", "LN": "Ln",
	"LOOP": "Loop",
	"MALL": "Mall",
	"MANOR": "Mnr", "MNR": "Mnr",
	"MEADOW": "Mdw", "MDW": "Mdw",
	"MEADOWS": "Mdws", "MDWS": "Mdws",
	"MOUNT": "Mt", "MT": "Mt",
	"MOUNTAIN": "Mtn", "MTN": "Mtn",
	"ORCHARD": "Orch", "ORCH": "Orch",
	"OVAL": "Oval",
	"PARK": "Park", "PRK": "Park",
	"PARKWAY": "Pkwy", "PKWY": "Pkwy", "PKY": "Pkwy",
	"PASS": "Pass",
	"PATH": "Path",
	"PIKE": "Pike",
	"PINES": "Pnes", "PNES": "Pnes",
	"PLACE": "Pl", "PL": "Pl",
	"PLAZA": "Plz", "PLZ": "Plz",
	"POINT": "Pt", "PT": "Pt",
	"POINTE": "Pt",
	"PORT": "Prt", "PRT": "Prt",
	"RIDGE": "Rdg", "RDG": "Rdg",
	"ROAD": "Rd", "RD": "Rd",
	"ROW": "Row",
	"RUN": "Run",
	"SHORES": "Shrs", "SHRS": "Shrs",
	"SQUARE": "Sq", "SQ": "Sq",
	"STREET": "St", "ST": "St", "STR": "St",
	"TERRACE": "Ter", "TER": "Ter", "TERR": "Ter",
	"TRACE": "Trce", "TRCE": "Trce",
	"TRAIL": "Trl", "TRL": "Trl",
	"TURNPIKE": "Tpke", "TPKE": "Tpke",
	"VIEW": "Vw", "VW": "Vw",
	"VILLAGE": "Vlg", "VLG": "Vlg",
	"VISTA": "Vis", "VIS": "Vis",
	"WALK": "Walk",
	"WAY": "Way", "WY": "Way",
}

var directionals = map[string]string{
	"N": "N", "NORTH": "N",
	"S": "S", "SOUTH": "S",
	"E": "E", "EAST": "E",
	"W": "W", "WEST": "W",
	"NE": "NE", "NORTHEAST": "NE",
	"NW": "NW", "NORTHWEST": "NW",
	"SE": "SE", "SOUTHEAST": "SE",
	"SW": "SW", "SOUTHWEST": "SW",
}

var unitDesignators = map[string]bool{
	"APT": true, "APARTMENT": true, "UNIT": true, "STE": true, "SUITE": true,
	"BLDG": true, "BUILDING": true, "LOT": true, "RM": true, "ROOM": true,
	"SPC": true, "SPACE": true, "TRLR": true, "PH": true, "FLOOR": true,
}

var states = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true, "CT": true,
	"DE": true, "DC": true, "FL": true, "GA": true, "HI": true, "ID": true, "IL": true,
	"IN": true, "IA": true, "KS": true, "KY": true, "LA": true, "ME": true, "MD": true,
	"MA": true, "MI": true, "MN": true, "MS": true, "MO": true, "MT": true, "NE": true,
	"NV": true, "NH": true, "NJ": true, "NM": true, "NY": true, "NC": true, "ND": true,
	"OH": true, "OK": true, "OR": true, "PA": true, "RI": true, "SC": true, "SD": true,
	"TN": true, "TX": true, "UT": true, "VT": true, "VA": true, "WA": true, "WV": true,
	"WI": true, "WY": true, "PR": true,
}
