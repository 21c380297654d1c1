package names

import "regexp"

// companyWords mark a name as an organisation when they appear as a whole word.
var companyWords = map[string]bool{
	"LLC": true, "INC": true, "INCORPORATED": true, "CORP": true,
	"CORPORATION": true, "CO": true, "COMPANY": true, "LP": true, "LLP": true,
	"LTD": true, "LIMITED": true, "PLLC": true, "PA": true, "PC": true,
	"TRUST": true, "BANK": true, "BANCORP": true, "ASSOCIATION": true,
	"ASSN": true, "ASSOC": true, "HOA": true, "CONDOMINIUM": true, "CHURCH": true,
	"MINISTRIES": true, "COUNTY": true, "CITY": true, "STATE": true, "UNITED": true,
	"FOUNDATION": true, "PARTNERSHIP": true, "PARTNERS": true, "HOLDINGS": true,
	"PROPERTIES": true, "PROPERTY": true, "INVESTMENTS": true, "INVESTMENT": true,
	"MORTGAGE": true, "FEDERAL": true, "NATIONAL": true, "SERVICES": true,
	"GROUP": true, "ENTERPRISES": true, "DEVELOPMENT": true, "DEVELOPERS": true,
	"HOMES": true, "REALTY": true, "CAPITAL": true, "FUND": true, "VENTURES": true,
	"MANAGEMENT": true, "AUTHORITY": true, "DISTRICT": true, "SCHOOL": true,
	"UNIVERSITY": true, "CLUB": true, "SOCIETY": true, "INSTITUTE": true,
	"DEPARTMENT": true, "DEPT": true, "BOARD": true, "SECRETARY": true,
	"FINANCIAL": true, "LENDING": true, "LOANS": true, "CREDIT": true, "UNION": true,
	"ESTATES": true, "VILLAS": true, "APARTMENTS": true, "RESORT": true,
	"REVOCABLE": true, "IRREVOCABLE": true, "LIVING": true,
	"FAMILY": true, "FNMA": true, "FHLMC": true, "HUD": true,
}

// companyPhrases are multi-word markers checked against the whole string.
var companyPhrases = regexp.MustCompile(`\b(CITY OF|COUNTY OF|STATE OF|TOWN OF|VILLAGE OF|UNITED STATES|U S A|USA|DEPT OF|SECRETARY OF|BOARD OF)\b`)

var prefixes = map[string]string{
	"MR": "Mr.", "MRS": "Mrs.", "MS": "Ms.", "MISS": "Miss", "DR": "Dr.",
	"REV": "Rev.", "SIR": "Sir",
}

// V is handled by fifth since it is also a middle initial.
var suffixes = map[string]string{
	"JR": "Jr.", "SR": "Sr.", "II": "II", "III": "III", "IV": "IV",
	"ESQ": "Esq.", "MD": "MD", "PHD": "PhD", "DDS": "DDS", "CPA": "CPA",
}

// noise is removed before a name is split. Order matters: longer phrases first.
var noise = []*regexp.Regexp{
	regexp.MustCompile(`\bTENANTS?\s+(IN|BY)\s+(THE\s+)?(COMMON|ENTIRETY|ENTIRETIES)\b`),
	regexp.MustCompile(`\bJOINT\s+TENANTS?(\s+WITH\s+RIGHTS?\s+OF\s+SURVIVORSHIP)?\b`),
	regexp.MustCompile(`\bLIFE\s+ESTATE\b`),
	regexp.MustCompile(`\bET\s*AL\b\.?`),
	regexp.MustCompile(`\bET\s*UX\b\.?`),
	regexp.MustCompile(`\bET\s*VIR\b\.?`),
	regexp.MustCompile(`\bH/W\b`),
	regexp.MustCompile(`\bH&W\b`),
	regexp.MustCompile(`\bW/H\b`),
	regexp.MustCompile(`\bL/E\b`),
	regexp.MustCompile(`\bJ/T\b`),
	regexp.MustCompile(`\bJTWROS\b`),
	regexp.MustCompile(`\bTEN\s+COM\b`),
	regexp.MustCompile(`\bTIC\b`),
	regexp.MustCompile(`\bTBE\b`),
	regexp.MustCompile(`\bDECEASED\b|\bDEC'?D\b`),
	regexp.MustCompile(`\bHEIRS\s+OF\b`),
	regexp.MustCompile(`^\s*(C/O|%|ATTN:?)\s+`),
}

// roleWords follow a person's name but are not part of it.
var roleWords = map[string]bool{
	"TR": true, "TRS": true, "TRUSTEE": true, "TRUSTEES": true, "TTEE": true,
	"TTEES": true, "EST": true, "ESTATE": true, "PR": true, "CUST": true,
	"EXEC": true, "EXECUTOR": true, "EXECUTRIX": true, "AS": true, "OF": true,
	"THE": true, "SUCC": true, "SUCCESSOR": true,
}

var (
	hardSplit   = regexp.MustCompile(`\s*(?:\n|;|\|)\s*`)
	softSplit   = regexp.MustCompile(`\s*(?:&|\+|\bAND\b)\s*`)
	punctuation = regexp.MustCompile(`[^A-Z0-9'\-, ]+`)
	estateOf    = regexp.MustCompile(`^(THE\s+)?ESTATE\s+OF\s+`)
)

// particles start a compound surname: VAN DYKE, DE LA CRUZ.
var particles = map[string]bool{
	"VAN": true, "VON": true, "DE": true, "DEL": true, "DELA": true, "DI": true,
	"DA": true, "LA": true, "LE": true, "ST": true, "MAC": true, "DOS": true,
	"DU": true, "VANDER": true, "TEN": true,
}
