// Package deed classifies recorded instruments and sale qualifications.
package deed

import (
	"regexp"
	"strings"

	"github.com/law-makers/appraiser/internal/text"
)

// Deed types emitted in deed.json.
const (
	WarrantyDeed             = "Warranty Deed"
	SpecialWarrantyDeed      = "Special Warranty Deed"
	QuitclaimDeed            = "Quitclaim Deed"
	GrantDeed                = "Grant Deed"
	BargainAndSaleDeed       = "Bargain and Sale Deed"
	LadyBirdDeed             = "Lady Bird Deed"
	TransferOnDeathDeed      = "Transfer on Death Deed"
	SheriffsDeed             = "Sheriff's Deed"
	TaxDeed                  = "Tax Deed"
	TrusteesDeed             = "Trustee's Deed"
	PersonalRepresentative   = "Personal Representative Deed"
	CorrectionDeed           = "Correction Deed"
	DeedInLieuOfForeclosure  = "Deed in Lieu of Foreclosure"
	LifeEstateDeed           = "Life Estate Deed"
	JointTenancyDeed         = "Joint Tenancy Deed"
	TenancyInCommonDeed      = "Tenancy in Common Deed"
	CommunityPropertyDeed    = "Community Property Deed"
	GiftDeed                 = "Gift Deed"
	InterspousalTransferDeed = "Interspousal Transfer Deed"
	WildDeed                 = "Wild Deed"
	SpecialMasterDeed        = "Special Master's Deed"
	CourtOrderDeed           = "Court Order Deed"
	ContractForDeed          = "Contract for Deed"
	QuietTitleDeed           = "Quiet Title Deed"
	AdministratorsDeed       = "Administrator's Deed"
	GuardiansDeed            = "Guardian's Deed"
	ReceiversDeed            = "Receiver's Deed"
	RightOfWayDeed           = "Right of Way Deed"
	VacationOfPlatDeed       = "Vacation of Plat Deed"
	AssignmentOfContract     = "Assignment of Contract"
	ReleaseOfContract        = "Release of Contract"
	MiscellaneousDeed        = "Miscellaneous"
)

// codes are the instrument abbreviations used in sales tables.
var codes = map[string]string{
	"WD":   WarrantyDeed,
	"WAR":  WarrantyDeed,
	"GWD":  WarrantyDeed,
	"SWD":  SpecialWarrantyDeed,
	"SW":   SpecialWarrantyDeed,
	"SPWD": SpecialWarrantyDeed,
	"QC":   QuitclaimDeed,
	"QCD":  QuitclaimDeed,
	"GD":   GrantDeed,
	"BSD":  BargainAndSaleDeed,
	"LBD":  LadyBirdDeed,
	"TOD":  TransferOnDeathDeed,
	"SD":   SheriffsDeed,
	"CT":   CourtOrderDeed,
	"COT":  SheriffsDeed,
	"TD":   TaxDeed,
	"TXD":  TaxDeed,
	"TRD":  TrusteesDeed,
	"TR":   TrusteesDeed,
	"PRD":  PersonalRepresentative,
	"PR":   PersonalRepresentative,
	"CD":   CorrectionDeed,
	"COR":  CorrectionDeed,
	"DIL":  DeedInLieuOfForeclosure,
	"LE":   LifeEstateDeed,
	"LED":  LifeEstateDeed,
	"GFT":  GiftDeed,
	"CFD":  ContractForDeed,
	"AGD":  ContractForDeed,
	"AD":   AdministratorsDeed,
	"GDN":  GuardiansDeed,
	"RD":   ReceiversDeed,
	"ROW":  RightOfWayDeed,
	"QT":   QuietTitleDeed,
	"SMD":  SpecialMasterDeed,
}

// phrases are tried in order; the first match wins.
var phrases = []struct {
	re   *regexp.Regexp
	kind string
}{
	{regexp.MustCompile(`SPECIAL\s+WARRANTY`), SpecialWarrantyDeed},
	{regexp.MustCompile(`LADY\s*BIRD|ENHANCED\s+LIFE\s+ESTATE`), LadyBirdDeed},
	{regexp.MustCompile(`LIFE\s+ESTATE`), LifeEstateDeed},
	{regexp.MustCompile(`IN\s+LIEU`), DeedInLieuOfForeclosure},
	{regexp.MustCompile(`WARRANTY`), WarrantyDeed},
	{regexp.MustCompile(`QUIT\s*-?\s*CLAIM`), QuitclaimDeed},
	{regexp.MustCompile(`BARGAIN`), BargainAndSaleDeed},
	{regexp.MustCompile(`TRANSFER\s+ON\s+DEATH|BENEFICIARY\s+DEED`), TransferOnDeathDeed},
	{regexp.MustCompile(`CERTIFICATE\s+OF\s+TITLE|SHERIFF`), SheriffsDeed},
	{regexp.MustCompile(`TAX\s+DEED`), TaxDeed},
	{regexp.MustCompile(`TRUSTEE`), TrusteesDeed},
	{regexp.MustCompile(`PERSONAL\s+REP|EXECUTOR|PROBATE`), PersonalRepresentative},
	{regexp.MustCompile(`ADMINISTRAT`), AdministratorsDeed},
	{regexp.MustCompile(`GUARDIAN`), GuardiansDeed},
	{regexp.MustCompile(`RECEIVER`), ReceiversDeed},
	{regexp.MustCompile(`CORRECT`), CorrectionDeed},
	{regexp.MustCompile(`SPECIAL\s+MASTER`), SpecialMasterDeed},
	{regexp.MustCompile(`QUIET\s+TITLE`), QuietTitleDeed},
	{regexp.MustCompile(`\bCOURT\b|JUDGMENT|\bORDER\b`), CourtOrderDeed},
	{regexp.MustCompile(`CONTRACT\s+FOR\s+DEED|AGREEMENT\s+FOR\s+DEED|LAND\s+CONTRACT`), ContractForDeed},
	{regexp.MustCompile(`ASSIGNMENT`), AssignmentOfContract},
	{regexp.MustCompile(`RIGHT\s+OF\s+WAY`), RightOfWayDeed},
	{regexp.MustCompile(`INTERSPOUSAL`), InterspousalTransferDeed},
	{regexp.MustCompile(`JOINT\s+TENAN`), JointTenancyDeed},
	{regexp.MustCompile(`TENAN\w*\s+IN\s+COMMON`), TenancyInCommonDeed},
	{regexp.MustCompile(`COMMUNITY\s+PROPERTY`), CommunityPropertyDeed},
	{regexp.MustCompile(`GIFT`), GiftDeed},
	{regexp.MustCompile(`GRANT\s+DEED`), GrantDeed},
}

var nonAlpha = regexp.MustCompile(`[^A-Z]+`)

// Classify maps an instrument code ("WD", "QC") or phrase ("SPECIAL WARRANTY
// DEED") to a deed type. Anything unrecognised is Miscellaneous.
func Classify(instrument string) string {
	s := strings.ToUpper(text.Clean(instrument))
	if s == "" {
		return MiscellaneousDeed
	}
	if kind, ok := codes[nonAlpha.ReplaceAllString(s, "")]; ok {
		return kind
	}
	// "WD - WARRANTY DEED" style cells lead with the code.
	if first := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == '-' || r == '/' }); len(first) > 1 {
		if kind, ok := codes[first[0]]; ok {
			return kind
		}
	}
	for _, p := range phrases {
		if p.re.MatchString(s) {
			return p.kind
		}
	}
	return MiscellaneousDeed
}
