package deed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := map[string]string{
		"WD":                           WarrantyDeed,
		"w/d":                          WarrantyDeed,
		"SWD":                          SpecialWarrantyDeed,
		"Special Warranty Deed":        SpecialWarrantyDeed,
		"QC":                           QuitclaimDeed,
		"QUIT CLAIM DEED":              QuitclaimDeed,
		"Quit-Claim":                   QuitclaimDeed,
		"TD - TAX DEED":                TaxDeed,
		"CT":                           CourtOrderDeed,
		"CERTIFICATE OF TITLE":         SheriffsDeed,
		"PERSONAL REPRESENTATIVE DEED": PersonalRepresentative,
		"TRUSTEE'S DEED":               TrusteesDeed,
		"LIFE ESTATE":                  LifeEstateDeed,
		"ENHANCED LIFE ESTATE DEED":    LadyBirdDeed,
		"DEED IN LIEU OF FORECLOSURE":  DeedInLieuOfForeclosure,
		"CORRECTIVE WARRANTY DEED":     WarrantyDeed,
		"CORRECTIVE DEED":              CorrectionDeed,
		"AGREEMENT FOR DEED":           ContractForDeed,
		"ORDER OF SUMMARY ADMIN":       CourtOrderDeed,
		"DEED":                         MiscellaneousDeed,
		"02":                           MiscellaneousDeed,
	}
	for in, want := range tests {
		assert.Equal(t, want, Classify(in), "Classify(%q)", in)
	}
	assert.Equal(t, MiscellaneousDeed, Classify(""))
}

func TestSaleType(t *testing.T) {
	tests := []struct {
		name          string
		qualification string
		instrument    string
		want          string
	}{
		{"qualified", "Qualified", "WD", TypicallyMotivated},
		{"qualified code", "Q", "WD", TypicallyMotivated},
		{"foreclosure reason", "Unqualified - Foreclosure", "WD", ReoPostForeclosureSale},
		{"short sale", "U - SHORT SALE", "WD", ShortSale},
		{"certificate of title", "Unqualified", "CERTIFICATE OF TITLE", ReoPostForeclosureSale},
		{"probate", "", "PR", ProbateSale},
		{"court order", "", "CT", CourtOrderedNonForeclosureSale},
		{"unqualified", "Unqualified", "QC", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SaleType(tt.qualification, tt.instrument)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			if assert.NotNil(t, got) {
				assert.Equal(t, tt.want, *got)
			}
		})
	}
}

func TestBookPage(t *testing.T) {
	tests := []struct {
		in         string
		book, page string
		ok         bool
	}{
		{"OR 1234/567", "1234", "567", true},
		{"4521-0877", "4521", "0877", true},
		{"Book 1234 Page 56", "1234", "56", true},
		{"BK: 77 PG: 12", "77", "12", true},
		{"2021000123456", "", "", false},
	}
	for _, tt := range tests {
		book, page, ok := BookPage(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.book, book, tt.in)
		assert.Equal(t, tt.page, page, tt.in)
	}
}
