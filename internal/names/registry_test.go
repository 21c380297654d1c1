package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDeduplicates(t *testing.T) {
	r := NewRegistry()

	owners := Parse("SMITH JOHN & MARY K", Options{})
	refs := r.AddAll(owners)
	require.Len(t, refs, 2)
	assert.Equal(t, "person_1.json", refs[0].File())
	assert.Equal(t, "person_2.json", refs[1].File())

	// same people again from a sales row, John now with a middle name
	grantees := Parse("JOHN ALLEN SMITH & MARY SMITH", Options{Order: FirstLast})
	again := r.AddAll(grantees)
	assert.Equal(t, refs, again)

	persons := r.Persons()
	require.Len(t, persons, 2)
	assert.Equal(t, "Allen", *persons[0].MiddleName)
	assert.Equal(t, "K", *persons[1].MiddleName)
}

func TestRegistryKeepsDistinctPeople(t *testing.T) {
	r := NewRegistry()
	refs := r.AddAll(append(
		Parse("SMITH JOHN A", Options{}),
		Parse("SMITH JOHN B & SMITH JOHN A JR", Options{})...,
	))
	require.Len(t, refs, 3)
	assert.Len(t, r.Persons(), 3)
}

func TestRegistryCompanies(t *testing.T) {
	r := NewRegistry()
	a := r.AddAll(Parse("ACME HOLDINGS, L.L.C.", Options{}))
	b := r.AddAll(Parse("THE ACME HOLDINGS LLC", Options{}))
	c := r.AddAll(Parse("ACME CORPORATION", Options{}))
	d := r.AddAll(Parse("ACME CORP", Options{}))

	require.Len(t, a, 1)
	assert.Equal(t, a, b)
	assert.Equal(t, c, d)
	assert.NotEqual(t, a, c)
	assert.Equal(t, "company_2.json", c[0].File())
	assert.Len(t, r.Companies(), 2)
}

func TestCompanyKey(t *testing.T) {
	assert.Equal(t, "ACME LLC", CompanyKey("Acme, L.L.C."))
	assert.Equal(t, "ACME LLC", CompanyKey("ACME L L C"))
	assert.Equal(t, "BANK OF AMERICA", CompanyKey("The Bank of America"))
	assert.Equal(t, "WIDGET CO", CompanyKey("WIDGET COMPANY"))
}
