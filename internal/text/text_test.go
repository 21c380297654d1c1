package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	assert.Equal(t, "123 MAIN ST", Clean("  123  MAIN\n\tST  "))
	assert.Equal(t, "A B", Clean("A&nbsp;B"))
	assert.Equal(t, "", Clean(" \n "))
}

func TestMoney(t *testing.T) {
	tests := []struct {
		in   string
		want *float64
	}{
		{"$1,234.56", ptr(1234.56)},
		{"(1,000)", ptr(-1000)},
		{"-$500", ptr(-500)},
		{"$-500", ptr(-500)},
		{"- $1,250.00", ptr(-1250)},
		{"-500", ptr(-500)},
		{"$0", ptr(0)},
		{"", nil},
		{"N/A", nil},
	}
	for _, tt := range tests {
		got := Money(tt.in)
		if tt.want == nil {
			assert.Nil(t, got, tt.in)
			continue
		}
		require.NotNil(t, got, tt.in)
		assert.InDelta(t, *tt.want, *got, 0.001, tt.in)
	}
}

func TestInt(t *testing.T) {
	require.NotNil(t, Int("1,850 SF"))
	assert.Equal(t, 1850, *Int("1,850 SF"))
	assert.Equal(t, 2, *Int("2.5"))
	assert.Nil(t, Int("none"))
}

func TestDate(t *testing.T) {
	tests := map[string]string{
		"3/7/2019":               "2019-03-07",
		"03/07/2019":             "2019-03-07",
		"2019-03-07":             "2019-03-07",
		"Mar 7, 2019":            "2019-03-07",
		"03/07/2019 12:00:00 AM": "2019-03-07",
	}
	for in, want := range tests {
		got, ok := Date(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := Date("sometime")
	assert.False(t, ok)
	assert.Nil(t, DatePtr(""))
}

func TestYear(t *testing.T) {
	require.NotNil(t, Year("1987"))
	assert.Equal(t, 1987, *Year("1987"))
	assert.Nil(t, Year("0"))
	assert.Nil(t, Year(""))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "John", Title("JOHN"))
	assert.Equal(t, "O'Brien-Smith", Title("O'BRIEN-SMITH"))
	assert.Equal(t, "McDonald", Title("MCDONALD"))
	assert.Equal(t, "Mary Ann", Title("mary  ann"))
}

func ptr(f float64) *float64 { return &f }
