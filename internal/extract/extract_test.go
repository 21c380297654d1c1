package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html><body>
<table class="details">
	<tr><th>STRAP:</th><td>17-44-25-P2-00100.0010</td></tr>
	<tr><th><span>Year Built</span></th><td> 1987 </td></tr>
	<tr><td>Empty</td><td> </td></tr>
</table>
<dl><dt>Zoning</dt><dd>RS-1</dd></dl>
<div class="sectionSubTitle">Owner Of Record</div>
<div class="textPanel">SMITH JOHN A &amp;<br>MARY K<br/><span>123 MAIN ST</span></div>
<h3><span>Sales / Transactions</span></h3>
<table id="sales">
	<thead><tr><th>Sale Price</th><th>Date</th><th>OR Number</th></tr></thead>
	<tbody>
	<tr><td>$250,000</td><td>03/07/2019</td><td>4567/123</td></tr>
	<tr><td>$100</td><td>01/02/2001</td><td>1111/22</td></tr>
	</tbody>
</table>
</body></html>`

func TestLabelValue(t *testing.T) {
	doc, err := ParseString(page)
	require.NoError(t, err)

	assert.Equal(t, "17-44-25-P2-00100.0010", LabelValue(doc.Selection, "strap"))
	assert.Equal(t, "1987", LabelValue(doc.Selection, "Year Built"))
	assert.Equal(t, "RS-1", LabelValue(doc.Selection, "Zoning:"))
	assert.Equal(t, "", LabelValue(doc.Selection, "Empty"))
	assert.Equal(t, "", LabelValue(doc.Selection, "Missing"))
	assert.Equal(t, "1987", LabelValue(doc.Selection, "Actual Year", "Year Built"))
}

func TestSectionAfterAndLines(t *testing.T) {
	doc, err := ParseString(page)
	require.NoError(t, err)

	panel := SectionAfter(doc.Selection, "Owner Of Record", "div")
	require.NotNil(t, panel)
	assert.Equal(t, []string{"SMITH JOHN A &", "MARY K", "123 MAIN ST"}, Lines(panel))

	sales := SectionAfter(doc.Selection, "Sales / Transactions", "table")
	require.NotNil(t, sales)
	id, _ := sales.Attr("id")
	assert.Equal(t, "sales", id)
}

func TestParseTable(t *testing.T) {
	doc, err := ParseString(page)
	require.NoError(t, err)

	tbl := ParseTable(doc.Find("#sales"))
	assert.Equal(t, []string{"SALE PRICE", "DATE", "OR NUMBER"}, tbl.Headers)
	require.Len(t, tbl.Rows, 2)

	assert.Equal(t, 1, tbl.Column("date"))
	assert.Equal(t, 2, tbl.Column("OR"))
	assert.Equal(t, -1, tbl.Column("grantee"))

	row := tbl.Rows[0]
	assert.Equal(t, "$250,000", row.Get("Sale Price"))
	assert.Equal(t, "03/07/2019", row.Get("Sale Date", "Date"))
	assert.Equal(t, "", row.Get("Grantee"))
	assert.Equal(t, "4567/123", row.Text(2))
	assert.Equal(t, "", row.Text(9))
}

func TestParseTableWithoutHeaderCells(t *testing.T) {
	doc, err := ParseString(`<table><tr><td>Year</td><td>Amount</td></tr><tr><td>2024</td><td>$10</td></tr></table>`)
	require.NoError(t, err)

	tbl := ParseTable(doc.Find("table"))
	assert.Equal(t, []string{"YEAR", "AMOUNT"}, tbl.Headers)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "2024", tbl.Rows[0].Get("year"))
}

func TestErrorIs(t *testing.T) {
	err := MissingField("Use Code")
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.True(t, errors.Is(err, &Error{Code: ErrCodeNotFound}))
	assert.False(t, errors.Is(err, &Error{Code: ErrCodeParse}))
	assert.Equal(t, "Use Code", err.Details["label"])
	assert.Contains(t, err.Error(), "NOT_FOUND")
}
