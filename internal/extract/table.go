package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/law-makers/appraiser/internal/text"
)

// Table is an HTML table indexed by its header row.
type Table struct {
	Headers []string
	Rows    []Row
}

// Row is one data row of a Table.
type Row struct {
	table *Table
	Cells []*goquery.Selection
}

// ParseTable reads headers from thead/th cells (or the first row when the
// table has no th) and every following row with at least one td.
func ParseTable(sel *goquery.Selection) *Table {
	t := &Table{}
	if sel == nil || sel.Length() == 0 {
		return t
	}

	rows := sel.Find("tr")
	headerRow := -1
	rows.EachWithBreak(func(i int, tr *goquery.Selection) bool {
		if tr.Find("th").Length() > 0 {
			headerRow = i
			return false
		}
		return true
	})
	if headerRow < 0 && rows.Length() > 0 {
		headerRow = 0
	}

	rows.Each(func(i int, tr *goquery.Selection) {
		switch {
		case i == headerRow:
			tr.Children().Each(func(_ int, c *goquery.Selection) {
				t.Headers = append(t.Headers, text.Upper(c.Text()))
			})
		case i > headerRow:
			cells := tr.Find("td")
			if cells.Length() == 0 {
				return
			}
			row := Row{table: t}
			cells.Each(func(_ int, c *goquery.Selection) {
				row.Cells = append(row.Cells, c)
			})
			t.Rows = append(t.Rows, row)
		}
	})
	return t
}

// Column returns the index of the first header matching any of names. Exact
// matches win over prefix matches; -1 when nothing matches.
func (t *Table) Column(names ...string) int {
	for _, n := range names {
		n = text.Upper(n)
		for i, h := range t.Headers {
			if h == n {
				return i
			}
		}
	}
	for _, n := range names {
		n = text.Upper(n)
		for i, h := range t.Headers {
			if strings.HasPrefix(h, n) {
				return i
			}
		}
	}
	return -1
}

// Cell returns the cell under the first matching header, or nil.
func (r Row) Cell(names ...string) *goquery.Selection {
	i := r.table.Column(names...)
	if i < 0 || i >= len(r.Cells) {
		return nil
	}
	return r.Cells[i]
}

// Get returns the cleaned text under the first matching header.
func (r Row) Get(names ...string) string {
	c := r.Cell(names...)
	if c == nil {
		return ""
	}
	return text.Clean(c.Text())
}

// Lines returns the <br>-separated lines under the first matching header.
func (r Row) Lines(names ...string) []string {
	c := r.Cell(names...)
	if c == nil {
		return nil
	}
	return Lines(c)
}

// Text returns the cleaned text of cell i.
func (r Row) Text(i int) string {
	if i < 0 || i >= len(r.Cells) {
		return ""
	}
	return text.Clean(r.Cells[i].Text())
}
