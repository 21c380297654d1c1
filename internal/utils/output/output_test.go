package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/law-makers/appraiser/internal/graph"
	"github.com/law-makers/appraiser/internal/index"
	"github.com/law-makers/appraiser/pkg/models"
)

func testBundle(t *testing.T) *graph.Bundle {
	t.Helper()
	b, err := graph.Build(&models.Parcel{
		ParcelID: "P-1",
		Source:   models.Provenance{RequestIdentifier: "R1"},
		Address:  &models.Address{StreetName: models.String("MAIN")},
	})
	require.NoError(t, err)
	return b
}

func TestWriteBundleReplacesStaleFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sales_9.json"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0644))

	written, err := WriteBundle(dir, testBundle(t))
	require.NoError(t, err)
	assert.Len(t, written, 3)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}
	assert.ElementsMatch(t, []string{
		"address.json", "notes.txt", "property.json", "relationship_property_address.json",
	}, got)
}

func TestWriteBundleContent(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteBundle(dir, testBundle(t))
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "relationship_property_address.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"from": {"/": "./property.json"}, "to": {"/": "./address.json"}}`, string(raw))
	assert.True(t, strings.HasPrefix(string(raw), "{\n  \"from\""))

	raw, err = os.ReadFile(filepath.Join(dir, "address.json"))
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "MAIN", doc["street_name"])
	assert.Equal(t, "R1", doc["request_identifier"])
	assert.Contains(t, doc, "postal_code")
	assert.Nil(t, doc["postal_code"])
}

func TestWriteRunsCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteRunsCSV(&buf, []index.Run{{
		RunID:       "run-7",
		ParcelID:    "A",
		County:      "lee",
		Status:      index.StatusFailed,
		Error:       "bad, page",
		Duration:    1500 * time.Millisecond,
		ExtractedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2024-01-02T03:04:05Z,A,lee,failed,0,0,0,1500,,\"bad, page\",run-7", lines[1])
}

func TestCleanSnapshot(t *testing.T) {
	out, err := CleanSnapshot(`<html><head><script>alert(1)</script><style>p{}</style></head>
<body><div id="ParcelSummary" class="x" onclick="go()" style="color:red"><span id="UseCode">04</span></div></body></html>`)
	require.NoError(t, err)
	assert.NotContains(t, out, "alert")
	assert.NotContains(t, out, "onclick")
	assert.NotContains(t, out, "color:red")
	assert.Contains(t, out, `<div id="ParcelSummary" class="x">`)
	assert.Contains(t, out, `<span id="UseCode">04</span>`)
}
