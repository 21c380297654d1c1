package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/law-makers/appraiser/internal/engine/static"
	"github.com/law-makers/appraiser/internal/extract"
	"github.com/law-makers/appraiser/internal/ratelimit"
)

func snapshotServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("FolioID") != "10442511000120010" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html><head><script>track()</script></head><body onload="x()"><div id="PropertyDetailsCurrent">page</div></body></html>`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func seedFor(url, method string) string {
	return fmt.Sprintf(`{"parcel_id": "10-44-25-P1-00012.0010", "source_http_request": {"method": %q, "url": %q, "multiValueQueryString": {"FolioID": ["10442511000120010"]}}}`, method, url)
}

func TestSnapshot(t *testing.T) {
	srv := snapshotServer(t)
	dir := parcelDir(t, "", seedFor(srv.URL+"/Display/DisplayParcel.aspx", "GET"), "")
	f := static.New(nil, ratelimit.NewHostLimiter(100, 10), srv.Client(), static.Options{})

	res, err := Snapshot(context.Background(), f, SnapshotJob{Dir: dir, Clean: true})
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, srv.URL+"/Display/DisplayParcel.aspx?FolioID=10442511000120010", res.URL)

	page, err := os.ReadFile(filepath.Join(dir, "input.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), `id="PropertyDetailsCurrent"`)
	assert.NotContains(t, string(page), "track()")
	assert.NotContains(t, string(page), "onload")
	assert.Equal(t, len(page), res.Bytes)

	again, err := Snapshot(context.Background(), f, SnapshotJob{Dir: dir})
	require.NoError(t, err)
	assert.True(t, again.Skipped)
}

func TestSnapshotErrors(t *testing.T) {
	srv := snapshotServer(t)
	f := static.New(nil, nil, srv.Client(), static.Options{})
	ctx := context.Background()

	_, err := Snapshot(ctx, f, SnapshotJob{Dir: parcelDir(t, "", seedFor(srv.URL, "POST"), "")})
	assert.ErrorIs(t, err, &extract.Error{Code: extract.ErrCodeValidation})

	_, err = Snapshot(ctx, f, SnapshotJob{Dir: parcelDir(t, "", `{"parcel_id": "X"}`, "")})
	assert.ErrorIs(t, err, extract.ErrMissingField)

	dir := parcelDir(t, "", `{"parcel_id": "X", "source_http_request": {"method": "GET", "url": "`+srv.URL+`/missing"}}`, "")
	_, err = Snapshot(ctx, f, SnapshotJob{Dir: dir})
	assert.ErrorIs(t, err, &extract.Error{Code: extract.ErrCodeNotFound})
	assert.NoFileExists(t, filepath.Join(dir, "input.html"))
}
