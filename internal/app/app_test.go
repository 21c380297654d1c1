package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/law-makers/appraiser/internal/config"
)

func TestNew(t *testing.T) {
	cfg := config.Default()
	cfg.Proxy = "http://p1:3128,http://p2:3128"
	cfg.Headers = []string{"Referer: https://www.leepa.org"}
	cfg.County = "lee"

	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close(context.Background())

	assert.Equal(t, 2, a.Proxies.Len())
	assert.Equal(t, "https://www.leepa.org", a.Headers.Get("Referer"))
	assert.Equal(t, "static", a.Fetcher.Name())

	job := a.Job("/parcels/1")
	assert.Equal(t, "lee", job.County)
	assert.Equal(t, "data", job.DataDir)
	assert.True(t, job.Strict)
	assert.Equal(t, "property_seed.json", job.Seeds.PropertySeed)

	x, err := a.Index(context.Background())
	require.NoError(t, err)
	assert.Nil(t, x, "no index configured")
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(context.Background(), nil)
	assert.Error(t, err)

	cfg := config.Default()
	cfg.Headers = []string{"no colon"}
	_, err = New(context.Background(), cfg)
	assert.Error(t, err)

	cfg = config.Default()
	cfg.Proxy = "not a proxy"
	_, err = New(context.Background(), cfg)
	assert.Error(t, err)
}

func TestIndexOpenedOnce(t *testing.T) {
	cfg := config.Default()
	cfg.IndexPath = filepath.Join(t.TempDir(), "runs.db")

	a, err := New(context.Background(), cfg)
	require.NoError(t, err)

	first, err := a.Index(context.Background())
	require.NoError(t, err)
	require.NotNil(t, first)
	second, err := a.Index(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)

	require.NoError(t, a.Close(context.Background()))
	assert.FileExists(t, cfg.IndexPath)
}
