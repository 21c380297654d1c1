package cache

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/law-makers/appraiser/pkg/models"
)

func snapshot(url string, bytes int) *models.Snapshot {
	return &models.Snapshot{URL: url, StatusCode: 200, HTML: strings.Repeat("x", bytes)}
}

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(1 << 20)
	defer c.Close()

	require.NoError(t, c.Set("a", snapshot("a", 10), time.Minute))

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", got.URL)

	_, ok = c.Get("missing")
	assert.False(t, ok)

	st := c.Stats()
	assert.Equal(t, 1, st.Entries)
	assert.Equal(t, uint64(1), st.Hits)
	assert.Equal(t, uint64(1), st.Misses)
	assert.InDelta(t, 50.0, st.HitRate(), 0.001)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(1 << 20)
	defer c.Close()

	require.NoError(t, c.Set("a", snapshot("a", 10), time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Stats().Entries)
	assert.Equal(t, int64(0), c.Stats().Size)
}

func TestMemoryCache_EvictsLeastRecentlyUsed(t *testing.T) {
	// room for two 1000-byte pages plus overhead, not three
	c := NewMemoryCache(3500)
	defer c.Close()

	require.NoError(t, c.Set("a", snapshot("a", 1000), time.Minute))
	require.NoError(t, c.Set("b", snapshot("b", 1000), time.Minute))
	_, ok := c.Get("a")
	require.True(t, ok)
	require.NoError(t, c.Set("c", snapshot("c", 1000), time.Minute))

	_, ok = c.Get("b")
	assert.False(t, ok, "b was least recently used")
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestMemoryCache_ReplaceKeepsSizeAccurate(t *testing.T) {
	c := NewMemoryCache(1 << 20)
	defer c.Close()

	require.NoError(t, c.Set("a", snapshot("a", 1000), time.Minute))
	require.NoError(t, c.Set("a", snapshot("a", 10), time.Minute))

	assert.Equal(t, 1, c.Stats().Entries)
	assert.Equal(t, sizeOf(snapshot("a", 10)), c.Stats().Size)

	require.NoError(t, c.Delete("a"))
	require.NoError(t, c.Delete("a"))
	assert.Equal(t, int64(0), c.Stats().Size)
}

func TestMemoryCache_OversizedSkipped(t *testing.T) {
	c := NewMemoryCache(100)
	defer c.Close()

	require.NoError(t, c.Set("big", snapshot("big", 1000), time.Minute))
	_, ok := c.Get("big")
	assert.False(t, ok)
}

func TestMemoryCache_Clear(t *testing.T) {
	c := NewMemoryCache(0)
	defer c.Close()

	require.NoError(t, c.Set("a", snapshot("a", 10), time.Minute))
	require.NoError(t, c.Clear())
	assert.Equal(t, Stats{MaxSize: DefaultMaxSize}, c.Stats())
}
