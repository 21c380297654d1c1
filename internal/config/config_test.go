package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	RegisterFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newCmd(t))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "input.html", cfg.InputFile)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "property_seed.json", cfg.Seeds.PropertySeed)
	assert.Equal(t, filepath.Join("owners", "owner_data.json"), cfg.Seeds.Files().Owners)
	assert.True(t, cfg.Strict)
	assert.Equal(t, DefaultConcurrency, cfg.Concurrency)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, int64(DefaultCacheMaxSizeBytes), cfg.CacheMaxSizeBytes)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("APPRAISER_COUNTY", "collier")
	t.Setenv("APPRAISER_CONCURRENCY", "12")
	t.Setenv("APPRAISER_TIMEOUT", "5s")
	t.Setenv("APPRAISER_STRICT", "false")
	t.Setenv("APPRAISER_PROXY", "http://proxy:3128")

	cfg, err := Load(newCmd(t))
	require.NoError(t, err)
	assert.Equal(t, "collier", cfg.County)
	assert.Equal(t, 12, cfg.Concurrency)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.False(t, cfg.Strict)
	assert.Equal(t, "http://proxy:3128", cfg.Proxy)
}

func TestLoadEnvInvalid(t *testing.T) {
	t.Setenv("APPRAISER_CONCURRENCY", "many")
	t.Setenv("APPRAISER_TIMEOUT", "soon")

	_, err := Load(newCmd(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APPRAISER_CONCURRENCY")
	assert.Contains(t, err.Error(), "APPRAISER_TIMEOUT")
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("APPRAISER_COUNTY", "collier")

	cfg, err := Load(newCmd(t, "--county", "lee", "-j", "8", "--lenient", "-v",
		"--data-dir", "/tmp/out", "-H", "Referer: https://www.leepa.org", "--cache-mb", "8"))
	require.NoError(t, err)
	assert.Equal(t, "lee", cfg.County)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.False(t, cfg.Strict)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/out", cfg.DataDir)
	assert.Equal(t, []string{"Referer: https://www.leepa.org"}, cfg.Headers)
	assert.Equal(t, int64(8*1024*1024), cfg.CacheMaxSizeBytes)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appraiser.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
county: lee
concurrency: 16
timeout: 45s
strict: false
seeds:
  property_seed: seed.json
headers:
  - "Accept-Language: en"
`), 0644))

	cfg, err := Load(newCmd(t, "--config", path, "-j", "2"))
	require.NoError(t, err)
	assert.Equal(t, "lee", cfg.County)
	assert.Equal(t, 2, cfg.Concurrency, "flag wins over file")
	assert.Equal(t, 45*time.Second, cfg.HTTPTimeout)
	assert.False(t, cfg.Strict)
	assert.Equal(t, "seed.json", cfg.Seeds.PropertySeed)
	assert.Equal(t, "unnormalized_address.json", cfg.Seeds.Address, "unset keys keep defaults")
	assert.Equal(t, []string{"Accept-Language: en"}, cfg.Headers)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := Load(newCmd(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("concurrency: [1, 2"), 0644))
	_, err = Load(newCmd(t, "--config", path))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero timeout", func(c *Config) { c.HTTPTimeout = 0 }},
		{"concurrency too low", func(c *Config) { c.Concurrency = 0 }},
		{"concurrency too high", func(c *Config) { c.Concurrency = 65 }},
		{"empty data dir", func(c *Config) { c.DataDir = " " }},
		{"empty input", func(c *Config) { c.InputFile = "" }},
		{"rate limit", func(c *Config) { c.RateLimitRPS = 0 }},
		{"log level", func(c *Config) { c.LogLevel = "trace" }},
	}
	require.NoError(t, validate(Default()))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			assert.Error(t, validate(c))
		})
	}
}
