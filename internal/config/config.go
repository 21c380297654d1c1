// Package config resolves settings from defaults, an optional YAML file,
// APPRAISER_* environment variables and command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/law-makers/appraiser/internal/seed"
)

// Config holds application configuration values
type Config struct {
	// Logging
	LogLevel string `yaml:"log_level"`
	JSONLog  bool   `yaml:"json_log"`

	// Extraction
	County    string    `yaml:"county"`
	InputFile string    `yaml:"input_file"`
	DataDir   string    `yaml:"data_dir"`
	Seeds     SeedFiles `yaml:"seeds"`
	Strict    bool      `yaml:"strict"`

	// Batch
	Concurrency int    `yaml:"concurrency"`
	IndexPath   string `yaml:"index"`

	// HTTP
	HTTPTimeout    time.Duration `yaml:"timeout"`
	UserAgent      string        `yaml:"user_agent"`
	Proxy          string        `yaml:"proxy"`
	Headers        []string      `yaml:"headers"`
	RateLimitRPS   float64       `yaml:"rate_limit"`
	RateLimitBurst int           `yaml:"rate_burst"`

	// Caching
	CacheTTL          time.Duration `yaml:"cache_ttl"`
	CacheMaxSizeBytes int64         `yaml:"cache_max_bytes"`
}

// SeedFiles names the seed files inside a parcel directory.
type SeedFiles struct {
	PropertySeed string `yaml:"property_seed"`
	Address      string `yaml:"address"`
	Owners       string `yaml:"owners"`
	Utilities    string `yaml:"utilities"`
	Layouts      string `yaml:"layouts"`
}

// Files converts to the seed loader's layout.
func (s SeedFiles) Files() seed.Files {
	return seed.Files(s)
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:          DefaultLogLevel,
		JSONLog:           DefaultJSONLog,
		InputFile:         DefaultInputFile,
		DataDir:           DefaultDataDir,
		Seeds:             SeedFiles(seed.DefaultFiles()),
		Strict:            DefaultStrict,
		Concurrency:       DefaultConcurrency,
		HTTPTimeout:       DefaultHTTPTimeout,
		UserAgent:         DefaultUserAgent,
		RateLimitRPS:      DefaultRateLimitRPS,
		RateLimitBurst:    DefaultRateLimitBurst,
		CacheTTL:          DefaultCacheTTL,
		CacheMaxSizeBytes: DefaultCacheMaxSizeBytes,
	}
}

// Load builds a Config by combining defaults, an optional config file,
// environment variables and CLI flags. Pass the executing command so its
// flags (including inherited persistent flags) can be read.
func Load(cmd *cobra.Command) (*Config, error) {
	cfg := Default()

	path := os.Getenv(EnvPrefix + "CONFIG")
	if s := flagString(cmd, "config"); s != "" {
		path = s
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}
	if err := cfg.loadFlags(cmd); err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (c *Config) loadEnv() error {
	var errs []error
	str := func(name string, dst *string) {
		if v := os.Getenv(EnvPrefix + name); v != "" {
			*dst = v
		}
	}
	num := func(name string, set func(string) error) {
		if v := os.Getenv(EnvPrefix + name); v != "" {
			if err := set(v); err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
			}
		}
	}

	str("LOG_LEVEL", &c.LogLevel)
	str("COUNTY", &c.County)
	str("INPUT", &c.InputFile)
	str("DATA_DIR", &c.DataDir)
	str("INDEX", &c.IndexPath)
	str("USER_AGENT", &c.UserAgent)
	str("PROXY", &c.Proxy)
	num("CONCURRENCY", func(v string) (err error) { c.Concurrency, err = strconv.Atoi(v); return })
	num("TIMEOUT", func(v string) (err error) { c.HTTPTimeout, err = time.ParseDuration(v); return })
	num("RATE_LIMIT", func(v string) (err error) { c.RateLimitRPS, err = strconv.ParseFloat(v, 64); return })
	num("STRICT", func(v string) (err error) { c.Strict, err = strconv.ParseBool(v); return })
	num("JSON", func(v string) (err error) { c.JSONLog, err = strconv.ParseBool(v); return })
	return errors.Join(errs...)
}

func (c *Config) loadFlags(cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}
	flags := cmd.Flags()
	changed := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && f.Changed
	}

	if changed("county") {
		c.County, _ = flags.GetString("county")
	}
	if changed("input") {
		c.InputFile, _ = flags.GetString("input")
	}
	if changed("data-dir") {
		c.DataDir, _ = flags.GetString("data-dir")
	}
	if changed("index") {
		c.IndexPath, _ = flags.GetString("index")
	}
	if changed("user-agent") {
		c.UserAgent, _ = flags.GetString("user-agent")
	}
	if changed("proxy") {
		c.Proxy, _ = flags.GetString("proxy")
	}
	if changed("header") {
		c.Headers, _ = flags.GetStringArray("header")
	}
	if changed("concurrency") {
		c.Concurrency, _ = flags.GetInt("concurrency")
	}
	if changed("rate-limit") {
		c.RateLimitRPS, _ = flags.GetFloat64("rate-limit")
	}
	if changed("timeout") {
		s, _ := flags.GetString("timeout")
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("--timeout: %w", err)
		}
		c.HTTPTimeout = d
	}
	if changed("cache-mb") {
		mb, _ := flags.GetInt("cache-mb")
		c.CacheMaxSizeBytes = int64(mb) * 1024 * 1024
	}
	if changed("lenient") {
		lenient, _ := flags.GetBool("lenient")
		c.Strict = !lenient
	}
	if changed("json") {
		c.JSONLog, _ = flags.GetBool("json")
	}
	if v, _ := flags.GetBool("verbose"); v {
		c.LogLevel = "debug"
	}
	if q, _ := flags.GetBool("quiet"); q {
		c.LogLevel = "error"
	}
	return nil
}

func flagString(cmd *cobra.Command, name string) string {
	if cmd == nil {
		return ""
	}
	if f := cmd.Flags().Lookup(name); f != nil {
		return f.Value.String()
	}
	return ""
}
