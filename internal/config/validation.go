package config

import (
	"fmt"
	"strings"
)

func validate(c *Config) error {
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be > 0")
	}
	if c.Concurrency < 1 || c.Concurrency > MaxConcurrency {
		return fmt.Errorf("concurrency must be between 1 and %d", MaxConcurrency)
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("data dir must not be empty")
	}
	if strings.TrimSpace(c.InputFile) == "" {
		return fmt.Errorf("input file must not be empty")
	}
	if c.Seeds.PropertySeed == "" {
		return fmt.Errorf("property seed file must not be empty")
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("rate limit must be > 0")
	}
	if c.CacheMaxSizeBytes <= 0 {
		return fmt.Errorf("cache max size must be > 0")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
