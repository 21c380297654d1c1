package config

import "time"

// Default constants for application configuration
const (
	DefaultLogLevel          = "info"
	DefaultJSONLog           = false
	DefaultUserAgent         = "appraiser/1.0 (+https://github.com/law-makers/appraiser)"
	DefaultInputFile         = "input.html"
	DefaultDataDir           = "data"
	DefaultStrict            = true
	DefaultConcurrency       = 4
	MaxConcurrency           = 64
	DefaultHTTPTimeout       = 30 * time.Second
	DefaultRateLimitRPS      = 2.0
	DefaultRateLimitBurst    = 4
	DefaultCacheTTL          = 10 * time.Minute
	DefaultCacheMaxSizeBytes = 64 * 1024 * 1024 // 64MB
	EnvPrefix                = "APPRAISER_"
)
