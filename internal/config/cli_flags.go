package config

import "github.com/spf13/cobra"

// RegisterFlags registers common CLI flags on the provided root command
func RegisterFlags(cmd *cobra.Command) {
	if cmd == nil {
		return
	}

	pf := cmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	pf.BoolP("quiet", "q", false, "Suppress all output except errors")
	pf.Bool("json", false, "Log as JSON to stderr")
	pf.String("config", "", "Path to a YAML configuration file (optional)")

	pf.StringP("county", "c", "", "County extractor to use (default: from unnormalized_address.json)")
	pf.String("input", DefaultInputFile, "Parcel page file name inside each parcel directory")
	pf.String("data-dir", DefaultDataDir, "Output directory inside each parcel directory; an absolute path gets one subdirectory per parcel")
	pf.Bool("lenient", false, "Treat unknown use codes as a warning instead of an error")
	pf.String("index", "", "SQLite run index to record extractions in (optional)")
	pf.IntP("concurrency", "j", DefaultConcurrency, "Parcels processed in parallel (1-64)")

	pf.String("proxy", "", "HTTP proxy, or a comma separated list to rotate through")
	pf.String("timeout", DefaultHTTPTimeout.String(), "Timeout per page request")
	pf.String("user-agent", "", "Custom user agent string")
	pf.StringArrayP("header", "H", nil, "Extra request header \"Key: Value\" (repeatable)")
	pf.Float64("rate-limit", DefaultRateLimitRPS, "Requests per second per host")
	pf.Int("cache-mb", DefaultCacheMaxSizeBytes/(1024*1024), "In-memory page cache size in MB")
}
