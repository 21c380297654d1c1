// Package app provides the core application initialization and lifecycle management.
package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/law-makers/appraiser/internal/cache"
	"github.com/law-makers/appraiser/internal/config"
	"github.com/law-makers/appraiser/internal/engine"
	"github.com/law-makers/appraiser/internal/engine/static"
	"github.com/law-makers/appraiser/internal/index"
	"github.com/law-makers/appraiser/internal/pipeline"
	"github.com/law-makers/appraiser/internal/proxy"
	"github.com/law-makers/appraiser/internal/ratelimit"
	"github.com/law-makers/appraiser/internal/retry"
	"github.com/law-makers/appraiser/internal/utils/headers"
)

// Application holds all application dependencies and manages their lifecycle.
//
// It is created once at startup and shared across all CLI commands.
// Use Close() to ensure proper resource cleanup on shutdown.
type Application struct {
	Config      *config.Config
	Logger      *zerolog.Logger
	Cache       *cache.MemoryCache
	RateLimiter ratelimit.RateLimiter
	Proxies     *proxy.Pool
	Headers     http.Header
	HTTPClient  *http.Client
	Fetcher     engine.Fetcher

	indexMu   sync.Mutex
	index     *index.Index
	startTime time.Time
}

// New creates and initializes a new Application with all dependencies.
//
// Logging is configured first; the page cache, rate limiter, proxy rotation
// and HTTP client are then built for the fetcher. The run index is opened
// lazily by Index.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := setupLogging(cfg)

	hdrs, err := headers.Parse(cfg.Headers)
	if err != nil {
		return nil, err
	}
	proxies, err := proxy.Parse(cfg.Proxy)
	if err != nil {
		return nil, err
	}

	memCache := cache.NewMemoryCache(cfg.CacheMaxSizeBytes)
	rateLimiter := ratelimit.NewHostLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	logger.Debug().
		Float64("rps", cfg.RateLimitRPS).
		Int("burst", cfg.RateLimitBurst).
		Int("proxies", proxies.Len()).
		Msg("Rate limiter initialized")

	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
	var rt http.RoundTripper = transport
	if proxies != nil {
		rt = proxies.RoundTripper(transport)
	} else {
		transport.Proxy = http.ProxyFromEnvironment
	}
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout, Transport: rt}

	fetcher := static.New(memCache, rateLimiter, httpClient, static.Options{
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.HTTPTimeout,
		CacheTTL:  cfg.CacheTTL,
		Retry:     retry.DefaultConfig(),
	})

	a := &Application{
		Config:      cfg,
		Logger:      &logger,
		Cache:       memCache,
		RateLimiter: rateLimiter,
		Proxies:     proxies,
		Headers:     hdrs,
		HTTPClient:  httpClient,
		Fetcher:     fetcher,
		startTime:   time.Now(),
	}
	logger.Debug().Msg("Application initialized")
	return a, nil
}

func setupLogging(cfg *config.Config) zerolog.Logger {
	level := zerolog.ErrorLevel // info logs only with -v
	switch cfg.LogLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)

	var w io.Writer = zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = os.Stderr
		cw.TimeFormat = time.Kitchen
	})
	if cfg.JSONLog {
		w = os.Stderr
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return log.Logger
}

// Job builds a pipeline job for dir from the configuration.
func (a *Application) Job(dir string) pipeline.Job {
	return pipeline.Job{
		Dir:       dir,
		County:    a.Config.County,
		InputFile: a.Config.InputFile,
		DataDir:   a.Config.DataDir,
		Seeds:     a.Config.Seeds.Files(),
		Strict:    a.Config.Strict,
	}
}

// SnapshotJob builds a fetch job for dir from the configuration.
func (a *Application) SnapshotJob(dir string, clean, force bool) pipeline.SnapshotJob {
	return pipeline.SnapshotJob{
		Dir:       dir,
		InputFile: a.Config.InputFile,
		Seeds:     a.Config.Seeds.Files(),
		Headers:   a.Headers,
		Clean:     clean,
		Force:     force,
	}
}

// Index opens the configured run index on first use. It returns nil when no
// index path is configured.
func (a *Application) Index(ctx context.Context) (*index.Index, error) {
	if a.Config.IndexPath == "" {
		return nil, nil
	}
	a.indexMu.Lock()
	defer a.indexMu.Unlock()
	if a.index != nil {
		return a.index, nil
	}
	x, err := index.Open(ctx, a.Config.IndexPath)
	if err != nil {
		return nil, err
	}
	a.index = x
	return x, nil
}

// Close gracefully shuts down the application and all its resources.
// Errors are logged and the remaining steps still run.
func (a *Application) Close(ctx context.Context) error {
	a.indexMu.Lock()
	if a.index != nil {
		if err := a.index.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Error closing run index")
		}
		a.index = nil
	}
	a.indexMu.Unlock()

	if a.Cache != nil {
		st := a.Cache.Stats()
		a.Logger.Debug().
			Int("entries", st.Entries).
			Float64("hit_rate", st.HitRate()).
			Msg("Page cache stats")
		a.Cache.Close()
	}
	if a.HTTPClient != nil {
		a.HTTPClient.CloseIdleConnections()
	}

	a.Logger.Debug().Dur("uptime", a.Uptime()).Msg("Application shutdown complete")
	return nil
}

// Uptime returns how long the application has been running.
func (a *Application) Uptime() time.Duration {
	return time.Since(a.startTime)
}
