package folio

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/site"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string // Site name (default "Portfolio")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Author name for JSON-LD and post fallbacks

	Addr string // Listen address (default ":3000")

	Sanity content.Config // Content store project

	// CacheTTL is how long query results are kept. Zero disables caching.
	CacheTTL time.Duration
	RedisURL string // Shared cache backend; in-memory when empty

	FetchTimeout time.Duration // Per-fragment fetch budget (default 10s)
	FetchLimit   int           // Fragment fetches per IP per minute (default 60)

	SessionSecret string // Session cookie secret (default random per process)
	CookieSecure  bool   // Set true for HTTPS

	LogFormat string // "json" (default) or "console"
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Portfolio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.FetchTimeout == 0 {
		c.FetchTimeout = 10 * time.Second
	}
	if c.FetchLimit == 0 {
		c.FetchLimit = 60
	}
	if c.LogFormat == "" {
		c.LogFormat = "json"
	}
	if c.Sanity.Dataset == "" {
		c.Sanity.Dataset = "production"
	}
}

// ConfigFromEnv reads a SiteConfig from the environment. Unset variables
// keep their defaults; malformed ones are an error.
func ConfigFromEnv() (SiteConfig, error) {
	cfg := SiteConfig{
		Name:        os.Getenv("SITE_NAME"),
		URL:         os.Getenv("SITE_URL"),
		Description: os.Getenv("SITE_DESCRIPTION"),
		Author:      os.Getenv("SITE_AUTHOR"),
		Addr:        os.Getenv("ADDR"),
		Sanity: content.Config{
			ProjectID:  os.Getenv("SANITY_PROJECT_ID"),
			Dataset:    envOr("SANITY_DATASET", "production"),
			APIVersion: os.Getenv("SANITY_API_VERSION"),
			Token:      os.Getenv("SANITY_TOKEN"),
		},
		RedisURL:      os.Getenv("REDIS_URL"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		LogFormat:     envOr("LOG_FORMAT", "json"),
	}

	var err error
	if cfg.Sanity.UseCDN, err = envBool("SANITY_USE_CDN", true); err != nil {
		return cfg, err
	}
	if cfg.CookieSecure, err = envBool("COOKIE_SECURE", false); err != nil {
		return cfg, err
	}
	if cfg.CacheTTL, err = envDuration("CACHE_TTL", 5*time.Minute); err != nil {
		return cfg, err
	}
	if cfg.FetchTimeout, err = envDuration("FETCH_TIMEOUT", 10*time.Second); err != nil {
		return cfg, err
	}
	if v := os.Getenv("FETCH_LIMIT"); v != "" {
		if cfg.FetchLimit, err = strconv.Atoi(v); err != nil {
			return cfg, fmt.Errorf("folio: FETCH_LIMIT: %w", err)
		}
	}
	return cfg, nil
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("folio: %s: %w", key, err)
	}
	return b, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("folio: %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("folio: %s: negative duration %s", key, v)
	}
	return d, nil
}

// envOr returns the value of the environment variable key, or fallback if empty.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithSource replaces the content store client, e.g. with a fixture.
func WithSource(src content.Source) Option {
	return func(a *App) {
		a.source = src
	}
}

// WithLogger sets the logger instead of building one from LogFormat.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithData replaces the embedded site data.
func WithData(d *site.Data) Option {
	return func(a *App) {
		a.Data = d
	}
}
