// Package folio is a portfolio site server with a headless-CMS blog, built
// with Go, Echo, gomponents and htmx.
//
// Pages render on the server from embedded site data. Blog content is read
// from a Sanity-style content store through a cache and delivered as htmx
// fragments, so a slow or failing store never blocks the page itself.
package folio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/site"
)

const shutdownTimeout = 10 * time.Second

// App is the central folio application. It wires together the content
// source, cache, handlers, middleware and views.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Cache  *ContentCache
	Data   *site.Data
	Logger *zap.Logger

	source       content.Source
	limiter      *FetchLimiter
	metrics      *Metrics
	registry     *prometheus.Registry
	customRoutes []func(*App)
	staticDir    string
}

// New creates a folio App ready to serve. It loads the site data, builds
// the content client and cache, and registers middleware and routes.
func New(cfg SiteConfig, opts ...Option) (*App, error) {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
		registry:  prometheus.NewRegistry(),
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}

	if a.Logger == nil {
		l, err := NewLogger(a.Config.LogFormat)
		if err != nil {
			return nil, err
		}
		a.Logger = l
	}
	if a.Data == nil {
		d, err := site.Load()
		if err != nil {
			return nil, err
		}
		a.Data = d
	}
	if a.Config.Author == "" {
		a.Config.Author = a.Data.Owner.Name
	}
	if a.source == nil {
		if a.Config.Sanity.ProjectID == "" {
			return nil, errors.New("folio: Sanity.ProjectID is required")
		}
		a.source = content.NewClient(a.Config.Sanity)
	}

	var store Store = NewMemoryStore()
	if a.Config.RedisURL != "" {
		rs, err := NewRedisStore(a.Config.RedisURL)
		if err != nil {
			return nil, err
		}
		store = rs
	}

	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a.metrics = NewMetrics(a.registry)
	a.Cache = NewContentCache(a.source, store, a.Config.CacheTTL, a.Config.FetchTimeout, a.metrics, a.Logger)
	a.limiter = NewFetchLimiter(a.Config.FetchLimit, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return a, nil
}

// Start serves until ctx is cancelled or the process receives SIGINT or
// SIGTERM, then shuts down gracefully.
func (a *App) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Logger.Info("listening", zap.String("addr", a.Config.Addr), zap.String("url", a.Config.URL))
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("folio: serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.Logger.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.Echo.Shutdown(sctx)
	})
	return g.Wait()
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded scripts are served under /public/ ahead of the static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := echo.WrapHandler(http.StripPrefix("/public/", http.FileServer(http.FS(embeddedFS))))
	e.GET("/public/site.js", embeddedHandler)
	e.GET("/public/motion.js", embeddedHandler)

	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/healthz", a.handleHealth)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: a.registry}))

	e.GET("/", a.handleHome)
	e.GET("/about", a.handleAbout)
	e.GET("/blog", a.handleBlog)
	e.GET("/blog/:slug", a.handlePost)
	e.GET("/projects/:slug", a.handleProject)
	e.GET("/locale/:code", a.handleLocale)

	f := e.Group("/fragments")
	f.GET("/blog-preview", a.handleBlogPreviewFragment)
	f.GET("/blog", a.handleBlogFragment)
	f.GET("/blog/:slug", a.handlePostFragment)
	f.GET("/testimonials", a.handleTestimonialFragment)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	var err error
	if a.Cache != nil {
		err = a.Cache.Close()
	}
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	return err
}
