package siteconf

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// ServerConfig configures the read-only settings API.
type ServerConfig struct {
	Addr       string        // Listen address (default ":3000")
	RateLimit  int           // Requests per RateWindow per client IP on /api/ (default 120)
	RateWindow time.Duration // Rate limit window (default 1min)
	LogLevel   log.Lvl       // Echo logger level (default INFO)
}

func (c *ServerConfig) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.RateLimit == 0 {
		c.RateLimit = 120
	}
	if c.RateWindow == 0 {
		c.RateWindow = time.Minute
	}
	if c.LogLevel == 0 {
		c.LogLevel = log.INFO
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// App serves one frozen Settings record over HTTP.
type App struct {
	Config   ServerConfig
	Settings Settings
	Echo     *echo.Echo

	limiter      *RateLimiter
	customRoutes []func(*App)
}

// New builds an App for s with all middleware and routes in place. The record
// is copied; later changes to the caller's value are not seen.
func New(s Settings, cfg ServerConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:   cfg,
		Settings: s,
		Echo:     echo.New(),
		limiter:  NewRateLimiter(cfg.RateLimit, cfg.RateWindow),
	}
	a.Echo.HideBanner = true
	a.Echo.Logger.SetLevel(cfg.LogLevel)

	for _, opt := range opts {
		opt(a)
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return a
}

// Start listens on Config.Addr until the server is shut down.
func (a *App) Start() error {
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully and releases the rate limiter.
func (a *App) Shutdown(ctx context.Context) error {
	defer a.Close()
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/robots.txt", a.handleRobots)
	e.GET("/healthz", handleHealth)
	e.GET("/head", a.handleHead)

	api := e.Group("/api", a.rateLimitMiddleware)
	api.GET("/settings", a.handleSettings)
	api.GET("/settings/edit-link", a.handleEditLink)
	api.GET("/settings/validate", a.handleValidate)
}

// Close releases background resources. It is safe to call more than once.
func (a *App) Close() error {
	a.limiter.Stop()
	return nil
}
