package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/daylayout/internal/config"
	"github.com/vk/daylayout/internal/ctxlog"
	"github.com/vk/daylayout/internal/publish"
)

// Dialer opens a connection to the rendering collaborator.
type Dialer func(ctx context.Context, opts publish.Options) (*publish.Publisher, error)

// Option customises an App.
type Option func(*App)

// WithDialer replaces publish.Connect. It is primarily for testing.
func WithDialer(d Dialer) Option {
	return func(a *App) { a.dial = d }
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	model  *config.Model
	dial   Dialer
}

// NewApp is the constructor for the main application. It builds an isolated
// logger writing to logW and loads every event source under
// cfg.EventsPath. Layout results are written to outW.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, opts ...Option) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	m, err := loader.Load(ctx, cfg.EventsPath)
	if err != nil {
		// A failure to load events is a fatal startup error.
		panic(fmt.Errorf("failed to load events: %w", err))
	}
	logger.Debug("Events loaded into unified model.", "events", len(m.Events), "files", len(m.Files))

	a := &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		model:  m,
		dial:   publish.Connect,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Model returns the loaded event model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
