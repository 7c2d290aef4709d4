package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/sweepgo/internal/config"
	"github.com/vk/sweepgo/internal/ctxlog"
	"github.com/vk/sweepgo/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	model    *config.Model
	config   *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, backends ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load the sweep definition into the format-agnostic model first.
	model, err := loader.Load(ctx, appConfig.SweepPath)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded and translated into unified model.")

	// Create and populate the registry with launcher backends.
	reg := registry.New()
	if len(backends) == 0 {
		backends = coreBackends
	}
	for _, b := range backends {
		b.Register(reg)
	}
	logger.Debug("All launcher backends registered.", "count", len(backends))

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		model:    model,
		config:   appConfig,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Model returns the loaded configuration model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
