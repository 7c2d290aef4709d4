package app

import (
	"context"
	"fmt"

	"github.com/vk/sweepgo/internal/config"
	"github.com/vk/sweepgo/internal/ctxlog"
	"github.com/vk/sweepgo/internal/sweep"
)

// Run executes the main application logic: select a launcher backend,
// assemble the sweeper, expand the sweep, and launch it.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	settings := a.launcherSettings()
	a.logger.Debug("Launcher backend selected.", "backend", settings.Backend)

	l, err := a.registry.NewLauncher(settings.Backend, settings, a.outW)
	if err != nil {
		return fmt.Errorf("failed to create launcher: %w", err)
	}

	// CLI-supplied sweep values are construction-time and win over the
	// sweep file; Setup fills only what was left unset.
	var opts []sweep.Option
	if a.config.Seeds != nil {
		opts = append(opts, sweep.WithSeeds(a.config.Seeds))
	}
	if a.config.SeedKey != "" {
		opts = append(opts, sweep.WithSeedKey(a.config.SeedKey))
	}
	sweeper := sweep.New(opts...)
	sweeper.Setup(ctx, a.model.Sweep, l)

	results, err := sweeper.Sweep(ctx, a.config.Overrides)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	a.logger.Info("Sweep finished.", "jobs", len(results), "failed", failed)

	a.logger.Debug("App.Run method finished.")
	return nil
}

// launcherSettings merges the CLI launcher flags over the sweep file's
// launcher block. The dry-run flag forces the printer backend.
func (a *App) launcherSettings() *config.LauncherSettings {
	settings := &config.LauncherSettings{Backend: "print"}
	if a.model.Launcher != nil {
		if a.model.Launcher.Backend != "" {
			settings.Backend = a.model.Launcher.Backend
		}
		settings.Command = a.model.Launcher.Command
		settings.Workers = a.model.Launcher.Workers
	}

	if a.config.Backend != "" {
		settings.Backend = a.config.Backend
	}
	if len(a.config.Command) > 0 {
		settings.Command = a.config.Command
	}
	if a.config.Workers > 0 {
		settings.Workers = a.config.Workers
	}
	if a.config.DryRun {
		settings.Backend = "print"
	}
	return settings
}
