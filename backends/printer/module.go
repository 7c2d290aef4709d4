// Package printer provides a dry-run launcher backend that lists each job's
// override tokens instead of executing anything.
package printer

import (
	"io"

	"github.com/vk/sweepgo/internal/config"
	"github.com/vk/sweepgo/internal/launcher"
	"github.com/vk/sweepgo/internal/registry"
)

// Module implements the registry.Module interface. It's the main entrypoint
// for the printer backend, responsible for registering it with the
// application's registry.
type Module struct{}

// Register registers the backend with the central registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBackend("print", func(settings *config.LauncherSettings, out io.Writer) (launcher.Launcher, error) {
		return New(out), nil
	})
}
