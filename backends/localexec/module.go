// Package localexec provides a launcher backend that runs one local
// subprocess per job through a bounded worker pool.
package localexec

import (
	"io"

	"github.com/vk/sweepgo/internal/config"
	"github.com/vk/sweepgo/internal/launcher"
	"github.com/vk/sweepgo/internal/registry"
)

// Module implements the registry.Module interface. It's the main entrypoint
// for the localexec backend, responsible for registering it with the
// application's registry.
type Module struct{}

// Register registers the backend with the central registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterBackend("local", func(settings *config.LauncherSettings, out io.Writer) (launcher.Launcher, error) {
		return New(settings, out)
	})
}
