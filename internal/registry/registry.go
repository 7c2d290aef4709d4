package registry

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/vk/sweepgo/internal/config"
	"github.com/vk/sweepgo/internal/launcher"
)

// Module is the interface launcher backends implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Factory builds a launcher from the loaded settings. The writer receives
// any human-facing output the backend produces (dry-run listings, job
// output), keeping backends testable without touching os.Stdout.
type Factory func(settings *config.LauncherSettings, out io.Writer) (launcher.Launcher, error)

// Registry holds the registered launcher factories for a single
// application instance.
type Registry struct {
	backends map[string]Factory
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		backends: make(map[string]Factory),
	}
}

// RegisterBackend registers a launcher factory under a backend name.
func (r *Registry) RegisterBackend(name string, factory Factory) {
	if _, exists := r.backends[name]; exists {
		panic(fmt.Sprintf("launcher backend with name '%s' already registered", name))
	}
	slog.Debug("Registering launcher backend.", "name", name)
	r.backends[name] = factory
}

// NewLauncher instantiates the named backend.
func (r *Registry) NewLauncher(name string, settings *config.LauncherSettings, out io.Writer) (launcher.Launcher, error) {
	factory, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown launcher backend %q (registered: %s)", name, strings.Join(r.BackendNames(), ", "))
	}
	return factory(settings, out)
}

// BackendNames returns the registered backend names in sorted order.
func (r *Registry) BackendNames() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
