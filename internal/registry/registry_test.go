package registry

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/sweepgo/internal/config"
	"github.com/vk/sweepgo/internal/launcher"
)

type nopLauncher struct{}

func (nopLauncher) Launch(ctx context.Context, jobs []launcher.Job, initialJobIdx int) ([]launcher.Result, error) {
	return nil, nil
}

func TestRegisterBackendAndNewLauncher(t *testing.T) {
	t.Parallel()

	r := New()
	var gotSettings *config.LauncherSettings
	var gotOut io.Writer

	r.RegisterBackend("nop", func(settings *config.LauncherSettings, out io.Writer) (launcher.Launcher, error) {
		gotSettings = settings
		gotOut = out
		return nopLauncher{}, nil
	})

	settings := &config.LauncherSettings{Backend: "nop", Workers: 2}
	out := &bytes.Buffer{}

	l, err := r.NewLauncher("nop", settings, out)
	require.NoError(t, err)
	assert.NotNil(t, l)
	assert.Same(t, settings, gotSettings)
	assert.Same(t, out, gotOut)
}

func TestRegisterBackend_DuplicatePanics(t *testing.T) {
	t.Parallel()

	r := New()
	factory := func(settings *config.LauncherSettings, out io.Writer) (launcher.Launcher, error) {
		return nopLauncher{}, nil
	}

	r.RegisterBackend("nop", factory)
	assert.Panics(t, func() { r.RegisterBackend("nop", factory) })
}

func TestNewLauncher_UnknownBackend(t *testing.T) {
	t.Parallel()

	r := New()
	r.RegisterBackend("local", func(settings *config.LauncherSettings, out io.Writer) (launcher.Launcher, error) {
		return nopLauncher{}, nil
	})
	r.RegisterBackend("print", func(settings *config.LauncherSettings, out io.Writer) (launcher.Launcher, error) {
		return nopLauncher{}, nil
	})

	_, err := r.NewLauncher("slurm", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown launcher backend "slurm"`)
	assert.Contains(t, err.Error(), "local, print")
}

func TestBackendNames_Sorted(t *testing.T) {
	t.Parallel()

	r := New()
	factory := func(settings *config.LauncherSettings, out io.Writer) (launcher.Launcher, error) {
		return nopLauncher{}, nil
	}
	r.RegisterBackend("zeta", factory)
	r.RegisterBackend("alpha", factory)

	assert.Equal(t, []string{"alpha", "zeta"}, r.BackendNames())
}
