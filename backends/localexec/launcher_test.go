package localexec

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/sweepgo/internal/config"
	"github.com/vk/sweepgo/internal/launcher"
)

func newTestLauncher(t *testing.T, settings *config.LauncherSettings) *Launcher {
	t.Helper()
	l, err := New(settings, io.Discard)
	require.NoError(t, err)
	return l
}

func TestNew_RequiresCommand(t *testing.T) {
	t.Parallel()

	_, err := New(&config.LauncherSettings{}, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a launch command")

	_, err = New(nil, io.Discard)
	require.Error(t, err)
}

func TestNew_DefaultWorkers(t *testing.T) {
	t.Parallel()

	l := newTestLauncher(t, &config.LauncherSettings{Command: []string{"run"}})
	assert.Equal(t, defaultWorkers, l.workers)

	l = newTestLauncher(t, &config.LauncherSettings{Command: []string{"run"}, Workers: 9})
	assert.Equal(t, 9, l.workers)
}

func TestLaunch_RunsEveryJobWithFullArgv(t *testing.T) {
	t.Parallel()

	l := newTestLauncher(t, &config.LauncherSettings{
		Command: []string{"python", "train.py"},
		Workers: 2,
	})

	var mu sync.Mutex
	var seen [][]string
	l.runJob = func(ctx context.Context, argv []string, out io.Writer) error {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, argv)
		return nil
	}

	jobs := []launcher.Job{
		{"sampling=independent", "seed=42"},
		{"sampling=ot", "seed=42"},
		{"sampling=ot", "seed=43"},
	}

	results, err := l.Launch(context.Background(), jobs, 0)
	require.NoError(t, err)

	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, i, r.JobIdx)
		assert.Equal(t, jobs[i], r.Overrides)
		assert.NoError(t, r.Err)
	}

	assert.Len(t, seen, 3)
	assert.Contains(t, seen, []string{"python", "train.py", "sampling=independent", "seed=42"})
	assert.Contains(t, seen, []string{"python", "train.py", "sampling=ot", "seed=43"})
}

func TestLaunch_ResultsOrderedByJobIndex(t *testing.T) {
	t.Parallel()

	l := newTestLauncher(t, &config.LauncherSettings{Command: []string{"run"}, Workers: 4})
	l.runJob = func(ctx context.Context, argv []string, out io.Writer) error { return nil }

	jobs := make([]launcher.Job, 16)
	for i := range jobs {
		jobs[i] = launcher.Job{"a=1"}
	}

	results, err := l.Launch(context.Background(), jobs, 10)
	require.NoError(t, err)
	require.Len(t, results, 16)
	for i, r := range results {
		assert.Equal(t, 10+i, r.JobIdx)
	}
}

func TestLaunch_FailFastCancelsRemainingJobs(t *testing.T) {
	t.Parallel()

	// A single worker makes the dispatch order deterministic.
	l := newTestLauncher(t, &config.LauncherSettings{Command: []string{"run"}, Workers: 1})

	jobErr := errors.New("exit status 1")
	l.runJob = func(ctx context.Context, argv []string, out io.Writer) error {
		if argv[len(argv)-1] == "boom=1" {
			return jobErr
		}
		return nil
	}

	jobs := []launcher.Job{
		{"a=1"},
		{"boom=1"},
		{"a=2"},
	}

	results, err := l.Launch(context.Background(), jobs, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job 1")

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, jobErr)
	assert.ErrorIs(t, results[2].Err, context.Canceled)
}

func TestLaunch_EmptyJobList(t *testing.T) {
	t.Parallel()

	l := newTestLauncher(t, &config.LauncherSettings{Command: []string{"run"}})
	l.runJob = func(ctx context.Context, argv []string, out io.Writer) error {
		t.Error("runJob should not be called for an empty job list")
		return nil
	}

	results, err := l.Launch(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}
