package localexec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"sync"

	"github.com/vk/sweepgo/internal/config"
	"github.com/vk/sweepgo/internal/ctxlog"
	"github.com/vk/sweepgo/internal/launcher"
)

// defaultWorkers bounds concurrency when the configuration leaves the
// worker count unset.
const defaultWorkers = 4

// Launcher runs each job as one subprocess: the configured command argv
// with the job's override tokens appended. Jobs are dispatched to a fixed
// pool of workers; the first failure cancels all jobs not yet started.
type Launcher struct {
	command []string
	workers int
	out     io.Writer

	// runJob executes a single argv. Swapped out in tests.
	runJob func(ctx context.Context, argv []string, out io.Writer) error
}

// New creates a local launcher from the loaded settings.
func New(settings *config.LauncherSettings, out io.Writer) (*Launcher, error) {
	if settings == nil || len(settings.Command) == 0 {
		return nil, errors.New("local backend requires a launch command (launcher.command)")
	}
	workers := settings.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Launcher{
		command: settings.Command,
		workers: workers,
		out:     out,
		runJob:  runCommand,
	}, nil
}

// runCommand is the real subprocess runner.
func runCommand(ctx context.Context, argv []string, out io.Writer) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = out
	cmd.Stderr = out
	return cmd.Run()
}

// Launch implements the launcher.Launcher interface. Results are returned
// in job order regardless of completion order. The aggregate error joins
// every per-job failure, including jobs skipped after the fail-fast cancel.
func (l *Launcher) Launch(ctx context.Context, jobs []launcher.Job, initialJobIdx int) ([]launcher.Result, error) {
	logger := ctxlog.FromContext(ctx)
	results := make([]launcher.Result, len(jobs))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobChan := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < l.workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for i := range jobChan {
				l.runOne(runCtx, cancel, logger.With("workerID", workerID), jobs[i], i, initialJobIdx, results)
			}
		}(w)
	}

	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)
	wg.Wait()

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("job %d: %w", r.JobIdx, r.Err))
		}
	}
	return results, errors.Join(errs...)
}

// runOne executes a single job and records its result. Each slot of the
// results slice is written by exactly one worker, so no locking is needed.
func (l *Launcher) runOne(
	ctx context.Context,
	cancel context.CancelFunc,
	logger *slog.Logger,
	job launcher.Job,
	i int,
	initialJobIdx int,
	results []launcher.Result,
) {
	idx := initialJobIdx + i

	if err := ctx.Err(); err != nil {
		results[i] = launcher.Result{JobIdx: idx, Overrides: job, Err: err}
		return
	}

	logger.Debug("Worker picked up job.", "jobIdx", idx)
	argv := make([]string, 0, len(l.command)+len(job))
	argv = append(argv, l.command...)
	argv = append(argv, job...)

	if err := l.runJob(ctx, argv, l.out); err != nil {
		logger.Error("Job failed.", "jobIdx", idx, "error", err)
		results[i] = launcher.Result{JobIdx: idx, Overrides: job, Err: err}
		cancel()
		return
	}

	logger.Debug("Job finished.", "jobIdx", idx)
	results[i] = launcher.Result{JobIdx: idx, Overrides: job}
}
