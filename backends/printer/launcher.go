package printer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vk/sweepgo/internal/launcher"
)

// Launcher writes one line per job to its output writer. Every job is
// reported as successful; this backend exists for dry runs and tests.
type Launcher struct {
	out io.Writer
}

// New creates a printer launcher writing to out.
func New(out io.Writer) *Launcher {
	return &Launcher{out: out}
}

// Launch implements the launcher.Launcher interface.
func (l *Launcher) Launch(ctx context.Context, jobs []launcher.Job, initialJobIdx int) ([]launcher.Result, error) {
	results := make([]launcher.Result, 0, len(jobs))
	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		idx := initialJobIdx + i
		fmt.Fprintf(l.out, "job %d: %s\n", idx, strings.Join(job, " "))
		results = append(results, launcher.Result{JobIdx: idx, Overrides: job})
	}
	return results, nil
}
