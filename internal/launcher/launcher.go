// Package launcher defines the capability contract between the sweep
// expander and the backends that actually run jobs.
package launcher

import "context"

// Job is the ordered list of override tokens for one launch unit.
type Job []string

// Result describes the outcome of one launched job. The sweep expander
// treats results as opaque and returns them to its caller unchanged.
type Result struct {
	// JobIdx is the job's position in the sweep, counted from the
	// initialJobIdx passed to Launch.
	JobIdx int
	// Overrides echoes the job's override tokens.
	Overrides Job
	// Err is the job's failure, if any.
	Err error
}

// Launcher runs a full ordered job list. Implementations define their own
// failure semantics; the expander performs no retries and propagates any
// error unchanged.
type Launcher interface {
	Launch(ctx context.Context, jobs []Job, initialJobIdx int) ([]Result, error)
}
