package config

import (
	"github.com/zclconf/go-cty/cty"
)

// Model is the unified, format-agnostic representation of the entire
// application configuration.
type Model struct {
	Sweep    *Sweep
	Launcher *LauncherSettings
}

// Sweep holds the user's declared sweep: the explicit combinations to run,
// the optional seed axis, and the parameter path the seed is injected under.
type Sweep struct {
	Combinations []Combination
	Seeds        *SeedSpec
	SeedKey      string
}

// Combination is one explicit set of parameter overrides. Param order is the
// source order of the keys and defines the override order within a job.
type Combination struct {
	Params []Param
}

// Param is a single parameter-path/value pair. Keys are dot-separated paths
// such as "sparsify.mass_threshold". Values are restricted to scalars
// (bool, number, string) or null; the override formatter rejects anything
// else at job-build time.
type Param struct {
	Key   string
	Value cty.Value
}

// SeedSpec describes the seed axis of a sweep. Exactly one of the two forms
// is populated: explicit Values, or the Count shorthand meaning seeds
// 0..Count-1. A nil *SeedSpec means no seed expansion at all.
type SeedSpec struct {
	Values     []int
	Count      int
	Enumerated bool // true when Values is the populated form
}

// LauncherSettings selects and parameterizes the launcher backend.
type LauncherSettings struct {
	// Backend names a registered launcher factory, e.g. "local" or "print".
	Backend string
	// Command is the argv prefix each job's override tokens are appended to.
	// Only meaningful for backends that spawn processes.
	Command []string
	// Workers bounds backend concurrency. Zero means the backend default.
	Workers int
}

// DefaultSeedKey is the parameter path used for the seed override when the
// configuration does not name one.
const DefaultSeedKey = "seed"
