package sweep

import (
	"context"
	"errors"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/sweepgo/internal/config"
	"github.com/vk/sweepgo/internal/ctxlog"
	"github.com/vk/sweepgo/internal/launcher"
	"github.com/vk/sweepgo/internal/override"
)

// Sweeper owns the declared combinations, the optional seed axis, and the
// launcher the expanded jobs are handed to. All fields are fixed after
// Setup; expansion itself is a pure computation.
type Sweeper struct {
	combinations []config.Combination
	seeds        *config.SeedSpec
	seedKey      string
	launcher     launcher.Launcher
}

// Option configures a Sweeper at construction time. Values supplied through
// options always win over configuration-supplied ones.
type Option func(*Sweeper)

// WithCombinations sets the combinations explicitly.
func WithCombinations(combos []config.Combination) Option {
	return func(s *Sweeper) { s.combinations = combos }
}

// WithSeeds sets the seed axis explicitly.
func WithSeeds(spec *config.SeedSpec) Option {
	return func(s *Sweeper) { s.seeds = spec }
}

// WithSeedKey sets the parameter path the seed value is injected under.
func WithSeedKey(key string) Option {
	return func(s *Sweeper) { s.seedKey = key }
}

// New creates a Sweeper. The launcher is attached later via Setup.
func New(opts ...Option) *Sweeper {
	s := &Sweeper{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Setup attaches the launcher and fills any values not supplied at
// construction from the loaded configuration model.
func (s *Sweeper) Setup(ctx context.Context, model *config.Sweep, l launcher.Launcher) {
	logger := ctxlog.FromContext(ctx)
	s.launcher = l

	if model == nil {
		return
	}
	if len(s.combinations) == 0 && len(model.Combinations) > 0 {
		s.combinations = model.Combinations
		logger.Info("Loaded combinations from config.", "count", len(s.combinations))
	}
	if s.seeds == nil && model.Seeds != nil {
		s.seeds = model.Seeds
		logger.Info("Loaded seeds from config.", "enumerated", model.Seeds.Enumerated)
	}
	if s.seedKey == "" && model.SeedKey != "" {
		s.seedKey = model.SeedKey
	}
}

// SeedKey returns the effective seed parameter path.
func (s *Sweeper) SeedKey() string {
	if s.seedKey == "" {
		return config.DefaultSeedKey
	}
	return s.seedKey
}

// ResolveSeeds resolves the seed specification to a concrete seed list.
// A nil result means no seed axis is configured. The count shorthand N
// yields 0..N-1; N=0 yields an empty (non-nil) list, meaning each
// combination expands to zero jobs. Explicit values are returned as given,
// order and duplicates preserved.
func (s *Sweeper) ResolveSeeds() []int {
	if s.seeds == nil {
		return nil
	}
	if s.seeds.Enumerated {
		seeds := make([]int, len(s.seeds.Values))
		copy(seeds, s.seeds.Values)
		return seeds
	}
	seeds := make([]int, s.seeds.Count)
	for i := range seeds {
		seeds[i] = i
	}
	return seeds
}

// BuildJobs expands the combinations into the full ordered job list in
// combination-major, seed-minor order. Each job carries the combination's
// tokens in source key order, then the seed token when seeds are
// configured, then the trailing arguments verbatim. A formatting failure
// aborts immediately; no partial job list is returned.
func (s *Sweeper) BuildJobs(ctx context.Context, trailing []string) ([]launcher.Job, error) {
	logger := ctxlog.FromContext(ctx)

	if len(s.combinations) == 0 {
		logger.Warn("No combinations defined, nothing to run.")
		return []launcher.Job{}, nil
	}

	seeds := s.ResolveSeeds()
	jobs := []launcher.Job{}

	for _, combo := range s.combinations {
		base, err := formatCombination(combo)
		if err != nil {
			return nil, err
		}

		if seeds == nil {
			job := make(launcher.Job, 0, len(base)+len(trailing))
			job = append(job, base...)
			job = append(job, trailing...)
			jobs = append(jobs, job)
			continue
		}

		for _, seed := range seeds {
			seedToken, err := override.Format(s.SeedKey(), cty.NumberIntVal(int64(seed)))
			if err != nil {
				return nil, err
			}
			job := make(launcher.Job, 0, len(base)+1+len(trailing))
			job = append(job, base...)
			job = append(job, seedToken)
			job = append(job, trailing...)
			jobs = append(jobs, job)
		}
	}

	return jobs, nil
}

// Sweep builds the job list and hands it to the launcher in a single call
// with a starting job index of 0. Launcher results and failures are
// propagated unchanged; the sweeper adds no retry or partial-failure
// handling of its own.
func (s *Sweeper) Sweep(ctx context.Context, trailing []string) ([]launcher.Result, error) {
	logger := ctxlog.FromContext(ctx)

	jobs, err := s.BuildJobs(ctx, trailing)
	if err != nil {
		return nil, err
	}
	if len(s.combinations) == 0 {
		return []launcher.Result{}, nil
	}

	if seeds := s.ResolveSeeds(); seeds != nil {
		logger.Info("Expanded sweep.",
			"combinations", len(s.combinations),
			"seeds", len(seeds),
			"jobs", len(jobs),
		)
	} else {
		logger.Info("Expanded sweep.", "jobs", len(jobs))
	}
	for i, job := range jobs {
		logger.Info("Job expanded.", "idx", i, "overrides", strings.Join(job, " "))
	}

	if s.launcher == nil {
		return nil, errors.New("sweeper has no launcher attached; Setup must run first")
	}
	return s.launcher.Launch(ctx, jobs, 0)
}

// formatCombination renders one combination's tokens in source key order.
func formatCombination(combo config.Combination) ([]string, error) {
	tokens := make([]string, 0, len(combo.Params))
	for _, p := range combo.Params {
		token, err := override.Format(p.Key, p.Value)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}
