package sweep_flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/sweepgo/internal/app"
	"github.com/vk/sweepgo/internal/config"
	"github.com/vk/sweepgo/internal/testutil"
)

func TestExplicitCombinationsWithSeeds(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"sweep.hcl": `
sweep {
  seeds = [42, 43]
  combinations = [
    { sampling = "independent" },
    { sampling = "ot", "sparsify.mass_threshold" = 0.5 },
  ]
}
`,
	}

	result := testutil.RunSweepTest(t, files, nil)
	require.NoError(t, result.Err)

	// 2 combinations x 2 seeds = 4 jobs, combination-major, seed-minor.
	assert.Contains(t, result.Output, "job 0: sampling=independent seed=42")
	assert.Contains(t, result.Output, "job 1: sampling=independent seed=43")
	assert.Contains(t, result.Output, "job 2: sampling=ot sparsify.mass_threshold=0.5 seed=42")
	assert.Contains(t, result.Output, "job 3: sampling=ot sparsify.mass_threshold=0.5 seed=43")
	assert.NotContains(t, result.Output, "job 4:")
}

func TestNoSeedAxisRunsOneJobPerCombination(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"sweep.hcl": `
sweep {
  combinations = [
    { mode = "fast" },
    { mode = "slow", retries = 3 },
  ]
}
`,
	}

	result := testutil.RunSweepTest(t, files, nil)
	require.NoError(t, result.Err)

	assert.Contains(t, result.Output, "job 0: mode=fast")
	assert.Contains(t, result.Output, "job 1: mode=slow retries=3")
	assert.NotContains(t, result.Output, "seed=")
}

func TestTrailingOverridesAppendedToEveryJob(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"sweep.hcl": `
sweep {
  combinations = [
    { a = 1 },
    { a = 2 },
  ]
}
`,
	}

	result := testutil.RunSweepTest(t, files, func(cfg *app.Config) {
		cfg.Overrides = []string{"trainer.epochs=10", "log=false"}
	})
	require.NoError(t, result.Err)

	assert.Contains(t, result.Output, "job 0: a=1 trainer.epochs=10 log=false")
	assert.Contains(t, result.Output, "job 1: a=2 trainer.epochs=10 log=false")
}

func TestCLISeedsOverrideSweepFile(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"sweep.hcl": `
sweep {
  seeds        = [42, 43, 44]
  combinations = [{ a = 1 }]
}
`,
	}

	result := testutil.RunSweepTest(t, files, func(cfg *app.Config) {
		cfg.Seeds = &config.SeedSpec{Values: []int{7}, Enumerated: true}
	})
	require.NoError(t, result.Err)

	assert.Contains(t, result.Output, "job 0: a=1 seed=7")
	assert.NotContains(t, result.Output, "seed=42")
}

func TestEmptySweepWarnsAndRunsNothing(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"sweep.hcl": `
sweep {
}
`,
	}

	result := testutil.RunSweepTest(t, files, nil)
	require.NoError(t, result.Err)

	assert.Contains(t, result.Output, "No combinations defined")
	assert.NotContains(t, result.Output, "job 0:")
}

func TestDryRunForcesPrinterBackend(t *testing.T) {
	t.Parallel()

	// The configured local backend would fail without a command; dry-run
	// must route around it entirely.
	files := map[string]string{
		"sweep.hcl": `
sweep {
  combinations = [{ a = 1 }]
}

launcher {
  backend = "local"
}
`,
	}

	result := testutil.RunSweepTest(t, files, func(cfg *app.Config) {
		cfg.DryRun = true
	})
	require.NoError(t, result.Err)
	assert.Contains(t, result.Output, "job 0: a=1")
}

func TestUnknownBackendFails(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"sweep.hcl": `
sweep {
  combinations = [{ a = 1 }]
}

launcher {
  backend = "slurm"
}
`,
	}

	result := testutil.RunSweepTest(t, files, nil)
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "unknown launcher backend")
}

func TestSweepSplitAcrossFiles(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"01_first.hcl": `
sweep {
  combinations = [{ a = 1 }]
}
`,
		"02_second.hcl": `
sweep {
  seeds        = 2
  combinations = [{ b = 2 }]
}
`,
	}

	result := testutil.RunSweepTest(t, files, nil)
	require.NoError(t, result.Err)

	assert.Contains(t, result.Output, "job 0: a=1 seed=0")
	assert.Contains(t, result.Output, "job 1: a=1 seed=1")
	assert.Contains(t, result.Output, "job 2: b=2 seed=0")
	assert.Contains(t, result.Output, "job 3: b=2 seed=1")
}
