package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/sweepgo/internal/config"
	"github.com/vk/sweepgo/internal/schema"
)

// translateSweep merges one file's `sweep` block into the model.
func (l *Loader) translateSweep(s *schema.Sweep, target *config.Sweep) error {
	if s.SeedKey != "" {
		target.SeedKey = s.SeedKey
	}

	if s.Seeds != nil {
		spec, err := translateSeeds(s.Seeds)
		if err != nil {
			return err
		}
		if spec != nil {
			target.Seeds = spec
		}
	}

	if s.Combinations != nil {
		combos, err := translateCombinations(s.Combinations)
		if err != nil {
			return err
		}
		target.Combinations = append(target.Combinations, combos...)
	}

	return nil
}

// translateLauncher merges one file's `launcher` block into the model.
// Later files override earlier ones per attribute.
func (l *Loader) translateLauncher(s *schema.Launcher, target *config.LauncherSettings) {
	if s.Backend != "" {
		target.Backend = s.Backend
	}
	if len(s.Command) > 0 {
		target.Command = s.Command
	}
	if s.Workers > 0 {
		target.Workers = s.Workers
	}
}

// translateSeeds interprets the `seeds` attribute. A bare integer N is
// shorthand for seeds 0..N-1; a list gives explicit seed values.
func translateSeeds(expr hcl.Expression) (*config.SeedSpec, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid seeds attribute: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}

	ty := val.Type()
	switch {
	case ty == cty.Number:
		var n int
		if err := gocty.FromCtyValue(val, &n); err != nil {
			return nil, fmt.Errorf("seeds count must be a whole number: %w", err)
		}
		if n < 0 {
			return nil, fmt.Errorf("seeds count must be non-negative, got %d", n)
		}
		return &config.SeedSpec{Count: n}, nil

	case ty.IsTupleType() || ty.IsListType():
		values := []int{}
		it := val.ElementIterator()
		for it.Next() {
			_, ev := it.Element()
			var n int
			if err := gocty.FromCtyValue(ev, &n); err != nil {
				return nil, fmt.Errorf("seed values must be whole numbers: %w", err)
			}
			values = append(values, n)
		}
		return &config.SeedSpec{Values: values, Enumerated: true}, nil

	default:
		return nil, fmt.Errorf("seeds must be an integer or a list of integers, got %s", ty.FriendlyName())
	}
}

// translateCombinations walks the `combinations` expression at the syntax
// level. Evaluating the whole expression to a cty value would lose the
// source order of object keys (cty objects iterate sorted), and key order
// defines the override order within a job, so each object literal is
// traversed pair by pair instead.
func translateCombinations(expr hcl.Expression) ([]config.Combination, error) {
	elems, diags := hcl.ExprList(expr)
	if diags.HasErrors() {
		return nil, fmt.Errorf("combinations must be a list of objects: %w", diags)
	}

	combos := make([]config.Combination, 0, len(elems))
	for i, elem := range elems {
		pairs, diags := hcl.ExprMap(elem)
		if diags.HasErrors() {
			return nil, fmt.Errorf("combination %d must be an object of parameter overrides: %w", i, diags)
		}

		var combo config.Combination
		for _, pair := range pairs {
			keyVal, diags := pair.Key.Value(nil)
			if diags.HasErrors() {
				return nil, fmt.Errorf("combination %d has an invalid parameter key: %w", i, diags)
			}
			if keyVal.IsNull() || !keyVal.Type().Equals(cty.String) || keyVal.AsString() == "" {
				return nil, fmt.Errorf("combination %d has a non-string or empty parameter key", i)
			}

			val, diags := pair.Value.Value(nil)
			if diags.HasErrors() {
				return nil, fmt.Errorf("combination %d, parameter %q: %w", i, keyVal.AsString(), diags)
			}

			combo.Params = append(combo.Params, config.Param{
				Key:   keyVal.AsString(),
				Value: val,
			})
		}
		combos = append(combos, combo)
	}

	return combos, nil
}
