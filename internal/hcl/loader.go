package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/sweepgo/internal/config"
	"github.com/vk/sweepgo/internal/ctxlog"
	"github.com/vk/sweepgo/internal/fsutil"
	"github.com/vk/sweepgo/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates the entire HCL configuration loading process. Files are
// parsed in a stable order and merged into a single model: combinations
// append across files, while scalar settings are last-writer-wins.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := &config.Model{
		Sweep:    &config.Sweep{SeedKey: config.DefaultSeedKey},
		Launcher: &config.LauncherSettings{},
	}

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered sweep files.", "count", len(files))

	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse sweep file %s: %w", file, diags)
		}

		var root schema.Root
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode sweep file %s: %w", file, diags)
		}

		if root.Sweep != nil {
			if err := l.translateSweep(root.Sweep, model.Sweep); err != nil {
				return nil, fmt.Errorf("in sweep file %s: %w", file, err)
			}
		}
		if root.Launcher != nil {
			l.translateLauncher(root.Launcher, model.Launcher)
		}
	}

	logger.Debug("HCL loading complete.",
		"combinations", len(model.Sweep.Combinations),
		"seed_key", model.Sweep.SeedKey,
		"backend", model.Launcher.Backend,
	)
	return model, nil
}

// findAllHCLFiles resolves the given paths to a flat, de-duplicated list of
// .hcl files. Directories are searched recursively; missing paths are
// skipped rather than treated as errors.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	add := func(file string) {
		if _, wasSeen := seen[file]; !wasSeen {
			allFiles = append(allFiles, file)
			seen[file] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, err
			}
			for _, f := range found {
				add(f)
			}
		} else {
			add(path)
		}
	}

	return allFiles, nil
}
