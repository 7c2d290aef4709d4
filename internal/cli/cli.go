package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vk/sweepgo/internal/app"
	"github.com/vk/sweepgo/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("sweepgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
SweepGo - expands explicit parameter combinations into launch jobs,
without computing a Cartesian product.

Usage:
  sweepgo [options] [SWEEP_PATH] [OVERRIDE ...]

Arguments:
  SWEEP_PATH
    Path to a single .hcl sweep file or a directory containing .hcl files.
  OVERRIDE
    Additional key=value override tokens appended verbatim to every job.

Options:
`)
		flagSet.PrintDefaults()
	}

	sweepFlag := flagSet.String("sweep", "", "Path to the sweep file or directory.")
	sFlag := flagSet.String("s", "", "Path to the sweep file or directory (shorthand).")
	backendFlag := flagSet.String("backend", "", "Launcher backend to use, overriding the sweep file. Options: 'local' or 'print'.")
	commandFlag := flagSet.String("command", "", "Command each job's overrides are appended to (whitespace-separated), overriding the sweep file.")
	workersFlag := flagSet.Int("workers", 0, "Number of concurrent workers for the local backend. 0 uses the configured default.")
	seedsFlag := flagSet.String("seeds", "", "Seed axis, overriding the sweep file: a count N (seeds 0..N-1) or a comma-separated list.")
	seedKeyFlag := flagSet.String("seed-key", "", "Parameter path the seed value is injected under, overriding the sweep file.")
	dryRunFlag := flagSet.Bool("dry-run", false, "List the expanded jobs instead of launching them.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	positional := flagSet.Args()
	path := ""
	if *sweepFlag != "" {
		path = *sweepFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if len(positional) > 0 {
		path = positional[0]
		positional = positional[1:]
	}
	slog.Debug("Sweep path determined.", "path", path)

	if path == "" {
		slog.Debug("No sweep path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	seeds, err := parseSeeds(*seedsFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		SweepPath: path,
		Overrides: positional,
		Seeds:     seeds,
		SeedKey:   *seedKeyFlag,
		Backend:   *backendFlag,
		Command:   strings.Fields(*commandFlag),
		Workers:   *workersFlag,
		DryRun:    *dryRunFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

// parseSeeds interprets the --seeds flag. A bare integer is the count
// shorthand (seeds 0..N-1); anything containing a comma is an explicit
// seed list. A trailing comma makes a single-element explicit list.
func parseSeeds(raw string) (*config.SeedSpec, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if !strings.Contains(raw, ",") {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid seeds: %q is not an integer", raw)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid seeds: count must be non-negative, got %d", n)
		}
		return &config.SeedSpec{Count: n}, nil
	}

	values := []int{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid seeds: %q is not an integer", part)
		}
		values = append(values, n)
	}
	return &config.SeedSpec{Values: values, Enumerated: true}, nil
}
