// Package testutil provides shared helpers for integration tests: a
// thread-safe log buffer and a harness that runs the full app against
// temporary sweep files.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/sweepgo/internal/app"
	"github.com/vk/sweepgo/internal/hcl"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	// Output is everything the app wrote: logs and any launcher output.
	Output string
	Err    error
	App    *app.App
}

// RunSweepTest provides a standardized harness for integration tests. It
// writes the given sweep files into a temporary directory, builds the app
// over that directory, and runs the full sweep. The optional mutate hook
// adjusts the app config before construction (backend selection, CLI-style
// seed overrides, trailing override tokens).
func RunSweepTest(t *testing.T, files map[string]string, mutate func(*app.Config)) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	appConfig := &app.Config{
		SweepPath: tmpDir,
		LogLevel:  "debug",
		LogFormat: "text",
	}
	if mutate != nil {
		mutate(appConfig)
	}

	out := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(out, appConfig, hcl.NewLoader())
	}()

	if panicErr != nil {
		return &HarnessResult{
			Output: out.String(),
			Err:    fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	runErr := testApp.Run(context.Background())

	if os.Getenv("SWEEPGO_TEST_LOGS") == "true" {
		t.Logf("--- Full Output for %s ---\n%s", t.Name(), out.String())
	}

	return &HarnessResult{
		Output: out.String(),
		Err:    runErr,
		App:    testApp,
	}
}
