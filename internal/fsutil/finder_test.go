package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "nested", "deep"), 0755))
	for _, name := range []string{
		"b.hcl",
		"a.hcl",
		"notes.txt",
		filepath.Join("nested", "c.hcl"),
		filepath.Join("nested", "deep", "d.hcl"),
	} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0644))
	}

	files, err := FindFilesByExtension(tmpDir, ".hcl")
	require.NoError(t, err)

	want := []string{
		filepath.Join(tmpDir, "a.hcl"),
		filepath.Join(tmpDir, "b.hcl"),
		filepath.Join(tmpDir, "nested", "c.hcl"),
		filepath.Join(tmpDir, "nested", "deep", "d.hcl"),
	}
	assert.Equal(t, want, files)
}

func TestFindFilesByExtension_EmptyExtension(t *testing.T) {
	t.Parallel()

	_, err := FindFilesByExtension(t.TempDir(), "")
	require.Error(t, err)
}

func TestFindFilesByExtension_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "nope"), ".hcl")
	require.Error(t, err)
}
