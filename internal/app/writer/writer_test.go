package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audio2text/internal/app/api"
)

func TestFileWriter_CreatesDirectoryAndWrites(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "transcripts")
	w := NewFileWriter()

	path, err := w.Write(outputDir, "episode", "some text")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outputDir, "episode.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "some text", string(data))
}

func TestFileWriter_OverwritesExisting(t *testing.T) {
	outputDir := t.TempDir()
	w := NewFileWriter()

	_, err := w.Write(outputDir, "a", "first")
	require.NoError(t, err)
	path, err := w.Write(outputDir, "a", "second")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestFileWriter_DirectoryCreationFailure(t *testing.T) {
	// A file where the output directory should be makes MkdirAll fail.
	tempDir := t.TempDir()
	blocker := filepath.Join(tempDir, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	w := NewFileWriter()
	_, err := w.Write(filepath.Join(blocker, "sub"), "a", "text")
	require.Error(t, err)
	assert.Equal(t, api.ErrIO, api.KindOf(err))
}
