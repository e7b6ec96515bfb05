package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "file.txt")

	assert.False(t, FileExists(fileName))
	assert.False(t, FileExists(""))

	require.NoError(t, os.WriteFile(fileName, []byte("data"), 0o644))

	assert.True(t, FileExists(fileName))
	assert.False(t, FileExists(filepath.Dir(fileName)))
}

func TestPathExists(t *testing.T) {
	dir := t.TempDir()

	assert.True(t, PathExists(dir))
	assert.False(t, PathExists(filepath.Join(dir, "missing")))
	assert.False(t, PathExists(""))
}

func TestMkdirAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, MkdirAll(dir))

	assert.True(t, PathExists(dir))
}
