package fs

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	assert.Equal(t, "da39a3ee5e6b4b0d3255bfef95601890afd80709", Checksum([]byte{}))
	assert.Equal(t, Checksum([]byte("hello")), Checksum([]byte("hello")))
	assert.NotEqual(t, Checksum([]byte("hello")), Checksum([]byte("world")))
}

func TestHash(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		assert.Equal(t, "", Hash("testdata/missing.bin"))
	})

	t.Run("SmallFile", func(t *testing.T) {
		fileName := filepath.Join(t.TempDir(), "small.bin")

		require.NoError(t, os.WriteFile(fileName, []byte("small file content"), 0o644))

		assert.Equal(t, Checksum([]byte("small file content")), Hash(fileName))
	})

	t.Run("LargeFile", func(t *testing.T) {
		fileName := filepath.Join(t.TempDir(), "large.bin")

		require.NoError(t, os.WriteFile(fileName, bytes.Repeat([]byte("x"), hashSize*4), 0o644))

		result := Hash(fileName)

		assert.Len(t, result, 40)
		assert.Equal(t, result, Hash(fileName))
	})
}
