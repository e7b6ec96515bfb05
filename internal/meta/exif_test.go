package meta

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faceset/faceset/internal/crop"
)

func TestOrientation(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		assert.Equal(t, crop.OrientationUnspecified, Orientation("testdata/missing.jpg"))
	})

	t.Run("NoExifData", func(t *testing.T) {
		fileName := filepath.Join(t.TempDir(), "plain.png")

		require.NoError(t, imaging.Save(image.NewNRGBA(image.Rect(0, 0, 8, 8)), fileName))

		assert.Equal(t, crop.OrientationUnspecified, Orientation(fileName))
	})
}
