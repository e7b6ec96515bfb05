package detect

import (
	"encoding/json"
	"image"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/faceset/faceset/internal/crop"
)

func TestStaticDetect(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		d := &Static{}

		areas, err := d.Detect(nil)

		assert.NoError(t, err)
		assert.Len(t, areas, 0)
	})

	t.Run("RepeatsLastResult", func(t *testing.T) {
		d := &Static{Results: []crop.Areas{
			{crop.NewArea("face", 0.1, 0.1, 0.2, 0.2)},
			{},
		}}

		first, _ := d.Detect(nil)
		second, _ := d.Detect(nil)
		third, _ := d.Detect(nil)

		assert.Len(t, first, 1)
		assert.Len(t, second, 0)
		assert.Len(t, third, 0)
	})

	t.Run("NewStatic", func(t *testing.T) {
		d := NewStatic(crop.Areas{crop.FullFrame()})

		for i := 0; i < 3; i++ {
			areas, err := d.Detect(nil)

			assert.NoError(t, err)
			assert.Len(t, areas, 1)
		}
	})
}

func TestHTTPDetector(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))

	t.Run("Detect", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "image/jpeg", r.Header.Get("Content-Type"))

			json.NewEncoder(w).Encode([]httpFace{
				{X: 0.2, Y: 0.2, W: 0.3, H: 0.3, Score: 0.95},
				{X: 0.6, Y: 0.6, W: 0.2, H: 0.2, Score: 0.4},
			})
		}))

		defer server.Close()

		d := NewHTTPDetector(server.URL)

		areas, err := d.Detect(img)

		assert.NoError(t, err)

		// The second face is below the confidence threshold.
		if assert.Len(t, areas, 1) {
			assert.Equal(t, float32(0.2), areas[0].X)
			assert.Equal(t, "face", areas[0].Name)
		}
	})

	t.Run("ServiceError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		defer server.Close()

		d := NewHTTPDetector(server.URL)

		_, err := d.Detect(img)

		assert.Error(t, err)
	})

	t.Run("BadResponse", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))

		defer server.Close()

		d := NewHTTPDetector(server.URL)

		_, err := d.Detect(img)

		assert.Error(t, err)
	})
}
