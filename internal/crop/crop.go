/*
Package crop maps normalized face detection areas to pixel crops.

Detection areas are fractions of the oriented image extent with a
bottom-left origin, as reported by the detector. This package turns such an
area into an exact pixel rectangle on the raw frame, clips it to the frame
bounds, and extracts a resized output buffer.
*/
package crop

import (
	"image"
	"time"

	"github.com/faceset/faceset/internal/event"
)

var log = event.Log

// Crop is a produced face crop. Immutable once created, the pixel buffer
// never aliases the source frame.
type Crop struct {
	Index   int
	Area    Area
	Image   *image.NRGBA
	TakenAt time.Time
}

// Width returns the crop width in pixels.
func (c Crop) Width() int {
	if c.Image == nil {
		return 0
	}

	return c.Image.Bounds().Dx()
}

// Height returns the crop height in pixels.
func (c Crop) Height() int {
	if c.Image == nil {
		return 0
	}

	return c.Image.Bounds().Dy()
}
