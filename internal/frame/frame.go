/*
Package frame provides raw video frames and frame sources.

A Frame is a borrowed view over decoded pixels. Sources own the pixel data
for the duration of one handler call, consumers that need to keep pixels
must Clone the frame.
*/
package frame

import (
	"image"
	"time"

	"github.com/disintegration/imaging"

	"github.com/faceset/faceset/internal/crop"
	"github.com/faceset/faceset/internal/event"
)

var log = event.Log

// Frame is an immutable view over one raw video frame.
type Frame struct {
	Sequence    uint64
	Image       image.Image
	Orientation crop.Orientation
	TakenAt     time.Time
}

// Width returns the raw frame width in pixels.
func (f Frame) Width() int {
	if f.Image == nil {
		return 0
	}

	return f.Image.Bounds().Dx()
}

// Height returns the raw frame height in pixels.
func (f Frame) Height() int {
	if f.Image == nil {
		return 0
	}

	return f.Image.Bounds().Dy()
}

// OrientedExtent returns the frame extent after orientation correction,
// the coordinate space detection areas are expressed in.
func (f Frame) OrientedExtent() (int, int) {
	return crop.OrientedExtent(f.Width(), f.Height(), f.Orientation)
}

// Clone returns a deep copy that may outlive the source callback.
func (f Frame) Clone() Frame {
	result := f

	if f.Image != nil {
		result.Image = imaging.Clone(f.Image)
	}

	return result
}
