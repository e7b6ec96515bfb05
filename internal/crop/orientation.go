package crop

import (
	"image"

	"github.com/disintegration/imaging"
)

// Orientation represents one of the eight canonical source orientations,
// numbered like Exif orientation values.
type Orientation int

const (
	OrientationUnspecified Orientation = iota
	OrientationNormal
	OrientationFlipH
	OrientationRotate180
	OrientationFlipV
	OrientationTranspose
	OrientationRotate270
	OrientationTransverse
	OrientationRotate90
)

// Transposed reports whether the orientation swaps width and height.
func (o Orientation) Transposed() bool {
	return o >= OrientationTranspose && o <= OrientationRotate90
}

// Valid reports whether the value is a known orientation.
func (o Orientation) Valid() bool {
	return o >= OrientationUnspecified && o <= OrientationRotate90
}

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case OrientationNormal:
		return "normal"
	case OrientationFlipH:
		return "flip-h"
	case OrientationRotate180:
		return "rotate-180"
	case OrientationFlipV:
		return "flip-v"
	case OrientationTranspose:
		return "transpose"
	case OrientationRotate270:
		return "rotate-270"
	case OrientationTransverse:
		return "transverse"
	case OrientationRotate90:
		return "rotate-90"
	default:
		return "unspecified"
	}
}

// OrientedExtent returns the image extent after orientation correction,
// the coordinate space detection areas are expressed in.
func OrientedExtent(width, height int, o Orientation) (int, int) {
	if o.Transposed() {
		return height, width
	}

	return width, height
}

// Rotate corrects the image orientation.
func Rotate(img image.Image, o Orientation) image.Image {
	switch o {
	case OrientationFlipH:
		img = imaging.FlipH(img)
	case OrientationRotate180:
		img = imaging.Rotate180(img)
	case OrientationFlipV:
		img = imaging.FlipV(img)
	case OrientationTranspose:
		img = imaging.Transpose(img)
	case OrientationRotate270:
		img = imaging.Rotate270(img)
	case OrientationTransverse:
		img = imaging.Transverse(img)
	case OrientationRotate90:
		img = imaging.Rotate90(img)
	}

	return img
}
