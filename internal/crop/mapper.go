package crop

import (
	"errors"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

var (
	// ErrInvalidGeometry means the denormalized area does not intersect
	// the frame, or the intersection has zero surface.
	ErrInvalidGeometry = errors.New("crop: invalid geometry")

	// ErrInvalidScale means the target size scale factors are not
	// strictly positive. Only returned with OptionStrict.
	ErrInvalidScale = errors.New("crop: invalid scale factor")

	// ErrEncodingFailed means the output buffer could not be produced.
	ErrEncodingFailed = errors.New("crop: encoding failed")
)

// Option changes the mapping behavior.
type Option int

const (
	// OptionStrict fails the frame when the requested output size is
	// invalid, instead of keeping the unscaled crop.
	OptionStrict Option = iota + 1
)

func parseOptions(opts ...Option) (strict bool) {
	for _, o := range opts {
		if o == OptionStrict {
			strict = true
		}
	}

	return strict
}

// FromImage extracts the pixel region described by a normalized detection
// area from a raw image and stretches it to the requested output size.
//
// The area coordinates refer to the image after orientation correction.
// Coordinate math stays in floating point until the clipped rectangle is
// rasterized, so a partially visible face still yields its visible part.
// Resizing uses independent horizontal and vertical scale factors, the
// output matches the requested size exactly and does not preserve the
// aspect ratio.
func FromImage(img image.Image, o Orientation, area Area, size Size, opts ...Option) (*image.NRGBA, error) {
	if img == nil {
		return nil, ErrInvalidGeometry
	}

	oriented := Rotate(img, o)

	bounds := oriented.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())

	if w < 1 || h < 1 {
		return nil, ErrInvalidGeometry
	}

	// Denormalize against the oriented extent. Detection areas have a
	// bottom-left origin, raster rows count from the top.
	x0 := float64(area.X) * w
	y0 := (1 - float64(area.Y) - float64(area.H)) * h
	x1 := x0 + float64(area.W)*w
	y1 := y0 + float64(area.H)*h

	// Intersect with the frame bounds before any rounding.
	x0, y0 = math.Max(x0, 0), math.Max(y0, 0)
	x1, y1 = math.Min(x1, w), math.Min(y1, h)

	if x1-x0 <= 0 || y1-y0 <= 0 {
		log.Debugf("crop: area %s outside %.0fx%.0f frame", area.String(), w, h)
		return nil, ErrInvalidGeometry
	}

	rect := image.Rect(
		int(math.Floor(x0)),
		int(math.Floor(y0)),
		int(math.Ceil(x1)),
		int(math.Ceil(y1)),
	)

	result := imaging.Crop(oriented, rect.Add(bounds.Min))

	switch {
	case size.Empty():
		// No fixed output size requested, keep the extracted region.
	case size.Valid():
		result = imaging.Resize(result, size.Width, size.Height, imaging.Lanczos)
	case parseOptions(opts...):
		return nil, ErrInvalidScale
	default:
		log.Debugf("crop: invalid target size %s, keeping unscaled %dx%d crop", size.String(), rect.Dx(), rect.Dy())
	}

	if result == nil || result.Bounds().Empty() {
		return nil, ErrEncodingFailed
	}

	return result, nil
}
