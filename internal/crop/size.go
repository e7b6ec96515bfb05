package crop

import (
	"fmt"
)

// Size represents a fixed crop output resolution in pixels.
type Size struct {
	Width  int `json:"Width"`
	Height int `json:"Height"`
}

// Standard crop sizes.
var (
	SizeTile160 = Size{Width: 160, Height: 160}
	SizeTile224 = Size{Width: 224, Height: 224}
	SizeTile320 = Size{Width: 320, Height: 320}
)

// DefaultSize is used when no explicit output size was configured.
var DefaultSize = SizeTile224

// String returns the size as string.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Empty reports whether no output size was requested.
func (s Size) Empty() bool {
	return s.Width == 0 && s.Height == 0
}

// Valid reports whether both scale targets are strictly positive.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}
