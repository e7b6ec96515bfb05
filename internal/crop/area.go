package crop

import (
	"fmt"
)

// Areas is a list of face detection areas.
type Areas []Area

// Area represents a normalized detection area, relative to the oriented
// image extent with origin bottom-left.
type Area struct {
	Name string  `json:"Name,omitempty"`
	X    float32 `json:"X"`
	Y    float32 `json:"Y"`
	W    float32 `json:"W"`
	H    float32 `json:"H"`
}

// NewArea returns a new detection area.
func NewArea(name string, x, y, w, h float32) Area {
	return Area{
		Name: name,
		X:    x,
		Y:    y,
		W:    w,
		H:    h,
	}
}

// FullFrame covers the entire oriented image.
func FullFrame() Area {
	return NewArea("frame", 0, 0, 1, 1)
}

// String returns the area coordinates as string.
func (a Area) String() string {
	return fmt.Sprintf("%f-%f-%f-%f", a.X, a.Y, a.W, a.H)
}

// Empty reports whether the area has no extent.
func (a Area) Empty() bool {
	return a.W <= 0 || a.H <= 0
}

// Surface returns the normalized area surface.
func (a Area) Surface() float32 {
	return a.W * a.H
}

// SurfaceRatio returns the surface ratio relative to another area.
func (a Area) SurfaceRatio(area Area) float32 {
	s, o := a.Surface(), area.Surface()

	if s <= 0 || o <= 0 {
		return 0
	}

	if s > o {
		return o / s
	}

	return s / o
}

// OverlapArea returns the overlapping surface of two areas.
func (a Area) OverlapArea(area Area) (x, y float32) {
	x = overlap(a.X, a.W, area.X, area.W)
	y = overlap(a.Y, a.H, area.Y, area.H)

	return x * y, y
}

// OverlapPercent returns the overlap of two areas in percent.
func (a Area) OverlapPercent(area Area) int {
	o, _ := area.OverlapArea(a)
	s := a.Surface()

	if s <= 0 {
		return 0
	}

	return int((o / s) * 100)
}

func overlap(x1, w1, x2, w2 float32) float32 {
	lo, hi := max32(x1, x2), min32(x1+w1, x2+w2)

	if hi <= lo {
		return 0
	}

	return hi - lo
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}

	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}

	return b
}
