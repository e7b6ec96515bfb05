/*
Package detect declares the face detector contract.

Detection itself is an external concern. Consumers only rely on the
normalized areas a detector reports, in detector output order. The first
reported area is authoritative when a single face is wanted, callers that
need a deterministic choice across detector implementations must rank areas
themselves.
*/
package detect

import (
	"image"

	"github.com/faceset/faceset/internal/crop"
	"github.com/faceset/faceset/internal/event"
)

var log = event.Log

// MinScore is the default detection confidence threshold in percent.
var MinScore = 70

// Detector finds face areas in a single image.
type Detector interface {
	Detect(img image.Image) (crop.Areas, error)
}

// Static is a scripted detector for tests and dry runs. Each call returns
// the next configured result, the last one repeats.
type Static struct {
	Results []crop.Areas
	calls   int
}

// NewStatic returns a detector that always reports the given areas.
func NewStatic(areas crop.Areas) *Static {
	return &Static{Results: []crop.Areas{areas}}
}

// Detect returns the next scripted result.
func (d *Static) Detect(img image.Image) (crop.Areas, error) {
	if len(d.Results) == 0 {
		return crop.Areas{}, nil
	}

	i := d.calls

	if i >= len(d.Results) {
		i = len(d.Results) - 1
	}

	d.calls++

	return d.Results[i], nil
}
