// Package meta reads image file metadata.
package meta

import (
	"runtime/debug"

	exif "github.com/dsoprea/go-exif/v3"

	"github.com/faceset/faceset/internal/crop"
	"github.com/faceset/faceset/internal/event"
)

var log = event.Log

// Orientation returns the Exif orientation of an image file, or
// OrientationUnspecified if the file carries no usable Exif data.
func Orientation(fileName string) (result crop.Orientation) {
	defer func() {
		if e := recover(); e != nil {
			result = crop.OrientationUnspecified
			log.Errorf("metadata: %s in %s (exif panic)\nstack: %s", e, fileName, debug.Stack())
		}
	}()

	rawExif, err := exif.SearchFileAndExtractExif(fileName)

	if err != nil {
		// Files without Exif data are common, not an error.
		return crop.OrientationUnspecified
	}

	entries, _, err := exif.GetFlatExifData(rawExif, nil)

	if err != nil {
		log.Debugf("metadata: %s in %s", err, fileName)
		return crop.OrientationUnspecified
	}

	for _, entry := range entries {
		if entry.TagName != "Orientation" {
			continue
		}

		var value int

		switch v := entry.Value.(type) {
		case []uint16:
			if len(v) > 0 {
				value = int(v[0])
			}
		case uint16:
			value = int(v)
		case int:
			value = v
		}

		if o := crop.Orientation(value); o.Valid() {
			return o
		}
	}

	return crop.OrientationUnspecified
}
