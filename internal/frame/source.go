package frame

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/karrick/godirwalk"

	"github.com/faceset/faceset/internal/crop"
	"github.com/faceset/faceset/internal/detect"
	"github.com/faceset/faceset/internal/meta"
)

// Handler receives one frame with its detected areas. The frame pixels are
// only valid for the duration of the call.
type Handler func(f Frame, areas crop.Areas)

// Source delivers frames with detection results to a handler, one frame
// processed to completion before the next.
type Source interface {
	Run(ctx context.Context, h Handler) error
}

// DirSource reads still images from a directory in lexical order and runs
// a detector on each, standing in for a live camera.
type DirSource struct {
	path     string
	detector detect.Detector
}

// NewDirSource returns a source reading images from path.
func NewDirSource(path string, detector detect.Detector) *DirSource {
	return &DirSource{path: path, detector: detector}
}

// Run delivers all images found below the source path. Files that cannot
// be decoded are skipped, detection failures yield a frame without areas.
func (s *DirSource) Run(ctx context.Context, h Handler) error {
	if s.detector == nil {
		return fmt.Errorf("source: detector missing")
	}

	var sequence uint64

	err := godirwalk.Walk(s.path, &godirwalk.Options{
		Unsorted: false,
		Callback: func(fileName string, info *godirwalk.Dirent) error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if info.IsDir() || !isImage(fileName) {
				return nil
			}

			img, err := imaging.Open(fileName)

			if err != nil {
				log.Warnf("source: %s in %s", err, filepath.Base(fileName))
				return nil
			}

			f := Frame{
				Sequence:    sequence,
				Image:       img,
				Orientation: meta.Orientation(fileName),
				TakenAt:     time.Now().UTC(),
			}

			sequence++

			areas, err := s.detector.Detect(crop.Rotate(img, f.Orientation))

			if err != nil {
				log.Warnf("source: %s in %s (detect)", err, filepath.Base(fileName))
				areas = crop.Areas{}
			}

			h(f, areas)

			return nil
		},
	})

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}

	return err
}

func isImage(fileName string) bool {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".jpg", ".jpeg", ".png", ".gif":
		return true
	default:
		return false
	}
}
