/*
Package sink persists collected face crops.

The coordinator keeps produced crops in memory, a sink observes a session
snapshot and writes it out. The file sink encodes each crop as JPEG and
records it in the entity index when a database connection exists.
*/
package sink

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize/english"

	"github.com/faceset/faceset/internal/entity"
	"github.com/faceset/faceset/internal/event"
	"github.com/faceset/faceset/internal/sample"
	"github.com/faceset/faceset/pkg/fs"
	"github.com/faceset/faceset/pkg/sanitize"
)

var log = event.Log

// JpegQuality is the encoding quality for saved crops.
var JpegQuality = 92

// FileSink writes face crops as JPEG files into a directory.
type FileSink struct {
	path string
}

// NewFileSink returns a sink writing to path.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Path returns the output directory.
func (s *FileSink) Path() string {
	return s.path
}

// Save writes all crops of the session snapshot and returns the number of
// files written. Crops are written in sampling order, file names derive
// from the encoded content hash.
func (s *FileSink) Save(status sample.Status) (saved int, err error) {
	if len(status.Crops) == 0 {
		return 0, nil
	}

	if err := fs.MkdirAll(s.path); err != nil {
		return 0, fmt.Errorf("sink: %s", err)
	}

	var session *entity.Session

	if entity.HasDb() {
		session = entity.NewSession(status.Target)

		if err := session.Create(); err != nil {
			return 0, fmt.Errorf("sink: %s (create session)", err)
		}
	}

	for _, c := range status.Crops {
		var buf bytes.Buffer

		if err := imaging.Encode(&buf, c.Image, imaging.JPEG, imaging.JPEGQuality(JpegQuality)); err != nil {
			log.Errorf("sink: %s (encode crop %d)", err, c.Index)
			continue
		}

		hash := fs.Checksum(buf.Bytes())
		fileName := filepath.Join(s.path, fmt.Sprintf("%05d_%s.jpg", c.Index, hash))

		if err := os.WriteFile(fileName, buf.Bytes(), 0o644); err != nil {
			log.Errorf("sink: %s (write crop %d)", err, c.Index)
			continue
		}

		saved++

		log.Debugf("sink: saved %s", sanitize.Log(filepath.Base(fileName)))

		if session != nil {
			record := entity.NewCropFile(session.SessionUID, c, fileName, hash)

			if err := record.Create(); err != nil {
				log.Errorf("sink: %s (index crop %d)", err, c.Index)
			}
		}
	}

	if session != nil {
		if err := session.Complete(saved); err != nil {
			log.Errorf("sink: %s (complete session)", err)
		}
	}

	log.Infof("sink: saved %s to %s", english.Plural(saved, "face crop", "face crops"), s.path)

	return saved, nil
}

// Listen saves the coordinator's results whenever a session completes,
// until the context is canceled.
func (s *FileSink) Listen(ctx context.Context, c *sample.Coordinator) {
	sub := event.Subscribe(sample.EventCompleted)
	defer event.Unsubscribe(sub)

	for {
		select {
		case <-ctx.Done():
			return
		case <-sub.Receiver:
			if _, err := s.Save(c.Status()); err != nil {
				log.Errorf("sink: %s", err)
			}
		}
	}
}
