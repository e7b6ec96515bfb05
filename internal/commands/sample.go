package commands

import (
	"context"
	"time"

	"github.com/dustin/go-humanize/english"
	"github.com/urfave/cli"

	"github.com/faceset/faceset/internal/config"
	"github.com/faceset/faceset/internal/crop"
	"github.com/faceset/faceset/internal/detect"
	"github.com/faceset/faceset/internal/frame"
	"github.com/faceset/faceset/internal/sample"
	"github.com/faceset/faceset/internal/sink"
)

// SampleCommand registers the sample cli command.
var SampleCommand = cli.Command{
	Name:   "sample",
	Usage:  "Collects face crops from a frame source until the target count is reached",
	Action: sampleAction,
}

// sampleAction runs one bounded sampling session and saves the results.
func sampleAction(ctx *cli.Context) error {
	start := time.Now()

	conf := config.NewConfig(ctx)

	if err := conf.Init(); err != nil {
		return err
	}

	if conf.SourcePath() == "" {
		return cli.NewExitError("source path missing, use --source", 1)
	}

	if err := conf.InitDb(); err != nil {
		log.Warnf("sample: %s (crop index disabled)", err)
	}

	defer conf.Shutdown()

	cctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := frame.NewDirSource(conf.SourcePath(), newDetector(conf))
	co := sample.NewCoordinator(conf.CropSize(), conf.CropOptions()...)

	if err := co.Sample(cctx, source, conf.TargetCount()); err != nil {
		return err
	}

	status := co.Status()

	if !co.Completed() {
		log.Warnf("sample: source ended with %d of %d crops", status.Collected, status.Target)
	}

	saved, err := sink.NewFileSink(conf.OutputPath()).Save(status)

	if err != nil {
		return err
	}

	log.Infof("sample: saved %s in %s", english.Plural(saved, "face crop", "face crops"), time.Since(start))

	return nil
}

// newDetector returns the configured detector, falling back to full frame
// crops when no detection service was configured.
func newDetector(conf *config.Config) detect.Detector {
	if url := conf.DetectorUrl(); url != "" {
		return detect.NewHTTPDetector(url)
	}

	log.Infof("sample: no detection service configured, cropping full frames")

	return detect.NewStatic(crop.Areas{crop.FullFrame()})
}
