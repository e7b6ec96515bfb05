package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/faceset/faceset/internal/config"
	"github.com/faceset/faceset/internal/crop"
	"github.com/faceset/faceset/internal/event"
	"github.com/faceset/faceset/internal/frame"
	"github.com/faceset/faceset/internal/sample"
	"github.com/faceset/faceset/internal/server"
	"github.com/faceset/faceset/internal/sink"
)

// ServeCommand registers the serve cli command.
var ServeCommand = cli.Command{
	Name:   "serve",
	Usage:  "Starts the web server with the sampling control api",
	Action: serveAction,
}

// serveAction starts the web server. Sessions are controlled over the api,
// each started session consumes the configured frame source, completed
// sessions are saved automatically.
func serveAction(ctx *cli.Context) error {
	conf := config.NewConfig(ctx)

	if err := conf.Init(); err != nil {
		return err
	}

	if err := conf.InitDb(); err != nil {
		log.Warnf("serve: %s (crop index disabled)", err)
	}

	defer conf.Shutdown()

	cctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	co := sample.NewCoordinator(conf.CropSize(), conf.CropOptions()...)

	fileSink := sink.NewFileSink(conf.OutputPath())
	go fileSink.Listen(cctx, co)

	if conf.SourcePath() != "" {
		go feedSessions(cctx, conf, co)
	} else {
		log.Warnf("serve: no frame source configured, sessions will not receive frames")
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Infof("serve: shutting down")
		cancel()
	}()

	return server.Start(cctx, conf, co)
}

// feedSessions runs the frame source once for every started session.
func feedSessions(ctx context.Context, conf *config.Config, co *sample.Coordinator) {
	sub := event.Subscribe(sample.EventStarted)
	defer event.Unsubscribe(sub)

	for {
		select {
		case <-ctx.Done():
			return
		case <-sub.Receiver:
			source := frame.NewDirSource(conf.SourcePath(), newDetector(conf))

			runCtx, stop := context.WithCancel(ctx)

			err := source.Run(runCtx, func(f frame.Frame, areas crop.Areas) {
				co.OnFrame(f, areas)

				if !co.Active() {
					stop()
				}
			})

			stop()

			if err != nil {
				log.Errorf("serve: %s (frame source)", err)
			}
		}
	}
}
