// FaceSet collects a bounded set of normalized face crops from a frame
// stream for enrollment and training.
package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/faceset/faceset/internal/commands"
	"github.com/faceset/faceset/internal/config"
	"github.com/faceset/faceset/internal/event"
)

var log = event.Log

func main() {
	app := cli.NewApp()
	app.Name = "FaceSet"
	app.Usage = "Bounded face crop sampling"
	app.Version = commands.Version
	app.Flags = config.GlobalFlags
	app.Commands = []cli.Command{
		commands.SampleCommand,
		commands.ServeCommand,
		commands.StatusCommand,
		commands.ResetCommand,
		commands.VersionCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
