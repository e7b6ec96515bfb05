package commands

import (
	"os"

	"github.com/urfave/cli"

	"github.com/faceset/faceset/internal/config"
	"github.com/faceset/faceset/internal/entity"
)

// ResetCommand registers the reset cli command.
var ResetCommand = cli.Command{
	Name:   "reset",
	Usage:  "Removes all saved crops and clears the crop index",
	Action: resetAction,
}

func resetAction(ctx *cli.Context) error {
	conf := config.NewConfig(ctx)

	if err := conf.Init(); err != nil {
		return err
	}

	if err := conf.InitDb(); err != nil {
		return err
	}

	defer conf.Shutdown()

	if err := entity.DeleteCropFiles(); err != nil {
		log.Errorf("reset: %s (crop files)", err)
	}

	if err := entity.DeleteSessions(); err != nil {
		log.Errorf("reset: %s (sessions)", err)
	}

	if path := conf.OutputPath(); path != "" {
		if err := os.RemoveAll(path); err != nil {
			log.Errorf("reset: %s (output path)", err)
		}
	}

	log.Infof("reset: removed saved crops and index entries")

	return nil
}
