package commands

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/faceset/faceset/internal/config"
	"github.com/faceset/faceset/internal/entity"
)

// StatusCommand registers the status cli command.
var StatusCommand = cli.Command{
	Name:   "status",
	Usage:  "Shows the most recent sampling sessions",
	Action: statusAction,
}

func statusAction(ctx *cli.Context) error {
	conf := config.NewConfig(ctx)

	if err := conf.Init(); err != nil {
		return err
	}

	if err := conf.InitDb(); err != nil {
		return err
	}

	defer conf.Shutdown()

	sessions, err := entity.RecentSessions(10)

	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("no sampling sessions found")
		return nil
	}

	for _, s := range sessions {
		state := "incomplete"

		if s.CompletedAt != nil {
			state = "complete"
		}

		fmt.Printf("%s  %s  %d/%d crops  %s\n", s.SessionUID, s.CreatedAt.Format("2006-01-02 15:04:05"), s.Collected, s.Target, state)
	}

	return nil
}
