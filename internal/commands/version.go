package commands

import (
	"fmt"

	"github.com/urfave/cli"
)

// VersionCommand registers the version cli command.
var VersionCommand = cli.Command{
	Name:   "version",
	Usage:  "Shows the version",
	Action: versionAction,
}

func versionAction(ctx *cli.Context) error {
	fmt.Println(Version)

	return nil
}
