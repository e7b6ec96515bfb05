package config

import (
	"github.com/urfave/cli"
)

// GlobalFlags describes the global command-line parameters.
var GlobalFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "debug",
		Usage: "enable debug log output",
	},
	cli.StringFlag{
		Name:  "settings, s",
		Usage: "load settings from `FILENAME`",
	},
	cli.StringFlag{
		Name:  "source",
		Usage: "frame source `PATH` (directory with still images)",
	},
	cli.StringFlag{
		Name:  "out, o",
		Usage: "crop output `PATH`",
	},
	cli.StringFlag{
		Name:  "database-dsn",
		Usage: "sqlite database `DSN`",
	},
	cli.IntFlag{
		Name:  "count, n",
		Usage: "`NUMBER` of face crops to collect",
	},
	cli.IntFlag{
		Name:  "crop-size",
		Usage: "crop output size in `PIXELS`",
	},
	cli.BoolFlag{
		Name:  "strict-scale",
		Usage: "skip frames instead of keeping unscaled crops",
	},
	cli.StringFlag{
		Name:  "detector-url",
		Usage: "face detection service `URL`",
	},
	cli.StringFlag{
		Name:  "http-host",
		Usage: "web server `HOST`",
	},
	cli.IntFlag{
		Name:  "http-port",
		Usage: "web server `PORT`",
	},
}
