// Package commands provides the cli commands.
package commands

import (
	"github.com/faceset/faceset/internal/event"
)

var log = event.Log

// Version is set at build time.
var Version = "development"
