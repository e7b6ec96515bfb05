// Package config provides the global configuration.
package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/faceset/faceset/internal/crop"
	"github.com/faceset/faceset/internal/entity"
	"github.com/faceset/faceset/internal/event"
)

var log = event.Log

// Config wraps the resolved options and derived values.
type Config struct {
	options *Options
}

// NewConfig creates a config from the cli context.
func NewConfig(ctx *cli.Context) *Config {
	return &Config{options: NewOptions(ctx)}
}

// Init sets up logging based on the configuration.
func (c *Config) Init() error {
	if c.Debug() {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	return nil
}

// InitDb opens the database connection and migrates the schema.
func (c *Config) InitDb() error {
	return entity.InitDb(c.DatabaseDriver(), c.DatabaseDsn())
}

// Shutdown closes open resources.
func (c *Config) Shutdown() {
	if err := entity.CloseDb(); err != nil {
		log.Errorf("config: %s (close db)", err)
	}
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return c.options.Debug
}

// SourcePath returns the frame source directory.
func (c *Config) SourcePath() string {
	return c.options.SourcePath
}

// OutputPath returns the crop output directory.
func (c *Config) OutputPath() string {
	return c.options.OutputPath
}

// DatabaseDriver returns the database driver name.
func (c *Config) DatabaseDriver() string {
	return "sqlite3"
}

// DatabaseDsn returns the database data source name.
func (c *Config) DatabaseDsn() string {
	return c.options.DatabaseDsn
}

// TargetCount returns the number of crops to collect per session.
func (c *Config) TargetCount() int {
	return c.options.TargetCount
}

// CropSize returns the fixed crop output size.
func (c *Config) CropSize() crop.Size {
	if s := c.options.CropSize; s > 0 {
		return crop.Size{Width: s, Height: s}
	}

	return crop.DefaultSize
}

// CropOptions returns the mapper options.
func (c *Config) CropOptions() []crop.Option {
	if c.options.StrictScale {
		return []crop.Option{crop.OptionStrict}
	}

	return nil
}

// DetectorUrl returns the face detection service address.
func (c *Config) DetectorUrl() string {
	return c.options.DetectorUrl
}

// HttpHost returns the web server host.
func (c *Config) HttpHost() string {
	return c.options.HttpHost
}

// HttpPort returns the web server port.
func (c *Config) HttpPort() int {
	return c.options.HttpPort
}

// HttpAddr returns the web server listen address.
func (c *Config) HttpAddr() string {
	return fmt.Sprintf("%s:%d", c.HttpHost(), c.HttpPort())
}
