package config

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
	yaml "gopkg.in/yaml.v2"
)

// Options holds the global configuration values. Flag values override the
// settings file.
type Options struct {
	Debug        bool   `yaml:"Debug"`
	SourcePath   string `yaml:"SourcePath"`
	OutputPath   string `yaml:"OutputPath"`
	DatabaseDsn  string `yaml:"DatabaseDsn"`
	TargetCount  int    `yaml:"TargetCount"`
	CropSize     int    `yaml:"CropSize"`
	StrictScale  bool   `yaml:"StrictScale"`
	DetectorUrl  string `yaml:"DetectorUrl"`
	HttpHost     string `yaml:"HttpHost"`
	HttpPort     int    `yaml:"HttpPort"`
	SettingsFile string `yaml:"-"`
}

// NewOptions creates options from the cli context, loading the settings
// file first if one was given.
func NewOptions(ctx *cli.Context) *Options {
	o := &Options{
		OutputPath:  "./crops",
		DatabaseDsn: "faceset.db",
		TargetCount: 20,
		CropSize:    224,
		HttpHost:    "127.0.0.1",
		HttpPort:    2342,
	}

	if ctx == nil {
		return o
	}

	if fileName := ctx.GlobalString("settings"); fileName != "" {
		o.SettingsFile = fileName

		if err := o.Load(fileName); err != nil {
			log.Warnf("config: %s", err)
		}
	}

	if ctx.GlobalBool("debug") {
		o.Debug = true
	}

	if v := ctx.GlobalString("source"); v != "" {
		o.SourcePath = v
	}

	if v := ctx.GlobalString("out"); v != "" {
		o.OutputPath = v
	}

	if v := ctx.GlobalString("database-dsn"); v != "" {
		o.DatabaseDsn = v
	}

	if v := ctx.GlobalInt("count"); v > 0 {
		o.TargetCount = v
	}

	if v := ctx.GlobalInt("crop-size"); v > 0 {
		o.CropSize = v
	}

	if ctx.GlobalBool("strict-scale") {
		o.StrictScale = true
	}

	if v := ctx.GlobalString("detector-url"); v != "" {
		o.DetectorUrl = v
	}

	if v := ctx.GlobalString("http-host"); v != "" {
		o.HttpHost = v
	}

	if v := ctx.GlobalInt("http-port"); v > 0 {
		o.HttpPort = v
	}

	return o
}

// Load reads options from a yaml settings file.
func (o *Options) Load(fileName string) error {
	data, err := os.ReadFile(fileName)

	if err != nil {
		return fmt.Errorf("settings file %s not readable: %s", fileName, err)
	}

	return yaml.Unmarshal(data, o)
}
