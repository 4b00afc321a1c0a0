// Copyright 2021 Converter Systems LLC. All rights reserved.

// Package config loads the settings of the command-line tools from defaults, an optional
// YAML file, UASPACE_ environment variables and flags, in increasing order of precedence.
package config

import (
	"strings"

	"github.com/awcullen/uaspace/check"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables.
const EnvPrefix = "UASPACE"

// Config holds the settings shared by the tools. Paths are inputs of uaspace-check and
// outputs of uaspace-gen, except Nodeset which is always read.
type Config struct {
	Nodeset   string   `mapstructure:"nodeset"`
	Fixture   string   `mapstructure:"fixture"`
	Image     string   `mapstructure:"image"`
	GoFile    string   `mapstructure:"go"`
	Package   string   `mapstructure:"pkg"`
	Suites    []string `mapstructure:"suites"`
	Strict    bool     `mapstructure:"strict"`
	Workers   int      `mapstructure:"workers"`
	LogLevel  string   `mapstructure:"log_level"`
	LogFormat string   `mapstructure:"log_format"`
	LogOutput string   `mapstructure:"log_output"`
}

// keys maps config keys to flag names.
var keys = map[string]string{
	"nodeset":    "nodeset",
	"fixture":    "fixture",
	"image":      "image",
	"go":         "go",
	"pkg":        "pkg",
	"suites":     "suites",
	"strict":     "strict",
	"workers":    "workers",
	"log_level":  "log-level",
	"log_format": "log-format",
	"log_output": "log-output",
}

// Load reads the configuration. Flags of fs named after a key override every other source;
// a "config" flag names the YAML file to read. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	bindEnvVars(v)

	if fs != nil {
		for key, name := range keys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "error binding flag %s", name)
				}
			}
		}
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.Wrap(err, "error reading config file")
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "error unmarshaling config")
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("nodeset", "")
	v.SetDefault("fixture", "")
	v.SetDefault("image", "")
	v.SetDefault("go", "")
	v.SetDefault("pkg", "nodes")
	v.SetDefault("suites", []string{})
	v.SetDefault("strict", false)
	v.SetDefault("workers", len(check.AllSuites))
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("log_output", "stderr")
}

// bindEnvVars lets the unprefixed LOG_ variables apply too.
func bindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("log_level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("log_format", EnvPrefix+"_LOG_FORMAT", "LOG_FORMAT")
	_ = v.BindEnv("log_output", EnvPrefix+"_LOG_OUTPUT", "LOG_OUTPUT")
}

// Validate checks the settings common to the tools. Exactly one of Nodeset and Image is the source
// of the address space when checking; generating always needs Nodeset.
func (c *Config) Validate() error {
	if c.Nodeset == "" && c.Image == "" {
		return errors.New("a nodeset or an image is required")
	}
	if c.Workers <= 0 {
		return errors.Errorf("workers must be positive, got %d", c.Workers)
	}
	if _, err := c.CheckSuites(); err != nil {
		return err
	}
	return nil
}

// ValidateCheck checks the settings of uaspace-check.
func (c *Config) ValidateCheck() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Nodeset != "" && c.Image != "" {
		return errors.New("nodeset and image are mutually exclusive")
	}
	if c.Fixture == "" {
		return errors.New("a fixture is required")
	}
	return nil
}

// ValidateGen checks the settings of uaspace-gen.
func (c *Config) ValidateGen() error {
	if c.Nodeset == "" {
		return errors.New("a nodeset is required")
	}
	if c.Fixture == "" && c.Image == "" && c.GoFile == "" {
		return errors.New("nothing to generate")
	}
	if c.GoFile != "" && c.Package == "" {
		return errors.New("a package name is required")
	}
	return nil
}

// CheckSuites returns the selected suites, all of them if none is named.
func (c *Config) CheckSuites() ([]check.Suite, error) {
	if len(c.Suites) == 0 {
		return check.AllSuites, nil
	}
	return check.ParseSuites(c.Suites)
}
