// Copyright 2021 Converter Systems LLC. All rights reserved.

// uaspace-gen compiles a nodeset and writes any of: a fixture expecting the current attributes of every
// node, a binary image of the address space, and Go source returning the nodeset as a static description.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/awcullen/uaspace/addrspace"
	"github.com/awcullen/uaspace/check"
	"github.com/awcullen/uaspace/internal/config"
	"github.com/awcullen/uaspace/internal/logging"
	"github.com/awcullen/uaspace/nodeset"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

const (
	service = "uaspace-gen"
	version = "1.0.0"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet(service, pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML config file")
	fs.String("nodeset", "", "path to the nodeset XML")
	fs.String("fixture", "", "output path of the YAML fixture")
	fs.String("image", "", "output path of the binary image")
	fs.String("go", "", "output path of the Go source")
	fs.String("pkg", "", "package name of the Go source")
	fs.Bool("strict", false, "reject references to unknown types or targets")
	fs.String("log-level", "", "log level")
	fs.String("log-format", "", "log format, json or console")
	fs.String("log-output", "", "log output, stdout, stderr or a file path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	if err := cfg.ValidateGen(); err != nil {
		return err
	}

	logConfig := logging.DefaultLogConfig()
	logConfig.Level = cfg.LogLevel
	logConfig.Format = cfg.LogFormat
	logConfig.Output = cfg.LogOutput
	logger, closer := logging.NewWithConfig(service, version, logConfig)
	defer closer.Close()
	return generate(cfg, logger)
}

func generate(cfg *config.Config, logger zerolog.Logger) error {
	d, err := nodeset.LoadFile(cfg.Nodeset)
	if err != nil {
		return err
	}
	for _, w := range d.Warnings {
		logger.Warn().Str("nodeset", cfg.Nodeset).Msg(w)
	}
	opts := []addrspace.Option{addrspace.WithLogger(logger)}
	if cfg.Strict {
		opts = append(opts, addrspace.WithStrictReferences())
	}
	as, err := addrspace.Generate(d, opts...)
	if err != nil {
		return errors.Wrapf(err, "nodeset %s", cfg.Nodeset)
	}

	if cfg.Fixture != "" {
		if err := check.FromAddressSpace(as).Save(cfg.Fixture); err != nil {
			return err
		}
		logger.Info().Str("path", cfg.Fixture).Int("nodes", as.Len()).Msg("generated fixture")
	}
	if cfg.Image != "" {
		if err := writeImage(cfg.Image, as); err != nil {
			return err
		}
		logger.Info().Str("path", cfg.Image).Int("nodes", as.Len()).Msg("generated image")
	}
	if cfg.GoFile != "" {
		code, err := generateGo(d, cfg.Package, cfg.Nodeset)
		if err != nil {
			return err
		}
		if err := writeFormatted(cfg.GoFile, code); err != nil {
			return err
		}
		logger.Info().Str("path", cfg.GoFile).Str("pkg", cfg.Package).Msg("generated go source")
	}
	return nil
}

// writeImage encodes the image in memory first so a failed encoding leaves no partial file.
func writeImage(path string, as *addrspace.AddressSpace) error {
	b := &bytes.Buffer{}
	if err := as.WriteImage(b); err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(path, b.Bytes(), 0644), "error writing image")
}
