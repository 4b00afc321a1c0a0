// Copyright 2021 Converter Systems LLC. All rights reserved.

// uaspace-check compiles a nodeset, or reads a compiled image, and checks the resulting address space
// against a fixture of expected attributes. It exits 0 when every suite passes, 1 when one fails,
// and 2 when the inputs cannot be loaded.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

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
	service = "uaspace-check"
	version = "1.0.0"
)

const (
	exitPass = iota
	exitFail
	exitError
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet(service, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.String("config", "", "path to a YAML config file")
	fs.String("nodeset", "", "path to the nodeset XML")
	fs.String("image", "", "path to a compiled image, instead of a nodeset")
	fs.String("fixture", "", "path to the YAML fixture")
	fs.StringSlice("suites", nil, "suites to run (BrowseName, Value, Reference, Description, DisplayName)")
	fs.Bool("strict", false, "reject references to unknown types or targets")
	fs.Int("workers", 0, "number of suites run at the same time")
	fs.String("log-level", "", "log level")
	fs.String("log-format", "", "log format, json or console")
	fs.String("log-output", "", "log output, stdout, stderr or a file path")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitPass
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	cfg, err := config.Load(fs)
	if err == nil {
		err = cfg.ValidateCheck()
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	logConfig := logging.DefaultLogConfig()
	logConfig.Level = cfg.LogLevel
	logConfig.Format = cfg.LogFormat
	logConfig.Output = cfg.LogOutput
	logger, closer := logging.NewWithConfig(service, version, logConfig)
	defer closer.Close()

	as, err := load(cfg, logger)
	if err != nil {
		logging.Error(logger, err, "error loading address space")
		return exitError
	}
	f, err := check.LoadFixture(cfg.Fixture)
	if err != nil {
		logging.Error(logger, err, "error loading fixture")
		return exitError
	}
	suites, _ := cfg.CheckSuites()

	c := check.NewChecker(
		check.WithSuites(suites...),
		check.WithWorkers(cfg.Workers),
		check.WithLogger(logger),
	)
	report := c.Run(ctx, as, f)
	if _, err := report.WriteTo(stdout); err != nil {
		logging.Error(logger, err, "error writing report")
		return exitError
	}
	if !report.OK() {
		return exitFail
	}
	return exitPass
}

// load returns the address space of the configured nodeset or image.
func load(cfg *config.Config, logger zerolog.Logger) (*addrspace.AddressSpace, error) {
	if cfg.Image != "" {
		file, err := os.Open(cfg.Image)
		if err != nil {
			return nil, errors.Wrap(err, "error opening image")
		}
		defer file.Close()
		as, err := addrspace.ReadImage(file)
		if err != nil {
			return nil, errors.Wrapf(err, "image %s", cfg.Image)
		}
		logger.Info().Str("image", cfg.Image).Int("nodes", as.Len()).Msg("image loaded")
		return as, nil
	}

	d, err := nodeset.LoadFile(cfg.Nodeset)
	if err != nil {
		return nil, err
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
		return nil, errors.Wrapf(err, "nodeset %s", cfg.Nodeset)
	}
	logger.Info().Str("nodeset", cfg.Nodeset).Int("nodes", as.Len()).Msg("nodeset loaded")
	return as, nil
}
