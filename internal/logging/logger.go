// Copyright 2021 Converter Systems LLC. All rights reserved.

// Package logging provides the structured loggers of the command-line tools.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LogConfig holds logging configuration.
type LogConfig struct {
	Level      string
	Format     string // json or console
	Output     string // stdout, stderr, or a file path
	TimeFormat string
	NoColor    bool
}

// DefaultLogConfig returns the configuration of the tools when nothing overrides it.
// Logs go to stderr; stdout carries the report.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:      "info",
		Format:     "json",
		Output:     "stderr",
		TimeFormat: time.RFC3339Nano,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewWithConfig returns a logger with the given configuration and the closer of its output.
// The closer releases an output file and does nothing for stdout and stderr. An output file
// that cannot be opened falls back to stderr.
func NewWithConfig(service, version string, config LogConfig) (zerolog.Logger, io.Closer) {
	var output io.Writer
	var closer io.Closer = nopCloser{}
	switch config.Output {
	case "stdout":
		output = os.Stdout
	case "stderr", "":
		output = os.Stderr
	default:
		file, err := os.OpenFile(config.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			output = os.Stderr
		} else {
			output = file
			closer = file
		}
	}
	return newLogger(output, service, version, config), closer
}

func newLogger(output io.Writer, service, version string, config LogConfig) zerolog.Logger {
	if config.TimeFormat != "" {
		zerolog.TimeFieldFormat = config.TimeFormat
	}
	zerolog.DurationFieldUnit = time.Millisecond

	if config.Format == "console" || config.Format == "text" {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
			NoColor:    config.NoColor,
		}
	}

	return zerolog.New(output).
		Level(ParseLevel(config.Level)).
		With().
		Timestamp().
		Str("service", service).
		Str("version", version).
		Logger()
}

// ParseLevel converts a level name to a zerolog.Level. Unknown names give InfoLevel.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Error logs an error with additional context.
func Error(logger zerolog.Logger, err error, msg string) {
	logger.Error().Err(err).Msg(msg)
}
