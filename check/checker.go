// Copyright 2021 Converter Systems LLC. All rights reserved.

// Package check compares an address space against a fixture of expected node attributes.
//
// The five suites (BrowseName, Value, Reference, Description, DisplayName) each walk the fixture
// in order. A mismatch is recorded and the suite carries on with the next assertion; only the
// aggregate result tells whether the address space passed.
package check

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/awcullen/uaspace/addrspace"
	"github.com/gammazero/workerpool"
	"github.com/rs/zerolog"
)

// Checker runs the suites.
type Checker struct {
	suites  []Suite
	workers int
	logger  zerolog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithSuites selects the suites to run. They are reported in the order given.
func WithSuites(suites ...Suite) Option {
	return func(c *Checker) {
		c.suites = append([]Suite{}, suites...)
	}
}

// WithWorkers sets the number of suites that run at the same time.
func WithWorkers(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

// NewChecker returns a Checker running all suites.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		suites:  AllSuites,
		workers: len(AllSuites),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run checks the address space against the fixture. The suites share the address space,
// which they only read, and run on a worker pool.
func (c *Checker) Run(ctx context.Context, as *addrspace.AddressSpace, f *Fixture) *Report {
	start := time.Now()
	results := make([]*SuiteResult, len(c.suites))
	wp := workerpool.New(c.workers)
	for i, s := range c.suites {
		i, s := i, s
		wp.Submit(func() {
			results[i] = runSuite(ctx, s, as, f)
			c.logger.Debug().
				Str("suite", s.String()).
				Int("checked", results[i].Checked).
				Int("mismatches", len(results[i].Mismatches)).
				Msg("suite done")
		})
	}
	wp.StopWait()

	report := &Report{Suites: make([]SuiteResult, len(results))}
	for i, r := range results {
		report.Suites[i] = *r
	}
	event := c.logger.Info()
	if !report.OK() {
		event = c.logger.Warn()
	}
	event.
		Int("nodes", len(f.Nodes)).
		Int("mismatches", len(report.Failures())).
		Dur("elapsed", time.Since(start)).
		Bool("ok", report.OK()).
		Msg("check done")
	return report
}

// Report holds the results of the suites in report order.
type Report struct {
	Suites []SuiteResult
}

// OK returns true if every suite passed. It is the conjunction of the suite results.
func (r *Report) OK() bool {
	for i := range r.Suites {
		if !r.Suites[i].OK() {
			return false
		}
	}
	return true
}

// Failures returns the mismatches of all suites.
func (r *Report) Failures() []Mismatch {
	failures := []Mismatch{}
	for _, s := range r.Suites {
		failures = append(failures, s.Mismatches...)
	}
	return failures
}

// WriteTo prints the diagnostics of every suite and a summary line.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	b := &strings.Builder{}
	for _, s := range r.Suites {
		for _, line := range s.Lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	for _, s := range r.Suites {
		status := "ok"
		switch {
		case s.Err != nil:
			status = "interrupted"
		case len(s.Mismatches) > 0:
			status = fmt.Sprintf("FAILED (%d mismatches)", len(s.Mismatches))
		}
		fmt.Fprintf(b, "%-12s %4d checked  %s\n", s.Suite, s.Checked, status)
	}
	if r.OK() {
		b.WriteString("PASS\n")
	} else {
		b.WriteString("FAIL\n")
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
