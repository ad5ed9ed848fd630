// SPDX-License-Identifier: AGPL-3.0-or-later

// Package runner performs each enabled action of a list once on a target
// and sorts the results into success, skipped and failed buckets.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/bartekus/castrun/internal/actionlist"
	"github.com/bartekus/castrun/internal/host"
)

var (
	// ErrEmptyTarget is returned when the target name is blank.
	ErrEmptyTarget = errors.New("target name is empty")
	// ErrTargetNotFound is returned when the target cannot be selected before the first entry.
	ErrTargetNotFound = errors.New("target not found")
)

// Runner executes one run against a host. It is not safe for concurrent use;
// the host's selection, resource pool and busy indicator are shared state.
type Runner struct {
	host    host.Host
	timings Timings
	clock   Clock
	out     io.Writer
	logger  *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput sets where per-entry progress lines are printed.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.out = w }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(r *Runner) { r.clock = c }
}

// NewRunner creates a runner for h with the given wait bounds.
func NewRunner(h host.Host, timings Timings, opts ...Option) *Runner {
	r := &Runner{
		host:    h,
		timings: timings,
		clock:   realClock{},
		out:     io.Discard,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run acquires target and attempts every prepared entry in order.
// Per-entry problems end up in the report; the returned error is reserved
// for fatal conditions (blank target, target not found) and cancellation,
// in which case no report is produced.
func (r *Runner) Run(ctx context.Context, target string, list actionlist.Prepared) (*RunReport, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, ErrEmptyTarget
	}

	ok, err := r.acquire(ctx, target)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, target)
	}
	r.logger.Info("target acquired", "target", target, "entries", len(list.Entries))

	report := NewReport(target, list.Total, list.Blank)
	for _, entry := range list.Entries {
		if !entry.Enabled || strings.TrimSpace(entry.Name) == "" {
			continue
		}
		name := strings.TrimSpace(entry.Name)

		start := r.clock.Now()
		outcome, err := r.attempt(ctx, target, name)
		if err != nil {
			return nil, fmt.Errorf("run interrupted at %q: %w", name, err)
		}
		report.Record(outcome)

		r.logger.Debug("attempt finished",
			slog.String("action", name),
			slog.String("status", string(outcome.Status)),
			slog.String("reason", string(outcome.Reason)),
			slog.Duration("elapsed", r.clock.Now().Sub(start)))
		r.printOutcome(outcome)
	}
	return report, nil
}

func (r *Runner) printOutcome(o Outcome) {
	switch o.Status {
	case StatusSuccess:
		_, _ = fmt.Fprintf(r.out, "PASS: %s\n", o.Action)
	case StatusSkipped:
		_, _ = fmt.Fprintf(r.out, "SKIP: %s (%s)\n", o.Action, o.Reason)
	default:
		_, _ = fmt.Fprintf(r.out, "FAIL: %s (%s)\n", o.Action, o.Reason)
		if o.Note != "" {
			_, _ = fmt.Fprintln(r.out, o.Note)
		}
	}
}
