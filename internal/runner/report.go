// SPDX-License-Identifier: AGPL-3.0-or-later
package runner

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// NewReport starts an empty report for target.
func NewReport(target string, total, blank int) *RunReport {
	return &RunReport{
		RunID:     uuid.NewString(),
		Target:    target,
		Total:     total,
		Blank:     blank,
		Successes: []string{},
		Skipped:   []Attempt{},
		Failed:    []Attempt{},
	}
}

// Record appends o to its bucket. Repeated action names are kept as
// separate attempts.
func (r *RunReport) Record(o Outcome) {
	switch o.Status {
	case StatusSuccess:
		r.Successes = append(r.Successes, o.Action)
	case StatusSkipped:
		r.Skipped = append(r.Skipped, Attempt{Action: o.Action, Reason: o.Reason, Note: o.Note})
	default:
		r.Failed = append(r.Failed, Attempt{Action: o.Action, Reason: o.Reason, Note: o.Note})
	}
}

// Processed is the number of outcomes recorded.
func (r *RunReport) Processed() int {
	return len(r.Successes) + len(r.Skipped) + len(r.Failed)
}

// HasFailures reports whether any attempt failed.
func (r *RunReport) HasFailures() bool {
	return len(r.Failed) > 0
}

// Summary renders the one-line bucket counts.
func (r *RunReport) Summary() string {
	return fmt.Sprintf("%d success | %d skipped | %d failed", len(r.Successes), len(r.Skipped), len(r.Failed))
}

// Render prints the categorized report followed by the summary line.
func (r *RunReport) Render(w io.Writer) error {
	p := &errWriter{w: w}
	p.printf("Target: %s\n", r.Target)
	p.printf("Entries: %d (%d ignored with blank name)\n", r.Total, r.Blank)
	if len(r.Successes) > 0 {
		p.printf("Success:\n")
		for _, name := range r.Successes {
			p.printf("  - %s\n", name)
		}
	}
	printAttempts(p, "Skipped", r.Skipped)
	printAttempts(p, "Failed", r.Failed)
	p.printf("%s\n", r.Summary())
	return p.err
}

func printAttempts(p *errWriter, title string, attempts []Attempt) {
	if len(attempts) == 0 {
		return
	}
	p.printf("%s:\n", title)
	for _, a := range attempts {
		p.printf("  - %s (%s)\n", a.Action, a.Reason)
	}
}

// WriteJSON encodes the report as indented JSON.
func (r *RunReport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (p *errWriter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
