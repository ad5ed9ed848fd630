// SPDX-License-Identifier: AGPL-3.0-or-later
package runner

// Status is the bucket an attempt lands in.
type Status string

const (
	StatusSuccess Status = "success"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Reason explains a skipped or failed attempt. The set is closed.
type Reason string

const (
	ReasonLostTarget   Reason = "lost_target"
	ReasonNotReady     Reason = "not_ready"
	ReasonCannotCast   Reason = "cannot_cast"
	ReasonStillCasting Reason = "still_casting"
	ReasonCastFailed   Reason = "cast_failed"
	ReasonCastTimeout  Reason = "cast_timeout"
)

// Outcome is the terminal result of one attempt.
type Outcome struct {
	Action string
	Status Status
	Reason Reason // empty on success
	Note   string // optional detail, e.g. the host's execution error
}

// Success builds a successful outcome.
func Success(action string) Outcome {
	return Outcome{Action: action, Status: StatusSuccess}
}

// Skipped builds an outcome for an attempt that never reached execution.
func Skipped(action string, reason Reason) Outcome {
	return Outcome{Action: action, Status: StatusSkipped, Reason: reason}
}

// Failed builds an outcome for an attempt that could not complete.
func Failed(action string, reason Reason, note string) Outcome {
	return Outcome{Action: action, Status: StatusFailed, Reason: reason, Note: note}
}

// Attempt is a skipped or failed entry as it appears in a RunReport.
type Attempt struct {
	Action string `json:"action"`
	Reason Reason `json:"reason"`
	Note   string `json:"note,omitempty"`
}

// RunReport is the categorized result of one run. Buckets are append-only
// and keep processing order.
type RunReport struct {
	RunID     string    `json:"run_id"`
	Target    string    `json:"target"`
	Total     int       `json:"total"` // records in the source list
	Blank     int       `json:"blank"` // enabled records ignored for a blank name
	Successes []string  `json:"successes"`
	Skipped   []Attempt `json:"skipped"`
	Failed    []Attempt `json:"failed"`
}
