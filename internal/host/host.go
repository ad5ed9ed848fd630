// SPDX-License-Identifier: AGPL-3.0-or-later

// Package host defines the capabilities castrun needs from the environment
// it acts in: target selection, the actor's busy indicator, and per-action
// readiness, cost and issuance.
package host

// Readiness is the host's answer to "can this action be used right now".
// Unknown means the host could not evaluate it; callers must pick their
// own resolution policy instead of treating it as a bool.
type Readiness int

const (
	Unknown Readiness = iota
	Ready
	NotReady
)

func (r Readiness) String() string {
	switch r {
	case Ready:
		return "ready"
	case NotReady:
		return "not_ready"
	default:
		return "unknown"
	}
}

// ReadinessOf converts a definite boolean answer.
func ReadinessOf(ready bool) Readiness {
	if ready {
		return Ready
	}
	return NotReady
}

// Cost is an action's resource cost. Known is false when the host has no
// cost metadata for the action.
type Cost struct {
	Value float64
	Known bool
}

// KnownCost returns a Cost with a definite value.
func KnownCost(v float64) Cost {
	return Cost{Value: v, Known: true}
}

// Host is the capability interface consumed by the runner. Implementations
// are driven from a single goroutine and need no locking of their own.
type Host interface {
	// SelectByName issues a selection for the named entity.
	SelectByName(name string)

	// CurrentSelectionName returns the selected entity's name, or "" when
	// nothing is selected.
	CurrentSelectionName() string

	// ActorIsBusy reports whether the actor is mid-execution.
	ActorIsBusy() bool

	AbilityReadiness(action string) Readiness
	ActionCost(action string) Cost
	ActorResourcePool() float64
	ActorKnowsAction(action string) bool

	// IssueAction performs the action on the current selection.
	IssueAction(action string) error
}
