// SPDX-License-Identifier: AGPL-3.0-or-later
package runner

import (
	"context"
	"strings"
	"time"

	"github.com/bartekus/castrun/internal/host"
)

// fakeHost implements host.Host for testing. Unset maps mean: ready,
// known, unknown cost.
type fakeHost struct {
	entities  []string
	selection string

	readiness map[string]host.Readiness
	costs     map[string]host.Cost
	unknown   map[string]bool
	pool      float64

	busy        int  // polls that still report busy
	busyForever bool // never clears
	castBusy    map[string]int
	castForever map[string]bool

	issueErr   map[string]error
	issuePanic map[string]any

	// afterIssue runs after a successful issue, e.g. to clear the selection.
	afterIssue func(h *fakeHost, action string)

	selectCalls    []string
	readinessCalls int
	issued         []string
}

func (h *fakeHost) SelectByName(name string) {
	h.selectCalls = append(h.selectCalls, name)
	h.selection = ""
	for _, e := range h.entities {
		if strings.EqualFold(e, name) {
			h.selection = e
			return
		}
	}
}

func (h *fakeHost) CurrentSelectionName() string { return h.selection }

func (h *fakeHost) ActorIsBusy() bool {
	if h.busyForever {
		return true
	}
	if h.busy > 0 {
		h.busy--
		return true
	}
	return false
}

func (h *fakeHost) AbilityReadiness(action string) host.Readiness {
	h.readinessCalls++
	if r, ok := h.readiness[action]; ok {
		return r
	}
	return host.Ready
}

func (h *fakeHost) ActionCost(action string) host.Cost { return h.costs[action] }

func (h *fakeHost) ActorResourcePool() float64 { return h.pool }

func (h *fakeHost) ActorKnowsAction(action string) bool { return !h.unknown[action] }

func (h *fakeHost) IssueAction(action string) error {
	if p, ok := h.issuePanic[action]; ok {
		panic(p)
	}
	if err, ok := h.issueErr[action]; ok {
		return err
	}
	h.issued = append(h.issued, action)
	if h.castForever[action] {
		h.busyForever = true
	}
	h.busy = h.castBusy[action]
	if h.afterIssue != nil {
		h.afterIssue(h, action)
	}
	return nil
}

// fakeClock advances only when slept on.
type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
	return nil
}

func (c *fakeClock) total() time.Duration {
	var sum time.Duration
	for _, d := range c.slept {
		sum += d
	}
	return sum
}

func newTestRunner(h host.Host, c Clock) *Runner {
	return NewRunner(h, DefaultTimings(), WithClock(c))
}
