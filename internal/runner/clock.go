// SPDX-License-Identifier: AGPL-3.0-or-later
package runner

import (
	"context"
	"time"
)

// Timings bounds every wait a run performs.
type Timings struct {
	TargetSettle    time.Duration
	PollInterval    time.Duration
	PreCastTimeout  time.Duration
	PostCastTimeout time.Duration
	PostCastDelay   time.Duration
}

// DefaultTimings returns the stock wait bounds.
func DefaultTimings() Timings {
	return Timings{
		TargetSettle:    200 * time.Millisecond,
		PollInterval:    25 * time.Millisecond,
		PreCastTimeout:  8 * time.Second,
		PostCastTimeout: 8 * time.Second,
		PostCastDelay:   250 * time.Millisecond,
	}
}

// Clock is the runner's view of time.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in the latter case.
	Sleep(ctx context.Context, d time.Duration) error
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
