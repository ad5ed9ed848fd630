// SPDX-License-Identifier: AGPL-3.0-or-later
package runner

import (
	"context"
	"time"
)

// waitIdle polls the busy indicator until it clears or timeout elapses.
// It returns false once the deadline has passed with the actor still busy.
// The error is non-nil only when ctx ends first.
func (r *Runner) waitIdle(ctx context.Context, timeout time.Duration) (bool, error) {
	deadline := r.clock.Now().Add(timeout)
	for {
		if !r.host.ActorIsBusy() {
			return true, nil
		}
		if !r.clock.Now().Before(deadline) {
			return false, nil
		}
		if err := r.clock.Sleep(ctx, r.timings.PollInterval); err != nil {
			return false, err
		}
	}
}
