// SPDX-License-Identifier: AGPL-3.0-or-later
package runner

import (
	"context"
)

// attempt drives one action through the pipeline and returns its terminal
// outcome. Nothing is retried. The error is non-nil only when ctx ends.
func (r *Runner) attempt(ctx context.Context, target, action string) (Outcome, error) {
	if !r.verify(target) {
		r.logger.Debug("selection lost, reacquiring", "target", target, "action", action)
		ok, err := r.acquire(ctx, target)
		if err != nil {
			return Outcome{}, err
		}
		if !ok {
			return Failed(action, ReasonLostTarget, ""), nil
		}
	}

	if !r.abilityReady(action) {
		return Skipped(action, ReasonNotReady), nil
	}

	if ok, why := r.castable(action); !ok {
		r.logger.Debug("action not castable", "action", action, "why", why)
		return Skipped(action, ReasonCannotCast), nil
	}

	idle, err := r.waitIdle(ctx, r.timings.PreCastTimeout)
	if err != nil {
		return Outcome{}, err
	}
	if !idle {
		return Failed(action, ReasonStillCasting, ""), nil
	}

	if err := r.issue(action); err != nil {
		return Failed(action, ReasonCastFailed, err.Error()), nil
	}

	idle, err = r.waitIdle(ctx, r.timings.PostCastTimeout)
	if err != nil {
		return Outcome{}, err
	}
	if !idle {
		return Failed(action, ReasonCastTimeout, ""), nil
	}

	if err := r.clock.Sleep(ctx, r.timings.PostCastDelay); err != nil {
		return Outcome{}, err
	}
	return Success(action), nil
}
