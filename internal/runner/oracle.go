// SPDX-License-Identifier: AGPL-3.0-or-later
package runner

import (
	"github.com/bartekus/castrun/internal/host"
)

// abilityReady resolves the host's readiness answer. Unknown counts as not
// ready: nothing has been mutated yet, so refusing is always safe.
func (r *Runner) abilityReady(action string) bool {
	switch r.host.AbilityReadiness(action) {
	case host.Ready:
		return true
	case host.NotReady, host.Unknown:
		return false
	}
	return false
}

// castable reports whether the actor knows the action and can pay for it.
// A missing cost passes; only a known cost above the pool blocks.
func (r *Runner) castable(action string) (bool, string) {
	if !r.host.ActorKnowsAction(action) {
		return false, "not known to actor"
	}
	cost := r.host.ActionCost(action)
	if !cost.Known {
		return true, ""
	}
	if pool := r.host.ActorResourcePool(); cost.Value > pool {
		return false, "insufficient resource"
	}
	return true, ""
}
