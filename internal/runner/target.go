// SPDX-License-Identifier: AGPL-3.0-or-later
package runner

import (
	"context"
	"strings"
)

// acquire selects name, lets the selection settle, then reads it back.
// The error is non-nil only when ctx ends during the settle delay.
func (r *Runner) acquire(ctx context.Context, name string) (bool, error) {
	r.host.SelectByName(name)
	if err := r.clock.Sleep(ctx, r.timings.TargetSettle); err != nil {
		return false, err
	}
	return r.verify(name), nil
}

// verify checks the current selection without issuing a new one.
func (r *Runner) verify(name string) bool {
	return sameEntity(r.host.CurrentSelectionName(), name)
}

func sameEntity(selected, want string) bool {
	return selected != "" && strings.EqualFold(selected, want)
}
