// SPDX-License-Identifier: AGPL-3.0-or-later
package runner

import (
	"errors"
	"fmt"
)

// ErrExecution wraps any fault the host raised while issuing an action.
var ErrExecution = errors.New("execution error")

// issue asks the host to perform action. Host errors and panics are both
// returned as ErrExecution so they stay scoped to the current entry.
func (r *Runner) issue(action string) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: host panic: %v", ErrExecution, p)
		}
	}()
	if herr := r.host.IssueAction(action); herr != nil {
		return fmt.Errorf("%w: %w", ErrExecution, herr)
	}
	return nil
}
