// SPDX-License-Identifier: AGPL-3.0-or-later
package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadiness_ZeroValueIsUnknown(t *testing.T) {
	var r Readiness
	assert.Equal(t, Unknown, r)
	assert.Equal(t, "unknown", r.String())
}

func TestReadinessOf(t *testing.T) {
	assert.Equal(t, Ready, ReadinessOf(true))
	assert.Equal(t, NotReady, ReadinessOf(false))
	assert.Equal(t, "ready", Ready.String())
	assert.Equal(t, "not_ready", NotReady.String())
}

func TestCost(t *testing.T) {
	assert.False(t, Cost{}.Known)

	c := KnownCost(35)
	assert.True(t, c.Known)
	assert.Equal(t, 35.0, c.Value)
}
