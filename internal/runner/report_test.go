// SPDX-License-Identifier: AGPL-3.0-or-later
package runner

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/castrun/internal/testutil/golden"
)

func sampleReport() *RunReport {
	r := NewReport("Bob", 6, 1)
	r.Record(Success("Power Word: Fortitude"))
	r.Record(Skipped("Divine Spirit", ReasonNotReady))
	r.Record(Failed("Shadow Protection", ReasonCastFailed, "execution error: out of range"))
	r.Record(Success("Power Word: Fortitude"))
	r.Record(Skipped("Fear Ward", ReasonCannotCast))
	return r
}

func TestReport_RecordKeepsOrderAndDuplicates(t *testing.T) {
	r := sampleReport()
	assert.Equal(t, []string{"Power Word: Fortitude", "Power Word: Fortitude"}, r.Successes)
	assert.Equal(t, []Attempt{
		{Action: "Divine Spirit", Reason: ReasonNotReady},
		{Action: "Fear Ward", Reason: ReasonCannotCast},
	}, r.Skipped)
	assert.Equal(t, []Attempt{
		{Action: "Shadow Protection", Reason: ReasonCastFailed, Note: "execution error: out of range"},
	}, r.Failed)
	assert.Equal(t, 5, r.Processed())
	assert.True(t, r.HasFailures())
	assert.Equal(t, "2 success | 2 skipped | 1 failed", r.Summary())
}

func TestReport_Render(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().Render(&buf))

	golden.Check(t, golden.TestdataDir(t), "report", buf.String())
}

func TestReport_WriteJSON(t *testing.T) {
	r := NewReport("Bob", 1, 0)
	_, err := uuid.Parse(r.RunID)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.WriteJSON(&buf))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Bob", decoded["target"])
	// Empty buckets encode as lists, not null.
	assert.Equal(t, []any{}, decoded["successes"])
	assert.Equal(t, []any{}, decoded["skipped"])
	assert.Equal(t, []any{}, decoded["failed"])
}
