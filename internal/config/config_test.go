// SPDX-License-Identifier: AGPL-3.0-or-later
package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMap_Defaults(t *testing.T) {
	cfg, err := FromMap(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "castrun.yaml", cfg.SettingsPath)
	assert.Equal(t, "", cfg.HostScript)
	assert.Equal(t, "info", cfg.LogLevel)

	tm := cfg.Timings()
	assert.Equal(t, 200*time.Millisecond, tm.TargetSettle)
	assert.Equal(t, 25*time.Millisecond, tm.PollInterval)
	assert.Equal(t, 8*time.Second, tm.PreCastTimeout)
	assert.Equal(t, 8*time.Second, tm.PostCastTimeout)
	assert.Equal(t, 250*time.Millisecond, tm.PostCastDelay)
}

func TestFromMap_Overrides(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"CASTRUN_SETTINGS":         "/etc/castrun/buffs.yaml",
		"CASTRUN_HOST_SCRIPT":      "host.lua",
		"CASTRUN_POLL_INTERVAL":    "10ms",
		"CASTRUN_PRE_CAST_TIMEOUT": "2s",
		"CASTRUN_LOG_LEVEL":        "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "/etc/castrun/buffs.yaml", cfg.SettingsPath)
	assert.Equal(t, "host.lua", cfg.HostScript)
	assert.Equal(t, 10*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, 2*time.Second, cfg.PreCastTimeout)
	assert.Equal(t, 8*time.Second, cfg.PostCastTimeout)
}

func TestFromMap_BadDuration(t *testing.T) {
	_, err := FromMap(map[string]string{"CASTRUN_POLL_INTERVAL": "soon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestValidate_UnboundedWaits(t *testing.T) {
	_, err := FromMap(map[string]string{
		"CASTRUN_POLL_INTERVAL":     "0s",
		"CASTRUN_POST_CAST_TIMEOUT": "0s",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "poll interval")
	assert.Contains(t, err.Error(), "post-cast timeout")
}

func TestValidate_LogLevel(t *testing.T) {
	_, err := FromMap(map[string]string{"CASTRUN_LOG_LEVEL": "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"info":  slog.LevelInfo,
		"DEBUG": slog.LevelDebug,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
