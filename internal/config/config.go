// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config resolves the settings of a single castrun invocation.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/bartekus/castrun/internal/runner"
)

// EnvPrefix is prepended to every environment variable castrun reads.
const EnvPrefix = "CASTRUN_"

// Config holds everything a run needs besides the target name.
type Config struct {
	SettingsPath string `env:"SETTINGS" envDefault:"castrun.yaml"`
	HostScript   string `env:"HOST_SCRIPT"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`

	TargetSettle    time.Duration `env:"TARGET_SETTLE" envDefault:"200ms"`
	PollInterval    time.Duration `env:"POLL_INTERVAL" envDefault:"25ms"`
	PreCastTimeout  time.Duration `env:"PRE_CAST_TIMEOUT" envDefault:"8s"`
	PostCastTimeout time.Duration `env:"POST_CAST_TIMEOUT" envDefault:"8s"`
	PostCastDelay   time.Duration `env:"POST_CAST_DELAY" envDefault:"250ms"`
}

// FromEnv loads configuration from the process environment.
func FromEnv() (Config, error) {
	return parse(env.Options{Prefix: EnvPrefix})
}

// FromMap loads configuration from the given variables instead of the
// process environment. Keys carry the prefix.
func FromMap(vars map[string]string) (Config, error) {
	return parse(env.Options{Prefix: EnvPrefix, Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every wait is bounded.
func (c Config) Validate() error {
	var errs []error
	if c.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("poll interval must be positive, got %s", c.PollInterval))
	}
	if c.PreCastTimeout <= 0 {
		errs = append(errs, fmt.Errorf("pre-cast timeout must be positive, got %s", c.PreCastTimeout))
	}
	if c.PostCastTimeout <= 0 {
		errs = append(errs, fmt.Errorf("post-cast timeout must be positive, got %s", c.PostCastTimeout))
	}
	if c.TargetSettle < 0 {
		errs = append(errs, fmt.Errorf("target settle must not be negative, got %s", c.TargetSettle))
	}
	if c.PostCastDelay < 0 {
		errs = append(errs, fmt.Errorf("post-cast delay must not be negative, got %s", c.PostCastDelay))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Timings returns the wait bounds handed to the runner.
func (c Config) Timings() runner.Timings {
	return runner.Timings{
		TargetSettle:    c.TargetSettle,
		PollInterval:    c.PollInterval,
		PreCastTimeout:  c.PreCastTimeout,
		PostCastTimeout: c.PostCastTimeout,
		PostCastDelay:   c.PostCastDelay,
	}
}

// ParseLevel maps a level name to a slog level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", s)
	}
}
