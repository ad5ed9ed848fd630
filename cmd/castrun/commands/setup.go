// SPDX-License-Identifier: AGPL-3.0-or-later
package commands

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bartekus/castrun/cmd/castrun/internal/clierr"
	"github.com/bartekus/castrun/internal/actionlist"
	"github.com/bartekus/castrun/internal/config"
	"github.com/bartekus/castrun/internal/runner"
)

// resolveConfig reads the environment, then lets explicitly set flags win.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, clierr.Wrap(clierr.ExitUsage, "invalid configuration", err)
	}

	overrides := map[string]*string{
		"settings":    &cfg.SettingsPath,
		"host-script": &cfg.HostScript,
		"log-level":   &cfg.LogLevel,
	}
	for name, dst := range overrides {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		*dst = f.Value.String()
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, clierr.Wrap(clierr.ExitUsage, "invalid configuration", err)
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg config.Config) *slog.Logger {
	level, _ := config.ParseLevel(cfg.LogLevel) // validated by resolveConfig
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// loadActions loads the raw list; fatal conditions come back as exit errors.
func loadActions(cfg config.Config) (actionlist.List, error) {
	list, err := actionlist.Load(cfg.SettingsPath)
	if err != nil {
		return nil, fatal(err)
	}
	return list, nil
}

// prepareActions loads and filters the list down to what a run attempts.
func prepareActions(cfg config.Config) (actionlist.Prepared, error) {
	list, err := loadActions(cfg)
	if err != nil {
		return actionlist.Prepared{}, err
	}
	p, err := actionlist.Prepare(list)
	if err != nil {
		return actionlist.Prepared{}, fatal(err)
	}
	return p, nil
}

// fatal maps the run-halting error classes onto distinct exit codes.
func fatal(err error) error {
	code := clierr.ExitGeneric
	switch {
	case errors.Is(err, runner.ErrEmptyTarget):
		code = clierr.ExitUsage
	case errors.Is(err, actionlist.ErrUnreadable):
		code = clierr.ExitSettingsUnreadable
	case errors.Is(err, actionlist.ErrInvalid):
		code = clierr.ExitSettingsInvalid
	case errors.Is(err, actionlist.ErrEmpty):
		code = clierr.ExitNothingToDo
	case errors.Is(err, actionlist.ErrNoneEnabled):
		code = clierr.ExitNothingEnabled
	case errors.Is(err, runner.ErrTargetNotFound):
		code = clierr.ExitTargetNotFound
	}
	return clierr.Wrap(code, "aborted", err)
}
