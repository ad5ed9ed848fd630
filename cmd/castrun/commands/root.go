// SPDX-License-Identifier: AGPL-3.0-or-later

/*
castrun - performs an ordered list of actions on one target, once, and reports
which succeeded, which were skipped and which failed.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd constructs the castrun root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("CASTRUN_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "castrun",
		Short:         "castrun - one-shot action runner",
		Long:          "castrun attempts each enabled action of a settings list on a target exactly once and reports a categorized outcome.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().String("settings", "", "settings file holding the action list (env CASTRUN_SETTINGS)")
	cmd.PersistentFlags().String("log-level", "", "debug, info, warn or error (env CASTRUN_LOG_LEVEL)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of castrun",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "castrun version %s\n", version)
		},
	})

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newValidateCmd())

	return cmd
}
