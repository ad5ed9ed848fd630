// SPDX-License-Identifier: AGPL-3.0-or-later
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bartekus/castrun/cmd/castrun/internal/clierr"
	"github.com/bartekus/castrun/internal/host/luahost"
	"github.com/bartekus/castrun/internal/runner"
)

type runOptions struct {
	json   bool
	strict bool
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run <target>",
		Short: "Attempt every enabled action on a target once",
		Long: `Acquire the named target, then attempt each enabled action of the settings
list in order. Every entry ends as success, skipped or failed; a bad entry never
stops the rest. Fatal input and settings problems exit before touching the target.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			return runTarget(cmd, target, opts)
		},
	}

	cmd.Flags().String("host-script", "", "Lua host script implementing the host functions (env CASTRUN_HOST_SCRIPT)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the run report as JSON")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit non-zero when any entry failed")
	return cmd
}

func runTarget(cmd *cobra.Command, target string, opts *runOptions) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return fatal(runner.ErrEmptyTarget)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)

	list, err := prepareActions(cfg)
	if err != nil {
		return err
	}

	if cfg.HostScript == "" {
		return clierr.New(clierr.ExitUsage, "no host script configured (--host-script or CASTRUN_HOST_SCRIPT)")
	}
	h := luahost.New(logger)
	if err := h.Load(cfg.HostScript); err != nil {
		return clierr.Wrap(clierr.ExitGeneric, "host unavailable", err)
	}

	out := cmd.OutOrStdout()
	progress := out
	if opts.json {
		progress = io.Discard
	}
	r := runner.NewRunner(h, cfg.Timings(), runner.WithOutput(progress), runner.WithLogger(logger))

	report, err := r.Run(cmd.Context(), target, list)
	if err != nil {
		return fatal(err)
	}

	if opts.json {
		if err := report.WriteJSON(out); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintf(out, "Entries: %d considered, %d ignored (blank name)\n", report.Total, report.Blank)
		_, _ = fmt.Fprintln(out, report.Summary())
	}

	if opts.strict && report.HasFailures() {
		return clierr.Newf(clierr.ExitEntriesFailed, "%d of %d entries failed", len(report.Failed), report.Processed())
	}
	return nil
}
