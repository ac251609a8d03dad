package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bodiam/rstbench/internal/discovery"
)

func newToolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Show which converters are installed",
		Long: `Probe the environment for every known converter and list the result
without running any benchmarks.

Missing tools are shown with the command that installs them. The exit code
is always 0; missing converters are informational here.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Detecting tools...") //nolint:errcheck

			detector := discovery.NewDetector(cfg.ProjectRoot(), cfg.VendorDir())
			statuses := detector.DetectAll(cmd.Context(), cfg.Tools())

			reporter := newConsoleReporter(out, cfg)
			reporter.printDetection(statuses)
			return nil
		},
	}
}
