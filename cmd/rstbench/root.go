package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bodiam/rstbench/internal/config"
	"github.com/bodiam/rstbench/internal/orchestration"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rstbench",
		Short: "Benchmark RST to HTML converters against rst2html-fast",
		Long: `Rstbench measures how fast rst2html-fast converts a sample document
compared to other RST converters installed on this machine.

Every detected tool converts the same document over and over; the report
shows the average time per conversion and the slowdown relative to
rst2html-fast.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}
			return runBenchmark(cmd, cfg)
		},
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.PersistentFlags().String("config", "", "Path to a rstbench.yaml config file")
	cmd.PersistentFlags().String("project-root", config.DefaultProjectRoot, "Directory containing the rst2html-fast build tree")
	cmd.PersistentFlags().String("vendor-dir", config.DefaultVendorDir, "Directory containing the Composer autoloader")
	cmd.Flags().Int("iterations", config.DefaultIterations, "Measured iterations per tool")
	cmd.Flags().Int("warmup", config.DefaultWarmup, "Warmup iterations per tool")
	cmd.Flags().String("sample", config.DefaultSamplePath, "Path to the sample document")

	// Add subcommands
	cmd.AddCommand(newToolsCommand())

	return cmd
}

// configFromFlags layers configuration sources: defaults, then the config
// file, then any flag the user set explicitly.
func configFromFlags(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	var opts []config.Option
	if configPath, _ := flags.GetString("config"); configPath != "" {
		fileOpts, err := config.LoadFile(configPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fileOpts...)
	}

	if flags.Changed("iterations") {
		v, _ := flags.GetInt("iterations")
		opts = append(opts, config.WithIterations(v))
	}
	if flags.Changed("warmup") {
		v, _ := flags.GetInt("warmup")
		opts = append(opts, config.WithWarmup(v))
	}
	if flags.Changed("sample") {
		v, _ := flags.GetString("sample")
		opts = append(opts, config.WithSamplePath(v))
	}
	if flags.Changed("project-root") {
		v, _ := flags.GetString("project-root")
		opts = append(opts, config.WithProjectRoot(v))
	}
	if flags.Changed("vendor-dir") {
		v, _ := flags.GetString("vendor-dir")
		opts = append(opts, config.WithVendorDir(v))
	}

	cfg := config.New(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runBenchmark(cmd *cobra.Command, cfg *config.Config) error {
	reporter := newConsoleReporter(cmd.OutOrStdout(), cfg)
	reporter.printBanner()

	runner := orchestration.NewRunner(cfg)
	runner.OnProgress(reporter.listener)

	set, statuses, err := runner.Run(cmd.Context())
	if errors.Is(err, orchestration.ErrNoTools) {
		reporter.printNoTools()
		return &NoToolsError{}
	}
	if err != nil {
		return err
	}

	reporter.printReport(set, statuses)
	return nil
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
