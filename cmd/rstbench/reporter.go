package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/bodiam/rstbench/internal/bench"
	"github.com/bodiam/rstbench/internal/config"
	"github.com/bodiam/rstbench/internal/discovery"
	"github.com/bodiam/rstbench/internal/models"
	"github.com/bodiam/rstbench/internal/orchestration"
	"github.com/bodiam/rstbench/internal/reporting"
	"github.com/bodiam/rstbench/internal/results"
	"github.com/bodiam/rstbench/internal/spinner"
)

const (
	bannerWidth = 70

	// minProgressPad keeps short tool names aligned the same way regardless
	// of which tools are installed.
	minProgressPad = 14

	// missingNameWidth aligns the install hints in the [--] listing.
	missingNameWidth = 16

	// errorDisplayLimit caps how much tool stderr lands on a progress line.
	errorDisplayLimit = 120
)

// consoleReporter renders run progress and the final report. Everything goes
// through out so tests can capture the exact byte stream.
type consoleReporter struct {
	out io.Writer
	cfg *config.Config

	padWidth    int
	stopSpinner func()
}

func newConsoleReporter(out io.Writer, cfg *config.Config) *consoleReporter {
	return &consoleReporter{out: out, cfg: cfg, padWidth: minProgressPad}
}

// listener translates runner progress into console output.
func (r *consoleReporter) listener(event orchestration.ProgressEvent) {
	switch event.EventType {
	case orchestration.EventSampleLoaded:
		r.printSampleFacts(event)
	case orchestration.EventDetectionStart:
		fmt.Fprintln(r.out, "Detecting tools...") //nolint:errcheck
		r.startSpinner()
	case orchestration.EventDetectionComplete:
		r.finishSpinner()
		r.printDetection(event.Statuses)
	case orchestration.EventBenchmarkStart:
		r.printRunHeader()
	case orchestration.EventToolStart:
		fmt.Fprintf(r.out, "  %s... ", reporting.PadRight(event.Tool.Name, r.padWidth)) //nolint:errcheck
	case orchestration.EventToolComplete:
		r.printOutcome(event)
	case orchestration.EventBenchmarkComplete:
		fmt.Fprintln(r.out) //nolint:errcheck
	}
}

//nolint:errcheck // terminal output, write errors are not actionable
func (r *consoleReporter) printBanner() {
	banner := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(r.out, banner)
	fmt.Fprintln(r.out, "  rst2html-fast benchmark suite")
	fmt.Fprintln(r.out, banner)
	fmt.Fprintln(r.out)
}

//nolint:errcheck
func (r *consoleReporter) printSampleFacts(event orchestration.ProgressEvent) {
	fmt.Fprintf(r.out, "  Document: %s (%d lines, %s bytes)\n",
		event.DocName, event.DocLines, reporting.FormatCount(event.DocBytes))
	fmt.Fprintf(r.out, "  Iterations: %d (Sphinx: %d)\n",
		r.cfg.Iterations(), bench.MultiStepIterations(r.cfg.Iterations()))
	fmt.Fprintln(r.out)
}

//nolint:errcheck // terminal output, write errors are not actionable
func (r *consoleReporter) printDetection(statuses []discovery.Status) {
	longest := 0
	for _, st := range statuses {
		if !st.Available {
			continue
		}
		if w := runewidth.StringWidth(st.Tool.Name); w > longest {
			longest = w
		}
	}
	if longest+1 > r.padWidth {
		r.padWidth = longest + 1
	}

	for _, st := range statuses {
		if st.Available && st.DebugBuild {
			fmt.Fprintln(r.out, "  WARNING: Using debug build. Run 'cargo build --release' for accurate benchmarks.")
		}
	}
	for _, st := range statuses {
		if st.Available {
			fmt.Fprintf(r.out, "  [ok] %s\n", st.Tool.Name)
		}
	}
	for _, st := range statuses {
		if !st.Available {
			fmt.Fprintf(r.out, "  [--] %s (install: %s)\n",
				reporting.PadRight(st.Tool.Name, missingNameWidth), st.Tool.InstallHint)
		}
	}
}

//nolint:errcheck
func (r *consoleReporter) printRunHeader() {
	rule := strings.Repeat("-", bannerWidth)
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, rule)
	fmt.Fprintln(r.out, "Running benchmarks...")
	fmt.Fprintln(r.out, rule)
	fmt.Fprintln(r.out)
}

//nolint:errcheck
func (r *consoleReporter) printOutcome(event orchestration.ProgressEvent) {
	outcome := event.Outcome
	if outcome == nil {
		return
	}
	if !outcome.Succeeded() {
		fmt.Fprintf(r.out, "error: %s\n", truncateError(outcome.Err))
		return
	}
	line := reporting.FormatSeconds(outcome.AverageSeconds)
	if event.Tool.Input != models.InputFull {
		line += fmt.Sprintf("  (%s input*)", event.Tool.Input)
	}
	fmt.Fprintln(r.out, line)
}

//nolint:errcheck
func (r *consoleReporter) printNoTools() {
	fmt.Fprintln(r.out, "\nNo tools found. Install at least one to run benchmarks.")
}

// printReport renders the results table, the speedup summary, and any
// footnotes. Only tools that produced an average appear; errored and missing
// tools are left out, matching what the progress lines already said.
//
//nolint:errcheck // terminal output, write errors are not actionable
func (r *consoleReporter) printReport(set models.ResultSet, statuses []discovery.Status) {
	if set.Successes() == 0 {
		fmt.Fprintln(r.out, "No benchmarks completed successfully.")
		return
	}

	baseline := results.Baseline(set, models.PrimaryToolName)
	banner := strings.Repeat("=", bannerWidth)

	fmt.Fprintln(r.out, banner)
	fmt.Fprintf(r.out, "  %s %s %s %s\n",
		reporting.PadRight("Tool", 20),
		reporting.PadRight("Language", 12),
		reporting.PadLeft("Time", 12),
		reporting.PadLeft("vs "+models.PrimaryToolName, 16))
	fmt.Fprintln(r.out, banner)

	for _, st := range statuses {
		outcome, ok := set[st.Tool.Name]
		if !ok || !outcome.Succeeded() {
			continue
		}
		fmt.Fprintf(r.out, "  %s %s %s %s\n",
			reporting.PadRight(st.Tool.Name, 20),
			reporting.PadRight(st.Tool.Language, 12),
			reporting.PadLeft(reporting.FormatSeconds(outcome.AverageSeconds), 12),
			reporting.PadLeft(results.Relative(outcome, models.PrimaryToolName, baseline), 16))
	}
	fmt.Fprintln(r.out, banner)
	fmt.Fprintln(r.out)

	if baseline != nil {
		fmt.Fprintln(r.out, "Summary:")
		for _, st := range statuses {
			if st.Tool.Name == models.PrimaryToolName {
				continue
			}
			outcome, ok := set[st.Tool.Name]
			if !ok || !outcome.Succeeded() {
				continue
			}
			if factor, haveFactor := results.SpeedupFactor(outcome, baseline); haveFactor {
				fmt.Fprintf(r.out, "  %s is %.0fx faster than %s\n",
					models.PrimaryToolName, factor, st.Tool.Name)
			}
		}
	}

	var footnotes []string
	for _, st := range statuses {
		outcome, ok := set[st.Tool.Name]
		if ok && outcome.Succeeded() && st.Tool.Footnote != "" {
			footnotes = append(footnotes, st.Tool.Footnote)
		}
	}
	if len(footnotes) > 0 {
		fmt.Fprintln(r.out)
		for _, note := range footnotes {
			fmt.Fprintf(r.out, "  * %s\n", note)
		}
	}
	fmt.Fprintln(r.out)
}

func (r *consoleReporter) startSpinner() {
	f, ok := r.out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return
	}
	r.stopSpinner = spinner.Start(r.out, "probing converters")
}

func (r *consoleReporter) finishSpinner() {
	if r.stopSpinner != nil {
		r.stopSpinner()
		r.stopSpinner = nil
	}
}

// truncateError hard-caps stderr excerpts for display. Capture already
// trimmed them once; this keeps a single progress line readable.
func truncateError(s string) string {
	if len(s) <= errorDisplayLimit {
		return s
	}
	return s[:errorDisplayLimit]
}
