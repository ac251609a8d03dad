package bench

import (
	"context"
	"fmt"
	"os"

	_ "embed"

	"github.com/bodiam/rstbench/internal/models"
	"github.com/bodiam/rstbench/internal/timing"
)

//go:embed data/bench_gregwar.php
var gregwarScript string

// phpScriptAdapter times Gregwar/RST through a small PHP shim. The shim is
// written to a temp file once per run and handed the composer autoloader
// path; the document still arrives on stdin like any subprocess tool.
type phpScriptAdapter struct {
	tool       string
	php        string
	autoloader string
	input      string
	iterations int
	warmup     int
	run        commandRunner
}

func (a *phpScriptAdapter) Measure(ctx context.Context) models.Outcome {
	script, err := os.CreateTemp("", "rstbench-gregwar-*.php")
	if err != nil {
		return outcomeFrom(a.tool, 0, fmt.Errorf("creating PHP shim: %w", err))
	}
	defer os.Remove(script.Name()) //nolint:errcheck

	if _, err := script.WriteString(gregwarScript); err != nil {
		script.Close() //nolint:errcheck
		return outcomeFrom(a.tool, 0, fmt.Errorf("writing PHP shim: %w", err))
	}
	if err := script.Close(); err != nil {
		return outcomeFrom(a.tool, 0, fmt.Errorf("closing PHP shim: %w", err))
	}

	argv := []string{a.php, script.Name(), a.autoloader}
	op := func() error {
		return a.run.run(ctx, argv, a.input)
	}
	avg, err := timing.Measure(op, a.warmup, a.iterations)
	return outcomeFrom(a.tool, avg, err)
}
