package bench

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bodiam/rstbench/internal/models"
	"github.com/bodiam/rstbench/internal/timing"
)

// fileBasedAdapter times tools that take a file path argument instead of
// stdin, like nim's rst2html. The input lives in a scratch directory so the
// HTML the tool drops next to it disappears with the run.
type fileBasedAdapter struct {
	tool       string
	exe        string
	args       []string
	input      string
	iterations int
	warmup     int
	run        commandRunner
}

func (a *fileBasedAdapter) Measure(ctx context.Context) models.Outcome {
	tmp, err := os.MkdirTemp("", "rstbench-")
	if err != nil {
		return outcomeFrom(a.tool, 0, err)
	}
	defer os.RemoveAll(tmp) //nolint:errcheck

	inputPath := filepath.Join(tmp, "input.rst")
	if err := os.WriteFile(inputPath, []byte(a.input), 0o644); err != nil {
		return outcomeFrom(a.tool, 0, err)
	}

	argv := append([]string{a.exe}, a.args...)
	argv = append(argv, inputPath)
	op := func() error {
		return a.run.run(ctx, argv, "")
	}
	avg, err := timing.Measure(op, a.warmup, a.iterations)
	return outcomeFrom(a.tool, avg, err)
}
