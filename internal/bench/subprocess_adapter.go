package bench

import (
	"context"

	"github.com/bodiam/rstbench/internal/models"
	"github.com/bodiam/rstbench/internal/timing"
)

// subprocessAdapter times one command per conversion, piping the document to
// stdin. This covers the primary binary, python -m docutils, pandoc, and any
// extra tools declared in the config file.
type subprocessAdapter struct {
	tool       string
	argv       []string
	stdin      string
	iterations int
	warmup     int
	run        commandRunner
}

func (a *subprocessAdapter) Measure(ctx context.Context) models.Outcome {
	op := func() error {
		return a.run.run(ctx, a.argv, a.stdin)
	}
	avg, err := timing.Measure(op, a.warmup, a.iterations)
	return outcomeFrom(a.tool, avg, err)
}
