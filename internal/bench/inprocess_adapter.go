package bench

import (
	"context"
	"fmt"

	"github.com/bodiam/rstbench/internal/models"
	"github.com/bodiam/rstbench/internal/timing"
)

// inProcessAdapter times a converter linked into this binary, so measurements
// carry no process spawn overhead. A panic inside the converter is reported
// through the outcome like any other failure.
type inProcessAdapter struct {
	tool       string
	iterations int
	warmup     int
	convert    func() error
}

func (a *inProcessAdapter) Measure(ctx context.Context) (out models.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = models.Outcome{Tool: a.tool, Err: truncate(fmt.Sprintf("panic: %v", r), captureLimit)}
		}
	}()
	avg, err := timing.Measure(a.convert, a.warmup, a.iterations)
	return outcomeFrom(a.tool, avg, err)
}
