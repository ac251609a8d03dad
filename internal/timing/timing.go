// Package timing implements the warmup-then-measure protocol shared by every
// benchmark adapter.
package timing

import (
	"errors"
	"time"
)

// Measure runs op through the standard protocol: warmup throwaway calls whose
// results are ignored, then iterations measured calls timed as a single block.
// It returns the mean wall-clock seconds per measured call.
//
// The first failing measured call aborts the run and is returned as the error;
// earlier measured calls are not retried and no partial average is reported.
func Measure(op func() error, warmup, iterations int) (float64, error) {
	if op == nil {
		return 0, errors.New("timing: nil operation")
	}
	if iterations < 1 {
		return 0, errors.New("timing: iterations must be at least 1")
	}
	for i := 0; i < warmup; i++ {
		_ = op() // warmup is best-effort
	}
	start := time.Now()
	for i := 0; i < iterations; i++ {
		if err := op(); err != nil {
			return 0, err
		}
	}
	elapsed := time.Since(start)
	return elapsed.Seconds() / float64(iterations), nil
}
