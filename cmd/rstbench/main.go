package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess = 0 // Benchmarks ran, even if individual tools failed
	ExitError   = 1 // Missing sample, bad configuration, or nothing to benchmark
)

// NoToolsError indicates that detection found nothing to benchmark. The
// advisory message is already on stdout, so main exits without printing
// anything further.
type NoToolsError struct{}

func (e *NoToolsError) Error() string { return "no tools detected" }

func main() {
	if err := execute(); err != nil {
		var noTools *NoToolsError
		if !errors.As(err, &noTools) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(ExitError)
	}
}
