// Package bench contains the benchmark adapters, one per invocation kind.
// Adapters bridge a detected tool to the shared timing protocol and report
// every failure through the outcome rather than an error or panic.
package bench

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/bodiam/rstbench/internal/discovery"
	"github.com/bodiam/rstbench/internal/models"
	"github.com/bodiam/rstbench/internal/sample"
)

// captureLimit bounds recorded stderr so a crashing tool cannot flood the
// report.
const captureLimit = 200

// Adapter measures one detected tool.
type Adapter interface {
	Measure(ctx context.Context) models.Outcome
}

// New builds the adapter for a detected tool. The status must come from a
// successful probe; unavailable tools have nothing to measure.
func New(st discovery.Status, doc sample.Document, iterations, warmup int) (Adapter, error) {
	if !st.Available {
		return nil, fmt.Errorf("tool %s is not available", st.Tool.Name)
	}
	input := inputFor(st.Tool, doc)

	switch st.Tool.Kind {
	case models.KindSubprocess:
		if st.Manifest != "" {
			return &phpScriptAdapter{
				tool:       st.Tool.Name,
				php:        st.Path,
				autoloader: st.Manifest,
				input:      input,
				iterations: iterations,
				warmup:     warmup,
				run:        execRunner{},
			}, nil
		}
		exe := st.Path
		if st.Python != "" {
			exe = st.Python
		}
		return &subprocessAdapter{
			tool:       st.Tool.Name,
			argv:       append([]string{exe}, st.Tool.Args...),
			stdin:      input,
			iterations: iterations,
			warmup:     warmup,
			run:        execRunner{},
		}, nil

	case models.KindInProcess:
		md := goldmark.New()
		src := []byte(input)
		return &inProcessAdapter{
			tool:       st.Tool.Name,
			iterations: iterations,
			warmup:     warmup,
			convert: func() error {
				return md.Convert(src, io.Discard)
			},
		}, nil

	case models.KindMultiStepDir:
		return &multiStepAdapter{
			tool:       st.Tool.Name,
			python:     st.Python,
			input:      input,
			iterations: MultiStepIterations(iterations),
			warmup:     MultiStepWarmup(warmup),
			run:        execRunner{},
		}, nil

	case models.KindFileBased:
		return &fileBasedAdapter{
			tool:       st.Tool.Name,
			exe:        st.Path,
			args:       st.Tool.Args,
			input:      input,
			iterations: iterations,
			warmup:     warmup,
			run:        execRunner{},
		}, nil

	default:
		return nil, fmt.Errorf("unknown invocation kind: %s", st.Tool.Kind)
	}
}

// MultiStepIterations scales the shared iteration count down for builders
// that pay whole-project overhead on every conversion. Always at least 1.
func MultiStepIterations(iterations int) int {
	scaled := iterations / 10
	if scaled < 1 {
		return 1
	}
	return scaled
}

// MultiStepWarmup caps warmup for multi-step builders at 2 rounds.
func MultiStepWarmup(warmup int) int {
	if warmup > 2 {
		return 2
	}
	return warmup
}

// inputFor picks the document rendition a tool receives.
func inputFor(tool models.Tool, doc sample.Document) string {
	switch tool.Input {
	case models.InputSimplified:
		return sample.Simplified()
	case models.InputMarkdown:
		return sample.Markdown()
	default:
		return doc.Text
	}
}

// commandRunner executes one external command to completion. Adapters go
// through this seam so tests can count invocations without spawning
// processes.
type commandRunner interface {
	run(ctx context.Context, argv []string, stdin string) error
}

// execRunner is the production runner backed by os/exec. Stdout is discarded;
// on failure the command's trimmed stderr becomes the error message.
type execRunner struct{}

func (execRunner) run(ctx context.Context, argv []string, stdin string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	var stderr bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return errors.New(truncate(msg, captureLimit))
	}
	return nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

// outcomeFrom converts a timing result into the outcome record.
func outcomeFrom(tool string, avg float64, err error) models.Outcome {
	if err != nil {
		return models.Outcome{Tool: tool, Err: truncate(err.Error(), captureLimit)}
	}
	return models.Outcome{Tool: tool, AverageSeconds: &avg}
}
