// Package orchestration drives a benchmark run end to end: load the sample
// document, probe the environment for converters, measure each available one
// in display order, and aggregate the outcomes.
package orchestration

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/bodiam/rstbench/internal/bench"
	"github.com/bodiam/rstbench/internal/config"
	"github.com/bodiam/rstbench/internal/discovery"
	"github.com/bodiam/rstbench/internal/models"
	"github.com/bodiam/rstbench/internal/results"
	"github.com/bodiam/rstbench/internal/sample"
)

// ErrNoTools reports that detection found nothing to benchmark.
var ErrNoTools = errors.New("no tools detected")

// toolDetector probes the environment for converters. *discovery.Detector is
// the production implementation.
type toolDetector interface {
	DetectAll(ctx context.Context, tools []models.Tool) []discovery.Status
}

// adapterFactory builds a measurement adapter for one detected tool.
type adapterFactory func(st discovery.Status, doc sample.Document, iterations, warmup int) (bench.Adapter, error)

// Runner executes the benchmark suite. Tools run strictly one at a time so
// measurements never contend with each other for CPU.
type Runner struct {
	cfg      *config.Config
	detector toolDetector

	newAdapter adapterFactory

	// Progress tracking
	progressMu sync.Mutex
	listeners  []ProgressListener
}

// ProgressListener receives progress updates
type ProgressListener func(event ProgressEvent)

// EventType represents the type of progress event
type EventType string

// EventType constants
const (
	EventSampleLoaded      EventType = "sample_loaded"
	EventDetectionStart    EventType = "detection_start"
	EventDetectionComplete EventType = "detection_complete"
	EventBenchmarkStart    EventType = "benchmark_start"
	EventToolStart         EventType = "tool_start"
	EventToolComplete      EventType = "tool_complete"
	EventBenchmarkComplete EventType = "benchmark_complete"
)

// ProgressEvent represents a progress update. Only the fields relevant to
// the event type are populated.
type ProgressEvent struct {
	EventType EventType

	// Sample facts (EventSampleLoaded).
	DocName  string
	DocLines int
	DocBytes int

	// Probe results, one per configured tool (EventDetectionComplete).
	Statuses []discovery.Status

	// Per-tool progress (EventToolStart, EventToolComplete).
	Tool       models.Tool
	ToolNum    int
	TotalTools int
	Outcome    *models.Outcome

	// Wall-clock time for the whole run (EventBenchmarkComplete).
	DurationMs int64
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithToolDetector replaces the environment prober.
func WithToolDetector(d toolDetector) RunnerOption {
	return func(r *Runner) {
		r.detector = d
	}
}

// WithAdapterFactory replaces how measurement adapters are built.
func WithAdapterFactory(factory adapterFactory) RunnerOption {
	return func(r *Runner) {
		r.newAdapter = factory
	}
}

// NewRunner creates a runner for the given configuration.
func NewRunner(cfg *config.Config, opts ...RunnerOption) *Runner {
	r := &Runner{
		cfg:        cfg,
		detector:   discovery.NewDetector(cfg.ProjectRoot(), cfg.VendorDir()),
		newAdapter: bench.New,
		listeners:  []ProgressListener{},
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// OnProgress registers a progress listener
func (r *Runner) OnProgress(listener ProgressListener) {
	r.progressMu.Lock()
	defer r.progressMu.Unlock()
	r.listeners = append(r.listeners, listener)
}

func (r *Runner) notifyProgress(event ProgressEvent) {
	r.progressMu.Lock()
	listeners := make([]ProgressListener, len(r.listeners))
	copy(listeners, r.listeners)
	r.progressMu.Unlock()

	for _, listener := range listeners {
		listener(event)
	}
}

// Run executes the whole suite: load the sample, detect tools, measure each
// available one, aggregate. The returned statuses cover every configured
// tool in display order; the result set holds an entry only for tools that
// actually ran. Returns ErrNoTools when detection comes up empty.
func (r *Runner) Run(ctx context.Context) (models.ResultSet, []discovery.Status, error) {
	doc, err := sample.Load(r.cfg.SamplePath())
	if err != nil {
		return nil, nil, err
	}
	r.notifyProgress(ProgressEvent{
		EventType: EventSampleLoaded,
		DocName:   doc.Name,
		DocLines:  doc.Lines(),
		DocBytes:  doc.Bytes(),
	})

	r.notifyProgress(ProgressEvent{EventType: EventDetectionStart})
	statuses := r.detector.DetectAll(ctx, r.cfg.Tools())
	r.notifyProgress(ProgressEvent{
		EventType: EventDetectionComplete,
		Statuses:  statuses,
	})

	var available []discovery.Status
	for _, st := range statuses {
		if st.Available {
			available = append(available, st)
		}
	}
	slog.Debug("detection finished", "configured", len(statuses), "available", len(available))
	if len(available) == 0 {
		return nil, statuses, ErrNoTools
	}

	r.notifyProgress(ProgressEvent{
		EventType:  EventBenchmarkStart,
		TotalTools: len(available),
	})
	startTime := time.Now()

	outcomes := make([]models.Outcome, 0, len(available))
	for i, st := range available {
		r.notifyProgress(ProgressEvent{
			EventType:  EventToolStart,
			Tool:       st.Tool,
			ToolNum:    i + 1,
			TotalTools: len(available),
		})

		outcome := r.measure(ctx, st, doc)
		outcomes = append(outcomes, outcome)

		r.notifyProgress(ProgressEvent{
			EventType:  EventToolComplete,
			Tool:       st.Tool,
			ToolNum:    i + 1,
			TotalTools: len(available),
			Outcome:    &outcome,
		})
	}

	r.notifyProgress(ProgressEvent{
		EventType:  EventBenchmarkComplete,
		DurationMs: time.Since(startTime).Milliseconds(),
	})

	return results.Aggregate(outcomes), statuses, nil
}

// measure builds and runs the adapter for one tool. Factory errors become
// error outcomes so one misconfigured tool cannot end the run.
func (r *Runner) measure(ctx context.Context, st discovery.Status, doc sample.Document) models.Outcome {
	slog.Debug("benchmarking tool", "tool", st.Tool.Name, "kind", string(st.Tool.Kind))
	adapter, err := r.newAdapter(st, doc, r.cfg.Iterations(), r.cfg.Warmup())
	if err != nil {
		return models.Outcome{Tool: st.Tool.Name, Err: err.Error()}
	}
	return adapter.Measure(ctx)
}
