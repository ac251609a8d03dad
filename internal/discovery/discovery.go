// Package discovery probes the local environment for the converters under
// comparison. Probes never fail the run: a tool that cannot be found is
// reported as unavailable together with its install hint.
package discovery

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/bodiam/rstbench/internal/models"
)

//go:generate go tool mockgen -source=discovery.go -destination=mock_prober_test.go -package=discovery

// prober abstracts the filesystem and process probes so detection logic can
// be tested without touching the host environment.
type prober interface {
	lookPath(file string) (string, error)
	runSilent(ctx context.Context, name string, args ...string) error
	fileExists(path string) bool
}

// Status is the result of probing one tool.
type Status struct {
	Tool      models.Tool
	Available bool
	// Path is the resolved executable for available PATH and build tools.
	Path string
	// Python is the interpreter name driving module-probed tools.
	Python string
	// Manifest is the resolved autoloader path for tools that require one.
	Manifest string
	// DebugBuild is set when only a non-release build was found.
	DebugBuild bool
}

// Detector probes for tools. The zero value is not usable; construct with
// NewDetector.
type Detector struct {
	projectRoot string
	vendorDir   string
	probe       prober

	// python caches the interpreter resolution, which costs a process spawn.
	python         string
	pythonResolved bool
}

// NewDetector returns a detector resolving build paths under projectRoot and
// manifests under vendorDir.
func NewDetector(projectRoot, vendorDir string) *Detector {
	return &Detector{
		projectRoot: projectRoot,
		vendorDir:   vendorDir,
		probe:       execProber{},
	}
}

// DetectAll probes every tool in order and returns one status per tool.
func (d *Detector) DetectAll(ctx context.Context, tools []models.Tool) []Status {
	statuses := make([]Status, 0, len(tools))
	for _, tool := range tools {
		statuses = append(statuses, d.Detect(ctx, tool))
	}
	return statuses
}

// Detect probes for a single tool. It never returns an error: failed probes
// yield an unavailable status carrying the tool's install hint.
func (d *Detector) Detect(ctx context.Context, tool models.Tool) Status {
	st := Status{Tool: tool}
	det := tool.Detect
	switch {
	case det.Builtin:
		st.Available = true

	case len(det.BuildPaths) > 0:
		for i, rel := range det.BuildPaths {
			path := filepath.Join(d.projectRoot, rel)
			if d.probe.fileExists(path) {
				st.Available = true
				st.Path = path
				st.DebugBuild = i > 0
				break
			}
		}

	case det.PythonModule != "":
		python := d.resolvePython(ctx)
		if python == "" {
			break
		}
		if err := d.probe.runSilent(ctx, python, "-c", "import "+det.PythonModule); err != nil {
			break
		}
		st.Available = true
		st.Python = python

	case det.PathBinary != "":
		path, err := d.probe.lookPath(det.PathBinary)
		if err != nil {
			break
		}
		if det.ManifestPath != "" {
			manifest := filepath.Join(d.vendorDir, det.ManifestPath)
			if !d.probe.fileExists(manifest) {
				break
			}
			st.Manifest = manifest
		}
		st.Available = true
		st.Path = path
	}
	return st
}

// Python returns the interpreter used for module probes, resolving it on
// first use. Empty when no working interpreter exists.
func (d *Detector) Python(ctx context.Context) string {
	return d.resolvePython(ctx)
}

// resolvePython finds a working python interpreter, preferring python3.
// On some systems (notably Windows) a "python3" shim exists that only
// points at an app store, so a found binary must also survive a version
// probe before it counts.
func (d *Detector) resolvePython(ctx context.Context) string {
	if d.pythonResolved {
		return d.python
	}
	d.pythonResolved = true
	for _, candidate := range []string{"python3", "python"} {
		path, err := d.probe.lookPath(candidate)
		if err != nil {
			continue
		}
		if err := d.probe.runSilent(ctx, path, "--version"); err != nil {
			continue
		}
		d.python = candidate
		break
	}
	return d.python
}

// execProber is the production prober backed by os/exec and os.Stat.
type execProber struct{}

func (execProber) lookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (execProber) runSilent(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}

func (execProber) fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
