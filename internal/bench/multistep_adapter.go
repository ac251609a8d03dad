package bench

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bodiam/rstbench/internal/models"
	"github.com/bodiam/rstbench/internal/timing"
)

// sphinxConf is the minimal project configuration sphinx needs to build a
// single-page site from the sample.
const sphinxConf = "project = 'bench'\nextensions = []\n"

// multiStepAdapter times sphinx, which only converts documents inside a
// project directory. The scratch project is built once; the output tree is
// recreated per conversion because sphinx skips sources it considers
// unchanged.
type multiStepAdapter struct {
	tool       string
	python     string
	input      string
	iterations int
	warmup     int
	run        commandRunner
}

func (a *multiStepAdapter) Measure(ctx context.Context) models.Outcome {
	tmp, err := os.MkdirTemp("", "rstbench-sphinx-")
	if err != nil {
		return outcomeFrom(a.tool, 0, err)
	}
	defer os.RemoveAll(tmp) //nolint:errcheck

	srcDir := filepath.Join(tmp, "source")
	outDir := filepath.Join(tmp, "build")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return outcomeFrom(a.tool, 0, err)
	}
	if err := os.WriteFile(filepath.Join(srcDir, "conf.py"), []byte(sphinxConf), 0o644); err != nil {
		return outcomeFrom(a.tool, 0, err)
	}
	if err := os.WriteFile(filepath.Join(srcDir, "index.rst"), []byte(a.input), 0o644); err != nil {
		return outcomeFrom(a.tool, 0, err)
	}

	argv := []string{a.python, "-m", "sphinx", "-b", "html", "-q", srcDir, outDir}
	op := func() error {
		if err := os.RemoveAll(outDir); err != nil {
			return err
		}
		return a.run.run(ctx, argv, "")
	}
	avg, err := timing.Measure(op, a.warmup, a.iterations)
	return outcomeFrom(a.tool, avg, err)
}
