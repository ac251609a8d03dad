package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromFlagsDefaults(t *testing.T) {
	cmd := newRootCommand()
	require.NoError(t, cmd.ParseFlags(nil))

	cfg, err := configFromFlags(cmd)
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Iterations())
	assert.Equal(t, 5, cfg.Warmup())
	assert.Equal(t, "sample.rst", cfg.SamplePath())
	assert.Equal(t, ".", cfg.ProjectRoot())
	assert.Equal(t, "vendor", cfg.VendorDir())
}

func TestConfigFromFlagsLayersFileAndFlags(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "rstbench.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("iterations: 50\nwarmup: 2\n"), 0o644))

	cmd := newRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--config", configPath, "--iterations", "7"}))

	cfg, err := configFromFlags(cmd)
	require.NoError(t, err)

	// Explicit flags beat the file, the file beats the defaults.
	assert.Equal(t, 7, cfg.Iterations())
	assert.Equal(t, 2, cfg.Warmup())
	assert.Equal(t, "sample.rst", cfg.SamplePath())
}

func TestConfigFromFlagsRejectsInvalidValues(t *testing.T) {
	cmd := newRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--iterations", "0"}))

	_, err := configFromFlags(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "iterations must be at least 1")
}

func TestConfigFromFlagsMissingConfigFile(t *testing.T) {
	cmd := newRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--config", filepath.Join(t.TempDir(), "absent.yaml")}))

	_, err := configFromFlags(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestRootCommandMissingSample(t *testing.T) {
	samplePath := filepath.Join(t.TempDir(), "absent.rst")

	var buf bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--sample", samplePath})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample document not found at "+samplePath)

	// The banner goes out before the sample check, as the only output.
	line := strings.Repeat("=", 70)
	assert.Equal(t, line+"\n  rst2html-fast benchmark suite\n"+line+"\n\n", buf.String())
}

func TestRootCommandVersion(t *testing.T) {
	var buf bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "rstbench version dev\n", buf.String())
}

func TestToolsCommandListsEveryConverter(t *testing.T) {
	// An empty PATH and an empty project root make every probe fail except
	// the compiled-in converter.
	t.Setenv("PATH", t.TempDir())

	var buf bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"tools", "--project-root", t.TempDir()})

	require.NoError(t, cmd.Execute())

	want := "Detecting tools...\n" +
		"  [ok] goldmark\n" +
		"  [--] rst2html-fast    (install: cargo build --release)\n" +
		"  [--] docutils         (install: pip install docutils)\n" +
		"  [--] Pandoc           (install: brew install pandoc)\n" +
		"  [--] Sphinx           (install: pip install sphinx)\n" +
		"  [--] Nim rst2html     (install: brew install nim)\n" +
		"  [--] Gregwar/RST      (install: composer require gregwar/rst)\n"
	assert.Equal(t, want, buf.String())
}
