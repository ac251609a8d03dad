// Package config holds the immutable run configuration and the rstbench.yaml
// loader. Defaults here are the single source of truth; no other code should
// duplicate them.
package config

import (
	"fmt"

	"github.com/bodiam/rstbench/internal/models"
)

// Default values for the benchmark run.
const (
	DefaultIterations = 100
	DefaultWarmup     = 5

	DefaultSamplePath  = "sample.rst"
	DefaultProjectRoot = "."
	DefaultVendorDir   = "vendor"
)

// Config carries everything a benchmark run needs. Build one with [New] and
// treat it as immutable afterwards.
type Config struct {
	iterations  int
	warmup      int
	samplePath  string
	projectRoot string
	vendorDir   string
	extraTools  []models.Tool
}

// Option customizes a Config during construction.
type Option func(*Config)

// New returns a Config with defaults applied, then the given options in
// order. Later options win.
func New(opts ...Option) *Config {
	cfg := &Config{
		iterations:  DefaultIterations,
		warmup:      DefaultWarmup,
		samplePath:  DefaultSamplePath,
		projectRoot: DefaultProjectRoot,
		vendorDir:   DefaultVendorDir,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithIterations sets the measured iteration count.
func WithIterations(n int) Option {
	return func(c *Config) { c.iterations = n }
}

// WithWarmup sets the unmeasured warmup iteration count.
func WithWarmup(n int) Option {
	return func(c *Config) { c.warmup = n }
}

// WithSamplePath sets the path of the sample document.
func WithSamplePath(path string) Option {
	return func(c *Config) { c.samplePath = path }
}

// WithProjectRoot sets the directory searched for the primary tool's build
// artifacts.
func WithProjectRoot(dir string) Option {
	return func(c *Config) { c.projectRoot = dir }
}

// WithVendorDir sets the directory searched for the PHP autoloader.
func WithVendorDir(dir string) Option {
	return func(c *Config) { c.vendorDir = dir }
}

// WithExtraTools sets user-defined tools to benchmark after the built-in
// ones.
func WithExtraTools(tools []models.Tool) Option {
	return func(c *Config) { c.extraTools = tools }
}

func (c *Config) Iterations() int     { return c.iterations }
func (c *Config) Warmup() int         { return c.warmup }
func (c *Config) SamplePath() string  { return c.samplePath }
func (c *Config) ProjectRoot() string { return c.projectRoot }
func (c *Config) VendorDir() string   { return c.vendorDir }

// ExtraTools returns the user-defined tools from the config file, in file
// order.
func (c *Config) ExtraTools() []models.Tool { return c.extraTools }

// Tools returns every tool in display order: the built-in converters first,
// then any extras in the order they were configured.
func (c *Config) Tools() []models.Tool {
	tools := models.BuiltinTools()
	return append(tools, c.extraTools...)
}

// Validate reports the first problem with the configuration, or nil.
func (c *Config) Validate() error {
	if c.iterations < 1 {
		return fmt.Errorf("iterations must be at least 1, got %d", c.iterations)
	}
	if c.warmup < 0 {
		return fmt.Errorf("warmup must not be negative, got %d", c.warmup)
	}
	if c.samplePath == "" {
		return fmt.Errorf("sample path must not be empty")
	}
	seen := make(map[string]bool)
	for _, tool := range models.BuiltinTools() {
		seen[tool.Name] = true
	}
	for _, tool := range c.extraTools {
		if tool.Name == "" {
			return fmt.Errorf("extra tool must have a name")
		}
		if seen[tool.Name] {
			return fmt.Errorf("duplicate tool name %q", tool.Name)
		}
		seen[tool.Name] = true
	}
	return nil
}
