package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"

	"github.com/bodiam/rstbench/internal/models"
)

// LoadFile reads a rstbench.yaml file and returns the options it sets.
// Callers apply these before any flag-derived options so flags win.
func LoadFile(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	opts, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

func parse(data []byte) ([]Option, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}
	if errs := validateConfigBytes(data); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}

	var raw struct {
		Iterations  int              `yaml:"iterations"`
		Warmup      *int             `yaml:"warmup"`
		Sample      string           `yaml:"sample"`
		ProjectRoot string           `yaml:"project_root"`
		VendorDir   string           `yaml:"vendor_dir"`
		ExtraTools  []map[string]any `yaml:"extra_tools"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	var opts []Option
	if raw.Iterations != 0 {
		opts = append(opts, WithIterations(raw.Iterations))
	}
	// warmup: 0 is a meaningful value, so distinguish "absent" via pointer
	if raw.Warmup != nil {
		opts = append(opts, WithWarmup(*raw.Warmup))
	}
	if raw.Sample != "" {
		opts = append(opts, WithSamplePath(raw.Sample))
	}
	if raw.ProjectRoot != "" {
		opts = append(opts, WithProjectRoot(raw.ProjectRoot))
	}
	if raw.VendorDir != "" {
		opts = append(opts, WithVendorDir(raw.VendorDir))
	}
	if len(raw.ExtraTools) > 0 {
		tools := make([]models.Tool, 0, len(raw.ExtraTools))
		for i, entry := range raw.ExtraTools {
			tool, err := decodeExtraTool(entry)
			if err != nil {
				return nil, fmt.Errorf("extra_tools[%d]: %w", i, err)
			}
			tools = append(tools, tool)
		}
		opts = append(opts, WithExtraTools(tools))
	}
	return opts, nil
}

// decodeExtraTool turns one extra_tools entry into a subprocess tool detected
// by a PATH lookup of its command.
func decodeExtraTool(entry map[string]any) (models.Tool, error) {
	var v struct {
		Name     string   `mapstructure:"name"`
		Language string   `mapstructure:"language"`
		Command  string   `mapstructure:"command"`
		Args     []string `mapstructure:"args"`
		Input    string   `mapstructure:"input"`
	}
	if err := mapstructure.Decode(entry, &v); err != nil {
		return models.Tool{}, fmt.Errorf("decoding entry: %w", err)
	}
	if v.Name == "" {
		return models.Tool{}, fmt.Errorf("entry must have a 'name'")
	}
	if v.Command == "" {
		return models.Tool{}, fmt.Errorf("tool %q must have a 'command'", v.Name)
	}

	input := models.InputFull
	switch v.Input {
	case "", "full":
	case "simplified":
		input = models.InputSimplified
	case "markdown":
		input = models.InputMarkdown
	default:
		return models.Tool{}, fmt.Errorf("tool %q has unknown input %q", v.Name, v.Input)
	}

	tool := models.Tool{
		Name:        v.Name,
		Language:    v.Language,
		Kind:        models.KindSubprocess,
		Input:       input,
		Detect:      models.Detection{PathBinary: v.Command},
		Args:        v.Args,
		InstallHint: fmt.Sprintf("put %s on PATH", v.Command),
	}
	if input != models.InputFull {
		tool.Footnote = fmt.Sprintf("%s uses the %s rendition of the sample.", v.Name, v.Input)
	}
	return tool, nil
}
