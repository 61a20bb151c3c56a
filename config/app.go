package config

import (
	"github.com/kbukum/gostreams/errors"
	"github.com/kbukum/gostreams/validation"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Formats lists every output format.
func Formats() []string { return []string{FormatText, FormatJSON} }

// AppConfig is the configuration of the streams program.
type AppConfig struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Fixtures      FixturesConfig      `yaml:"fixtures" mapstructure:"fixtures"`
	Output        OutputConfig        `yaml:"output" mapstructure:"output"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
}

// FixturesConfig points at fixture files on disk. Empty paths select the
// fixtures bundled with the binary.
type FixturesConfig struct {
	People string `yaml:"people" mapstructure:"people"`
	Cars   string `yaml:"cars" mapstructure:"cars"`
}

// OutputConfig controls how demo results are printed.
type OutputConfig struct {
	Format   string `yaml:"format" mapstructure:"format" validate:"oneof=text json"`
	NoColor  bool   `yaml:"no_color" mapstructure:"no_color"`
	PageSize int    `yaml:"page_size" mapstructure:"page_size" validate:"gte=0"` // 0 disables paging
}

// ObservabilityConfig switches the in-process tracer and meter.
type ObservabilityConfig struct {
	TracingEnabled bool    `yaml:"tracing_enabled" mapstructure:"tracing_enabled"`
	SampleRate     float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
	MetricsEnabled bool    `yaml:"metrics_enabled" mapstructure:"metrics_enabled"`
}

// Defaults are the values Load uses for keys nothing else sets.
func Defaults() map[string]any {
	return map[string]any{
		"environment":                   "development",
		"output.format":                 FormatText,
		"output.page_size":              0,
		"observability.tracing_enabled": true,
		"observability.sample_rate":     1.0,
		"observability.metrics_enabled": true,
	}
}

// ApplyDefaults fills fields left empty by the loader.
func (c *AppConfig) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
}

// Validate checks the base fields and the struct tags of every section.
func (c *AppConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	return validation.Validate(c)
}

// Load reads the configuration of serviceName with Defaults applied, then
// fills and validates it. The name defaults to serviceName. Failures are
// CONFIG_ERROR AppErrors.
func Load(serviceName string, opts ...LoaderOption) (*AppConfig, error) {
	defaults := Defaults()
	defaults["name"] = serviceName

	cfg := &AppConfig{}
	opts = append([]LoaderOption{WithDefaults(defaults)}, opts...)
	if err := LoadConfig(serviceName, cfg, opts...); err != nil {
		return nil, errors.Config(err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Config(err).WithDetail("service", serviceName)
	}
	return cfg, nil
}
