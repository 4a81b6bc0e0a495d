package config

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/prettymuchbryce/reportdetails/internal/pathutil"
	"github.com/prettymuchbryce/reportdetails/internal/routes"
)

// Config represents the top-level configuration.
type Config struct {
	Watch   WatchConfig       `yaml:"watch"`
	Logging LoggingConfig     `yaml:"logging"`
	Export  ExportConfig      `yaml:"export"`
	Routes  map[string]string `yaml:"routes"`

	// DebugMode forces the debug menu item on for every snapshot.
	DebugMode bool `yaml:"debug_mode"`
}

// WatchConfig represents watch-specific configuration.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// LoggingConfig represents logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// ExportConfig configures CSV downloads.
type ExportConfig struct {
	// Filename supports ${reportID} and strftime tokens like %Y%m%d.
	Filename string `yaml:"filename"`
}

// DefaultWatchConfig returns the default watch configuration.
func DefaultWatchConfig() WatchConfig {
	return WatchConfig{
		Debounce: 500 * time.Millisecond,
	}
}

// DefaultLoggingConfig returns the default logging configuration.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level: "warn",
	}
}

// DefaultExportConfig returns the default export configuration.
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		Filename: "report-${reportID}-%Y%m%d.csv",
	}
}

// Load reads and parses a configuration file using the real filesystem.
func Load(path string) (*Config, error) {
	return LoadWithFs(path, afero.NewOsFs())
}

// LoadWithFs reads and parses a configuration file using the provided filesystem.
func LoadWithFs(path string, afs afero.Fs) (*Config, error) {
	expanded := pathutil.ExpandTilde(path)

	data, err := afero.ReadFile(afs, expanded)
	if err != nil {
		return nil, err
	}

	// Start with defaults
	config := &Config{
		Watch:   DefaultWatchConfig(),
		Logging: DefaultLoggingConfig(),
		Export:  DefaultExportConfig(),
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", expanded, err)
	}

	return config, nil
}

// Validate checks values that yaml decoding cannot.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging level %q", c.Logging.Level)
	}

	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch debounce must not be negative, got %v", c.Watch.Debounce)
	}

	if _, err := c.RouteTable(); err != nil {
		return err
	}

	return nil
}

// RouteTable returns the default routes with configured overrides applied.
func (c *Config) RouteTable() (routes.Table, error) {
	return routes.DefaultTable().WithOverrides(c.Routes)
}

// ExportTemplate returns the export filename template.
func (c *Config) ExportTemplate() routes.Template {
	return routes.Template(c.Export.Filename)
}
