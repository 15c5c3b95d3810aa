// Package config loads virtuallist settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// Default values.
const (
	CurrentSchemaVersion = "1.0.0"

	defaultViewportHeight = 20
	defaultItemHeight     = 3
	defaultGap            = 1
	defaultColumns        = 4

	defaultDemoItems     = 1000
	defaultDemoPageSize  = 100
	defaultDemoMaxItems  = 5000
	defaultDemoLatencyMS = 400

	defaultLogLevel  = "info"
	defaultLogFormat = "json"
)

// supportedSchemas is the range of config schema versions this build reads.
const supportedSchemas = ">=1.0.0, <2.0.0"

// Environment variable names.
const (
	EnvViewportHeight = "VIRTUALLIST_VIEWPORT_HEIGHT"
	EnvItemHeight     = "VIRTUALLIST_ITEM_HEIGHT"
	EnvGap            = "VIRTUALLIST_GAP"
	EnvColumns        = "VIRTUALLIST_COLUMNS"
	EnvLogLevel       = "VIRTUALLIST_LOG_LEVEL"
	EnvLogFile        = "VIRTUALLIST_LOG_FILE"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrUnsupportedSchema is returned for schema versions outside supportedSchemas.
	ErrUnsupportedSchema = errors.New("unsupported config schema version")
)

// Config is the full virtuallist configuration.
type Config struct {
	SchemaVersion string        `yaml:"schema_version"`
	List          ListConfig    `yaml:"list"`
	Logging       LoggingConfig `yaml:"logging"`
	Demo          DemoConfig    `yaml:"demo"`
}

// ListConfig holds the layout parameters for the list widget.
type ListConfig struct {
	// ViewportHeight of 0 means fill the terminal.
	ViewportHeight int  `yaml:"viewport_height"`
	ItemHeight     int  `yaml:"item_height"`
	Gap            int  `yaml:"gap"`
	Columns        int  `yaml:"columns"`
	Scrollbar      bool `yaml:"scrollbar"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// DemoConfig drives the example host application.
type DemoConfig struct {
	InitialItems int `yaml:"initial_items"`
	PageSize     int `yaml:"page_size"`
	MaxItems     int `yaml:"max_items"`
	LatencyMS    int `yaml:"latency_ms"`
}

// Latency returns the simulated fetch latency.
func (d DemoConfig) Latency() time.Duration {
	return time.Duration(d.LatencyMS) * time.Millisecond
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		SchemaVersion: CurrentSchemaVersion,
		List: ListConfig{
			ViewportHeight: defaultViewportHeight,
			ItemHeight:     defaultItemHeight,
			Gap:            defaultGap,
			Columns:        defaultColumns,
			Scrollbar:      true,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
			File:   DefaultLogFile(),
		},
		Demo: DemoConfig{
			InitialItems: defaultDemoItems,
			PageSize:     defaultDemoPageSize,
			MaxItems:     defaultDemoMaxItems,
			LatencyMS:    defaultDemoLatencyMS,
		},
	}
}

// DefaultDir returns the user configuration directory for virtuallist.
func DefaultDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "virtuallist")
	}
	return filepath.Join(os.TempDir(), "virtuallist")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// DefaultLogFile returns the default log file location.
func DefaultLogFile() string {
	return filepath.Join(DefaultDir(), "logs", "virtuallist.log")
}

// Load returns defaults overlaid with the YAML file at path. A missing file
// is not an error.
func Load(path string) (*Config, error) {
	cfg := New()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err := ShallowMergeYAML(cfg, path); err != nil {
		return nil, err
	}
	if err := CheckSchemaVersion(cfg.SchemaVersion); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables read through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		return nil
	}
	ints := []struct {
		key string
		dst *int
	}{
		{EnvViewportHeight, &c.List.ViewportHeight},
		{EnvItemHeight, &c.List.ItemHeight},
		{EnvGap, &c.List.Gap},
		{EnvColumns, &c.List.Columns},
	}
	var errs []error
	for _, f := range ints {
		raw, ok := lookup(f.key)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", f.key, raw, err))
			continue
		}
		*f.dst = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.Logging.File = v
	}
	return errors.Join(errs...)
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var errs []error
	if c.List.ViewportHeight < 0 {
		errs = append(errs, fmt.Errorf("list.viewport_height must be >= 0, got %d", c.List.ViewportHeight))
	}
	if c.List.ItemHeight <= 0 {
		errs = append(errs, fmt.Errorf("list.item_height must be > 0, got %d", c.List.ItemHeight))
	}
	if c.List.Gap < 0 {
		errs = append(errs, fmt.Errorf("list.gap must be >= 0, got %d", c.List.Gap))
	}
	if c.List.Columns < 0 {
		errs = append(errs, fmt.Errorf("list.columns must be >= 0, got %d", c.List.Columns))
	}
	if c.Demo.InitialItems < 0 {
		errs = append(errs, fmt.Errorf("demo.initial_items must be >= 0, got %d", c.Demo.InitialItems))
	}
	if c.Demo.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("demo.page_size must be > 0, got %d", c.Demo.PageSize))
	}
	if c.Demo.MaxItems < c.Demo.InitialItems {
		errs = append(errs, fmt.Errorf("demo.max_items (%d) must be >= demo.initial_items (%d)",
			c.Demo.MaxItems, c.Demo.InitialItems))
	}
	if c.Demo.LatencyMS < 0 {
		errs = append(errs, fmt.Errorf("demo.latency_ms must be >= 0, got %d", c.Demo.LatencyMS))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// CheckSchemaVersion verifies that version falls inside the supported range.
// An empty version is treated as the current one.
func CheckSchemaVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedSchema, version, err)
	}
	constraint, err := semver.NewConstraint(supportedSchemas)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s (supported %s)", ErrUnsupportedSchema, version, supportedSchemas)
	}
	return nil
}
