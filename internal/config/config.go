package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"overload-resolver/internal/diagnostic"
)

// Config holds the engine options.
type Config struct {
	// SourceLevel below 1.5 disables boxing, unboxing and variable arity.
	SourceLevel SourceLevel `yaml:"source,omitempty" toml:"source"`
	// Jobs bounds batch parallelism; 0 means one job per CPU.
	Jobs int `yaml:"jobs,omitempty" toml:"jobs"`
	// Severities override the severity of diagnostics by code, e.g.
	// boxing: warning.
	Severities map[string]string `yaml:"severities,omitempty" toml:"severities"`
}

// Default returns the options used when nothing is configured.
func Default() Config {
	return Config{SourceLevel: SourceLatest}
}

// Boxing reports whether boxing and unboxing conversions exist.
func (c Config) Boxing() bool {
	return c.SourceLevel.Effective() >= Source15
}

// Varargs reports whether variable arity invocation exists.
func (c Config) Varargs() bool {
	return c.SourceLevel.Effective() >= Source15
}

// Policy builds the diagnostic policy from Severities.
func (c Config) Policy() (diagnostic.Policy, error) {
	return diagnostic.NewPolicy(c.Severities)
}

// Validate checks option ranges and severity names.
func (c Config) Validate() error {
	var errs []error

	if c.SourceLevel != 0 && c.SourceLevel < Source14 {
		errs = append(errs, fmt.Errorf("source level %d is below 1.4", c.SourceLevel))
	}

	if c.Jobs < 0 {
		errs = append(errs, fmt.Errorf("jobs must not be negative, got %d", c.Jobs))
	}

	if _, err := c.Policy(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Merge overlays the options set in other on c.
func (c Config) Merge(other Config) Config {
	if other.SourceLevel != 0 {
		c.SourceLevel = other.SourceLevel
	}

	if other.Jobs != 0 {
		c.Jobs = other.Jobs
	}

	if len(other.Severities) > 0 {
		merged := make(map[string]string, len(c.Severities)+len(other.Severities))
		for k, v := range c.Severities {
			merged[k] = v
		}

		for k, v := range other.Severities {
			merged[k] = v
		}

		c.Severities = merged
	}

	return c
}

// Format is a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the syntax from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported config file extension %q", filepath.Ext(path))
	}
}

// LoadFile reads, parses and validates a configuration file. Options not set
// in the file keep their Default values.
func LoadFile(path string) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data, format)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes configuration data. Unknown keys are rejected.
func Parse(data []byte, format Format) (Config, error) {
	var file Config

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)

		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	case FormatTOML:
		meta, err := toml.Decode(string(data), &file)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config TOML: %w", err)
		}

		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format %q", format)
	}

	cfg := Default().Merge(file)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
