package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"overload-resolver/internal/config"
)

// LoadFile loads and parses a YAML scenario file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	f.Config = config.Default().Merge(f.Config)

	for i := range f.Calls {
		c := &f.Calls[i]
		if c.Site == "" {
			c.Site = fmt.Sprintf("call#%d", i+1)
		}
	}

	for i := range f.Conditionals {
		c := &f.Conditionals[i]
		if c.Site == "" {
			c.Site = fmt.Sprintf("conditional#%d", i+1)
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}
