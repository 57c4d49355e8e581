package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SourceLevel is a language level: 4 for 1.4, 5 for 1.5, 8 for 1.8, 17 for 17.
// The zero value means the latest level.
type SourceLevel int

const (
	Source14     SourceLevel = 4
	Source15     SourceLevel = 5
	SourceLatest SourceLevel = 21
)

// ParseSourceLevel accepts "1.4" through "1.8" and plain feature numbers.
func ParseSourceLevel(s string) (SourceLevel, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "1.")

	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid source level %q", s)
	}

	if n < int(Source14) {
		return 0, fmt.Errorf("source level %q is below 1.4", s)
	}

	return SourceLevel(n), nil
}

// Effective resolves the zero value to SourceLatest.
func (l SourceLevel) Effective() SourceLevel {
	if l == 0 {
		return SourceLatest
	}

	return l
}

// String prints 1.x for levels up to 8.
func (l SourceLevel) String() string {
	l = l.Effective()
	if l <= 8 {
		return "1." + strconv.Itoa(int(l))
	}

	return strconv.Itoa(int(l))
}

// UnmarshalYAML accepts numbers and strings: 1.4, "1.5", 17.
func (l *SourceLevel) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: source level must be a scalar", node.Line)
	}

	v, err := ParseSourceLevel(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*l = v

	return nil
}

// MarshalYAML writes the level as a string so 1.5 never turns into 1.50.
func (l SourceLevel) MarshalYAML() (any, error) {
	return l.String(), nil
}

// UnmarshalTOML accepts TOML strings, floats and integers.
func (l *SourceLevel) UnmarshalTOML(data any) error {
	var s string

	switch v := data.(type) {
	case string:
		s = v
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		s = strconv.FormatInt(v, 10)
	default:
		return fmt.Errorf("source level must be a string or number, got %T", data)
	}

	v, err := ParseSourceLevel(s)
	if err != nil {
		return err
	}

	*l = v

	return nil
}
