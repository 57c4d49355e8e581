package scenario

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts a bare type or a {type, const} mapping.
func (a *Argument) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}

		*a = Argument{Type: s}

		return nil
	case yaml.MappingNode:
		type plain Argument

		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}

		*a = Argument(p)

		return nil
	default:
		return fmt.Errorf("line %d: expected type or {type, const}, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML writes non-constant arguments as a bare type.
func (a Argument) MarshalYAML() (any, error) {
	if !a.IsConstant() {
		return a.Type, nil
	}

	type plain Argument

	return plain(a), nil
}
