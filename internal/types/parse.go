package types

import (
	"fmt"
	"strings"

	"overload-resolver/primitive"
)

// Parse reads a type written in source form: "int", "Integer",
// "java.lang.Number", "int[][]", "String..." (variable arity is one array
// dimension) or "null". Generic arguments are erased.
func Parse(s string) (Type, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Type{}, fmt.Errorf("empty type")
	}

	dims := 0

	for {
		switch {
		case strings.HasSuffix(s, "[]"):
			s = strings.TrimSpace(strings.TrimSuffix(s, "[]"))
		case strings.HasSuffix(s, "..."):
			s = strings.TrimSpace(strings.TrimSuffix(s, "..."))
		default:
			return parseBase(s, dims)
		}

		dims++
	}
}

// MustParse is Parse for literals in tests and tables.
func MustParse(s string) Type {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return t
}

func parseBase(s string, dims int) (Type, error) {
	if i := strings.IndexByte(s, '<'); i >= 0 {
		if !strings.HasSuffix(s, ">") {
			return Type{}, fmt.Errorf("unbalanced type arguments in %q", s)
		}

		s = strings.TrimSpace(s[:i])
	}

	if s == "" {
		return Type{}, fmt.Errorf("missing type name")
	}

	var t Type

	switch {
	case s == "null":
		if dims > 0 {
			return Type{}, fmt.Errorf("null type cannot be an array element")
		}

		return Null(), nil
	case primitive.FromName(s) != 0:
		t = Prim(primitive.FromName(s))
	default:
		if strings.ContainsAny(s, " \t()[],") {
			return Type{}, fmt.Errorf("invalid type name %q", s)
		}

		t = Class(s)
	}

	for range dims {
		t = ArrayOf(t)
	}

	return t, nil
}
