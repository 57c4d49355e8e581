package convert

import "overload-resolver/internal/common"

// Context selects the set of permitted conversions.
type Context int

const (
	// Strict - identity and widening only (first applicability phase).
	Strict Context = iota + 1
	// Loose - strict plus one boxing or unboxing step (second phase).
	Loose
	// Varargs - loose, applied element-wise to variable-arity arguments (third phase).
	Varargs
	// Assignment - loose plus constant narrowing, optionally followed by boxing.
	Assignment
	// Casting - assignment plus any primitive narrowing and reference downcasts.
	Casting
)

// String returns a human-readable name for the context.
func (c Context) String() string {
	switch c {
	case Strict:
		return "strict"
	case Loose:
		return "loose"
	case Varargs:
		return "varargs"
	case Assignment:
		return "assignment"
	case Casting:
		return "casting"
	default:
		return common.UnknownStr
	}
}

func (c Context) allowsBoxing() bool {
	return c != Strict
}
