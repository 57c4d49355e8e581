package convert

import (
	"overload-resolver/internal/common"
	"overload-resolver/internal/types"
)

// ConversionKind classifies a conversion. Values are ordered by cost: a
// cheaper conversion is never considered equally specific to a costlier one.
type ConversionKind int

const (
	// NoConversion is the zero value; it never classifies an existing conversion.
	NoConversion ConversionKind = iota
	// Identity - source and target are the same type.
	Identity
	// WideningPrimitive - e.g. int -> long.
	WideningPrimitive
	// WideningReference - subtype to supertype, null to any reference.
	WideningReference
	// NarrowingPrimitive - constant narrowing in assignment context or an explicit cast.
	NarrowingPrimitive
	// NarrowingReference - downcast, casting context only.
	NarrowingReference
	// Boxing - primitive to its own wrapper.
	Boxing
	// BoxingThenWideningReference - e.g. byte -> Byte -> Number.
	BoxingThenWideningReference
	// NarrowingThenBoxing - constant int 127 -> byte -> Byte.
	NarrowingThenBoxing
	// Unboxing - wrapper to its own primitive.
	Unboxing
	// UnboxingThenWideningPrimitive - e.g. Byte -> byte -> int.
	UnboxingThenWideningPrimitive
	// UncheckedVarargsWrap - trailing arguments collected into the variable-arity array.
	UncheckedVarargsWrap
)

// String returns a human-readable name for the conversion kind.
func (c ConversionKind) String() string {
	switch c {
	case NoConversion:
		return "none"
	case Identity:
		return "identity"
	case WideningPrimitive:
		return "widening_primitive"
	case WideningReference:
		return "widening_reference"
	case NarrowingPrimitive:
		return "narrowing_primitive"
	case NarrowingReference:
		return "narrowing_reference"
	case Boxing:
		return "boxing"
	case BoxingThenWideningReference:
		return "boxing_then_widening_reference"
	case NarrowingThenBoxing:
		return "narrowing_then_boxing"
	case Unboxing:
		return "unboxing"
	case UnboxingThenWideningPrimitive:
		return "unboxing_then_widening_primitive"
	case UncheckedVarargsWrap:
		return "varargs_wrap"
	default:
		return common.UnknownStr
	}
}

// IsBoxing reports conversions that box a primitive value.
func (c ConversionKind) IsBoxing() bool {
	return c == Boxing || c == BoxingThenWideningReference || c == NarrowingThenBoxing
}

// IsUnboxing reports conversions that unbox a wrapper value.
func (c ConversionKind) IsUnboxing() bool {
	return c == Unboxing || c == UnboxingThenWideningPrimitive
}

// Pivot returns the wrapper a boxing conversion from source to target boxes
// into, or the primitive an unboxing conversion unboxes into: Short for the
// constant narrowing int -> short -> Short, Integer for int -> Integer ->
// Number. Returns false for kinds that neither box nor unbox.
func (c ConversionKind) Pivot(source, target types.Type) (types.Type, bool) {
	switch {
	case c == BoxingThenWideningReference:
		return source.Box()
	case c == UnboxingThenWideningPrimitive:
		return source.Unbox()
	case c.IsBoxing() || c.IsUnboxing():
		return target, true
	default:
		return types.Type{}, false
	}
}

// IsStrict reports conversions permitted in strict invocation contexts.
func (c ConversionKind) IsStrict() bool {
	return c == Identity || c == WideningPrimitive || c == WideningReference
}
