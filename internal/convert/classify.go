package convert

import (
	"overload-resolver/internal/types"
	"overload-resolver/primitive"
)

// ArgumentDescriptor is an expression as seen by the engine: its static type
// and, for constant expressions, its value.
type ArgumentDescriptor struct {
	StaticType types.Type
	IsConstant bool
	Constant   *primitive.Constant
}

// Arg describes a non-constant expression of type t.
func Arg(t types.Type) ArgumentDescriptor {
	return ArgumentDescriptor{StaticType: t}
}

// ConstArg describes a primitive constant expression.
func ConstArg(c primitive.Constant) ArgumentDescriptor {
	return ArgumentDescriptor{
		StaticType: types.Prim(c.Kind),
		IsConstant: true,
		Constant:   &c,
	}
}

// Classify determines the conversion from source to target permitted in ctx.
// Returns false when no conversion applies; this is a normal outcome, not an
// error. Constant narrowing needs a value, see ClassifyArgument.
func Classify(u *types.Universe, source, target types.Type, ctx Context) (ConversionKind, bool) {
	if !source.IsValid() || !target.IsValid() {
		return NoConversion, false
	}

	if kind, ok := classifyStrict(u, source, target); ok {
		return kind, true
	}

	if !ctx.allowsBoxing() {
		return NoConversion, false
	}

	if kind, ok := classifyBoxing(u, source, target); ok {
		return kind, true
	}

	if ctx == Casting {
		return classifyCast(u, source, target)
	}

	return NoConversion, false
}

// ClassifyArgument is Classify for an expression. In assignment and casting
// contexts a constant of kind byte, short, char or int whose value fits may
// additionally be narrowed to byte, short or char, and then boxed into
// Byte, Short or Character.
func ClassifyArgument(u *types.Universe, arg ArgumentDescriptor, target types.Type, ctx Context) (ConversionKind, bool) {
	if kind, ok := Classify(u, arg.StaticType, target, ctx); ok {
		return kind, true
	}

	if ctx != Assignment && ctx != Casting {
		return NoConversion, false
	}

	if !arg.IsConstant || arg.Constant == nil || !arg.StaticType.IsPrimitive() {
		return NoConversion, false
	}

	from := arg.StaticType.Primitive()
	to := target.Primitive()

	if !primitive.IsNarrowing(from, to) || !arg.Constant.CanNarrowTo(to) {
		return NoConversion, false
	}

	switch {
	case target.IsPrimitive():
		return NarrowingPrimitive, true
	case target.IsWrapper():
		return NarrowingThenBoxing, true
	default:
		return NoConversion, false
	}
}

func classifyStrict(u *types.Universe, source, target types.Type) (ConversionKind, bool) {
	if source == target {
		return Identity, true
	}

	if source.IsPrimitive() && target.IsPrimitive() {
		if primitive.IsWidening(source.Primitive(), target.Primitive()) {
			return WideningPrimitive, true
		}

		return NoConversion, false
	}

	if source.IsReference() && target.IsReference() && u.IsSubtype(source, target) {
		return WideningReference, true
	}

	return NoConversion, false
}

// classifyBoxing allows exactly one boxing or unboxing step. The boxing target
// is fixed by the primitive table, so int never reaches Long.
func classifyBoxing(u *types.Universe, source, target types.Type) (ConversionKind, bool) {
	switch {
	case source.IsPrimitive() && target.IsReference():
		boxed, _ := source.Box()
		if boxed == target {
			return Boxing, true
		}

		if u.IsSubtype(boxed, target) {
			return BoxingThenWideningReference, true
		}
	case source.IsWrapper() && target.IsPrimitive():
		unboxed, _ := source.Unbox()
		if unboxed == target {
			return Unboxing, true
		}

		if primitive.IsWidening(unboxed.Primitive(), target.Primitive()) {
			return UnboxingThenWideningPrimitive, true
		}
	}

	return NoConversion, false
}

func classifyCast(u *types.Universe, source, target types.Type) (ConversionKind, bool) {
	switch {
	case source.IsPrimitive() && target.IsPrimitive():
		if primitive.IsNarrowing(source.Primitive(), target.Primitive()) {
			return NarrowingPrimitive, true
		}
	case source.IsReference() && target.IsReference() && !source.IsNull():
		if u.IsSubtype(target, source) {
			return NarrowingReference, true
		}
	}

	return NoConversion, false
}
