package convert

import (
	"fmt"

	"overload-resolver/internal/types"
	"overload-resolver/primitive"
)

// Emit renders the expression a code generator produces for expr converted
// from source to target by kind, e.g. "Integer.valueOf(x)" for boxing or
// "(long) x.intValue()" for unboxing followed by widening. Returns false for
// a kind/type combination Classify would never produce.
func Emit(kind ConversionKind, source, target types.Type, expr string) (string, bool) {
	from, to := source.Primitive(), target.Primitive()

	switch kind {
	case Identity, WideningReference, UncheckedVarargsWrap:
		return expr, true
	case WideningPrimitive, NarrowingPrimitive:
		return primitive.Generate(primitive.StepCast, from, to, expr)
	case NarrowingReference:
		return fmt.Sprintf("(%s) %s", target, expr), true
	case Boxing, BoxingThenWideningReference:
		return primitive.Generate(primitive.StepBox, from, from, expr)
	case NarrowingThenBoxing:
		narrowed, ok := primitive.Generate(primitive.StepCast, from, to, expr)
		if !ok {
			return "", false
		}

		return primitive.Generate(primitive.StepBox, to, to, narrowed)
	case Unboxing:
		return primitive.Generate(primitive.StepUnbox, from, from, expr)
	case UnboxingThenWideningPrimitive:
		unboxed, ok := primitive.Generate(primitive.StepUnbox, from, from, expr)
		if !ok {
			return "", false
		}

		return primitive.Generate(primitive.StepCast, from, to, unboxed)
	default:
		return "", false
	}
}
