package conditional

import (
	"fmt"

	"overload-resolver/internal/config"
	"overload-resolver/internal/convert"
	"overload-resolver/internal/diagnostic"
	"overload-resolver/internal/types"
	"overload-resolver/primitive"
)

// Result is the type of a conditional expression and the conversion each
// operand undergoes to reach it.
type Result struct {
	Type  types.Type
	Left  convert.ConversionKind
	Right convert.ConversionKind
	// Constant is set when the guard and both operands are constant and the
	// result is primitive: the chosen operand converted to Type.
	Constant *primitive.Constant
}

// Resolve types "guard ? left : right". guard is nil unless the condition is
// a constant expression. Failures are returned as *diagnostic.Error carrying
// an IllegalConditionalOperandTypes finding; the findings slice holds the
// advisory boxing and unboxing findings of a successful result.
func Resolve(u *types.Universe, guard *bool, left, right convert.ArgumentDescriptor, cfg config.Config) (Result, []diagnostic.Finding, error) {
	lt, rt := left.StaticType, right.StaticType
	if !lt.IsValid() || !rt.IsValid() {
		return Result{}, nil, fmt.Errorf("conditional operand has no type")
	}

	target, ok := resultType(u, left, right, cfg.Boxing())
	if !ok {
		return Result{}, nil, diagnostic.NewError(diagnostic.Finding{
			Kind:          diagnostic.IllegalConditionalOperandTypes,
			ArgumentIndex: -1,
			From:          lt,
			To:            rt,
		})
	}

	res := Result{Type: target}

	var findings []diagnostic.Finding

	for i, side := range []convert.ArgumentDescriptor{left, right} {
		kind, ok := convert.ClassifyArgument(u, side, target, convert.Assignment)
		if !ok {
			return Result{}, nil, fmt.Errorf("operand %d: no conversion from %s to %s", i, side.StaticType, target)
		}

		if i == 0 {
			res.Left = kind
		} else {
			res.Right = kind
		}

		if f, ok := conversionFinding(side.StaticType, target, kind, i); ok {
			findings = append(findings, f)
		}
	}

	res.Constant = propagate(guard, left, right, target)

	return res, findings, nil
}

// resultType follows the compiler: unbox numeric and boolean wrappers,
// special-case byte/short pairs and fitting int constants, promote numeric
// operands, and otherwise box and take the least upper bound. Without
// boxing one operand must convert to the other.
func resultType(u *types.Universe, left, right convert.ArgumentDescriptor, boxing bool) (types.Type, bool) {
	lt, rt := left.StaticType, right.StaticType

	if boxing && lt != rt {
		lt, rt = unboxOperands(lt, rt)
	}

	if lt == rt {
		return lt, true
	}

	if lt.IsNumeric() && rt.IsNumeric() {
		return numericType(left, right, lt, rt), true
	}

	if lt.IsPrimitive() {
		if !boxing {
			return types.Type{}, false
		}

		lt, _ = lt.Box()
	}

	if rt.IsPrimitive() {
		if !boxing {
			return types.Type{}, false
		}

		rt, _ = rt.Box()
	}

	switch {
	case lt.IsNull():
		return rt, true
	case rt.IsNull():
		return lt, true
	case boxing:
		return u.Lub(lt, rt)
	case u.IsSubtype(rt, lt):
		return lt, true
	case u.IsSubtype(lt, rt):
		return rt, true
	default:
		return types.Type{}, false
	}
}

// unboxOperands applies the unboxing the compiler performs before
// comparing operand types. A null operand next to a primitive boxes it.
func unboxOperands(lt, rt types.Type) (types.Type, types.Type) {
	unbox := func(t types.Type) types.Type {
		if p, ok := t.Unbox(); ok {
			return p
		}

		return t
	}

	switch {
	case lt.IsNull() && rt.IsPrimitive():
		rt, _ = rt.Box()
	case rt.IsNull() && lt.IsPrimitive():
		lt, _ = lt.Box()
	case lt.IsPrimitive() && !rt.IsNull():
		rt = unbox(rt)
	case rt.IsPrimitive() && !lt.IsNull():
		lt = unbox(lt)
	case !lt.IsPrimitive() && !rt.IsPrimitive():
		if ul, ur := unbox(lt), unbox(rt); ul.IsNumeric() && ur.IsNumeric() {
			lt, rt = ul, ur
		}
	}

	return lt, rt
}

func numericType(left, right convert.ArgumentDescriptor, lt, rt types.Type) types.Type {
	l, r := lt.Primitive(), rt.Primitive()

	if (l == primitive.KindByte && r == primitive.KindShort) || (l == primitive.KindShort && r == primitive.KindByte) {
		return types.Prim(primitive.KindShort)
	}

	if narrowsWithConstant(l, right) {
		return lt
	}

	if narrowsWithConstant(r, left) {
		return rt
	}

	for _, k := range []primitive.KindEnum{primitive.KindInt, primitive.KindLong, primitive.KindFloat} {
		if widensTo(l, k) && widensTo(r, k) {
			return types.Prim(k)
		}
	}

	return types.Prim(primitive.KindDouble)
}

// narrowsWithConstant reports byte, short or char next to an int constant
// representable in it.
func narrowsWithConstant(k primitive.KindEnum, other convert.ArgumentDescriptor) bool {
	switch k {
	case primitive.KindByte, primitive.KindShort, primitive.KindChar:
	default:
		return false
	}

	return other.StaticType == types.Prim(primitive.KindInt) &&
		other.IsConstant && other.Constant != nil && other.Constant.FitsIn(k)
}

func widensTo(from, to primitive.KindEnum) bool {
	return from == to || primitive.IsWidening(from, to)
}

func conversionFinding(src, target types.Type, kind convert.ConversionKind, index int) (diagnostic.Finding, bool) {
	pivot, ok := kind.Pivot(src, target)
	if !ok {
		return diagnostic.Finding{}, false
	}

	f := diagnostic.Finding{Kind: diagnostic.BoxingPerformed, ArgumentIndex: index, From: src, To: pivot}
	if kind.IsUnboxing() {
		f.Kind = diagnostic.UnboxingPerformed
	}

	return f, true
}

func propagate(guard *bool, left, right convert.ArgumentDescriptor, target types.Type) *primitive.Constant {
	if guard == nil || !target.IsPrimitive() {
		return nil
	}

	if !left.IsConstant || !right.IsConstant || left.Constant == nil || right.Constant == nil {
		return nil
	}

	chosen := *right.Constant
	if *guard {
		chosen = *left.Constant
	}

	res, ok := chosen.As(target.Primitive())
	if !ok {
		return nil
	}

	return &res
}
