package conditional

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"overload-resolver/internal/config"
	"overload-resolver/internal/convert"
	"overload-resolver/internal/diagnostic"
	"overload-resolver/internal/types"
	"overload-resolver/primitive"
)

var universe = newUniverse()

func newUniverse() *types.Universe {
	u := types.NewUniverse()
	if err := u.Add(types.ClassInfo{ID: "Y"}); err != nil {
		panic(err)
	}

	return u.MustFreeze()
}

func arg(s string) convert.ArgumentDescriptor {
	return convert.Arg(types.MustParse(s))
}

func intConst(v int64) convert.ArgumentDescriptor {
	return convert.ConstArg(primitive.IntConstant(primitive.KindInt, v))
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		left  convert.ArgumentDescriptor
		right convert.ArgumentDescriptor
		want  string
		lconv convert.ConversionKind
		rconv convert.ConversionKind
	}{
		{"identical wrappers stay boxed", arg("Integer"), arg("Integer"), "Integer", convert.Identity, convert.Identity},
		{"Integer and Short promote to int", arg("Integer"), arg("Short"), "int", convert.Unboxing, convert.UnboxingThenWideningPrimitive},
		{"wrapper and its primitive unbox", arg("Integer"), arg("int"), "int", convert.Unboxing, convert.Identity},
		{"Byte and Short give short", arg("Byte"), arg("Short"), "short", convert.UnboxingThenWideningPrimitive, convert.Unboxing},
		{"short and byte give short", arg("short"), arg("byte"), "short", convert.Identity, convert.WideningPrimitive},
		{"boolean and Boolean give boolean", arg("boolean"), arg("Boolean"), "boolean", convert.Identity, convert.Unboxing},
		{"boolean and double give Object", arg("boolean"), arg("double"), "Object", convert.BoxingThenWideningReference, convert.BoxingThenWideningReference},
		{"null and int give Integer", arg("null"), arg("int"), "Integer", convert.WideningReference, convert.Boxing},
		{"long and null give Long", arg("long"), arg("null"), "Long", convert.Boxing, convert.WideningReference},
		{"null and Y give Y", arg("null"), arg("Y"), "Y", convert.WideningReference, convert.Identity},
		{"byte and fitting int constant give byte", arg("byte"), intConst(127), "byte", convert.Identity, convert.NarrowingPrimitive},
		{"int constant and char give char", intConst(65), arg("char"), "char", convert.NarrowingPrimitive, convert.Identity},
		{"byte and int constant out of range give int", arg("byte"), intConst(128), "int", convert.WideningPrimitive, convert.Identity},
		{"Byte and fitting int constant give byte", arg("Byte"), intConst(-128), "byte", convert.Unboxing, convert.NarrowingPrimitive},
		{"short and non-constant int give int", arg("short"), arg("int"), "int", convert.WideningPrimitive, convert.Identity},
		{"char and short give int", arg("char"), arg("short"), "int", convert.WideningPrimitive, convert.WideningPrimitive},
		{"int and long give long", arg("int"), arg("Long"), "long", convert.WideningPrimitive, convert.Unboxing},
		{"long and float give float", arg("long"), arg("float"), "float", convert.WideningPrimitive, convert.Identity},
		{"float and Double give double", arg("float"), arg("Double"), "double", convert.WideningPrimitive, convert.Unboxing},
		{"Integer and String give Object", arg("Integer"), arg("String"), "Object", convert.WideningReference, convert.WideningReference},
		{"Integer and Long unbox to long", arg("Integer"), arg("Long"), "long", convert.UnboxingThenWideningPrimitive, convert.Unboxing},
		{"Integer and Number give Number", arg("Integer"), arg("Number"), "Number", convert.WideningReference, convert.Identity},
		{"int and String box first", arg("int"), arg("String"), "Object", convert.BoxingThenWideningReference, convert.WideningReference},
		{"String and Y give Object", arg("String"), arg("Y"), "Object", convert.WideningReference, convert.WideningReference},
		{"int arrays", arg("int[]"), arg("null"), "int[]", convert.Identity, convert.WideningReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, _, err := Resolve(universe, nil, tt.left, tt.right, config.Default())
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Type.String(), spew.Sdump(res))
			assert.Equal(t, tt.lconv, res.Left, "left")
			assert.Equal(t, tt.rconv, res.Right, "right")
		})
	}
}

func TestResolve_Symmetric(t *testing.T) {
	operands := []convert.ArgumentDescriptor{
		arg("int"), arg("Integer"), arg("short"), arg("Short"), arg("Byte"), arg("char"),
		arg("boolean"), arg("Boolean"), arg("double"), arg("null"), arg("String"), arg("Y"),
		intConst(5), intConst(70000),
	}

	for _, l := range operands {
		for _, r := range operands {
			a, _, errA := Resolve(universe, nil, l, r, config.Default())
			b, _, errB := Resolve(universe, nil, r, l, config.Default())

			require.NoError(t, errA)
			require.NoError(t, errB)
			assert.Equal(t, a.Type, b.Type, "%s vs %s", l.StaticType, r.StaticType)
		}
	}
}

func TestResolve_Idempotent(t *testing.T) {
	for _, s := range []string{"int", "Integer", "boolean", "Object", "Y", "long[]", "null"} {
		res, findings, err := Resolve(universe, nil, arg(s), arg(s), config.Default())
		require.NoError(t, err)
		assert.Equal(t, types.MustParse(s), res.Type)
		assert.Equal(t, convert.Identity, res.Left)
		assert.Equal(t, convert.Identity, res.Right)
		assert.Empty(t, findings)

		again, _, err := Resolve(universe, nil, convert.Arg(res.Type), convert.Arg(res.Type), config.Default())
		require.NoError(t, err)
		assert.Equal(t, res.Type, again.Type)
	}
}

func TestResolve_Findings(t *testing.T) {
	_, findings, err := Resolve(universe, nil, arg("boolean"), arg("double"), config.Default())
	require.NoError(t, err)
	require.Len(t, findings, 2)
	assert.Equal(t, "The expression of type boolean is boxed into Boolean", findings[0].Message())
	assert.Equal(t, "The expression of type double is boxed into Double", findings[1].Message())

	_, findings, err = Resolve(universe, nil, arg("Integer"), arg("Short"), config.Default())
	require.NoError(t, err)
	require.Len(t, findings, 2)
	assert.Equal(t, diagnostic.UnboxingPerformed, findings[0].Kind)
	assert.Equal(t, "The expression of type Short is unboxed into short", findings[1].Message())
}

func TestResolve_SourceLevel14(t *testing.T) {
	cfg := config.Config{SourceLevel: config.Source14}

	tests := []struct {
		name  string
		left  convert.ArgumentDescriptor
		right convert.ArgumentDescriptor
		want  string
	}{
		{"numeric promotion still applies", arg("int"), arg("long"), "long"},
		{"reference assignable to the other", arg("String"), arg("Object"), "Object"},
		{"null and reference", arg("Y"), arg("null"), "Y"},
		{"wrappers are not unboxed", arg("Integer"), arg("Integer"), "Integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, findings, err := Resolve(universe, nil, tt.left, tt.right, cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Type.String())
			assert.Empty(t, findings)
		})
	}

	for _, pair := range [][2]string{{"boolean", "Y"}, {"null", "int"}, {"Integer", "int"}, {"String", "Y"}} {
		_, _, err := Resolve(universe, nil, arg(pair[0]), arg(pair[1]), cfg)

		var derr *diagnostic.Error
		require.True(t, errors.As(err, &derr), "%v", pair)
		assert.Equal(t, diagnostic.IllegalConditionalOperandTypes, derr.Finding.Kind)
	}

	_, _, err := Resolve(universe, nil, arg("boolean"), arg("Y"), cfg)
	assert.EqualError(t, err, "Incompatible conditional operand types boolean and Y")
}

func TestResolve_ConstantPropagation(t *testing.T) {
	guard := true

	res, _, err := Resolve(universe, &guard, intConst(3), convert.ConstArg(primitive.FloatConstant(primitive.KindDouble, 1.5)), config.Default())
	require.NoError(t, err)
	require.NotNil(t, res.Constant)
	assert.Equal(t, "double", res.Type.String())
	assert.Equal(t, primitive.KindDouble, res.Constant.Kind)
	assert.InDelta(t, 3.0, res.Constant.Float, 1e-9)

	guard = false

	res, _, err = Resolve(universe, &guard, convert.ConstArg(primitive.IntConstant(primitive.KindChar, 'a')), intConst(66), config.Default())
	require.NoError(t, err)
	require.NotNil(t, res.Constant)
	assert.Equal(t, "char", res.Type.String())
	assert.Equal(t, "'B'", res.Constant.String())

	res, _, err = Resolve(universe, nil, intConst(1), intConst(2), config.Default())
	require.NoError(t, err)
	assert.Nil(t, res.Constant)

	res, _, err = Resolve(universe, &guard, intConst(1), arg("int"), config.Default())
	require.NoError(t, err)
	assert.Nil(t, res.Constant)
}

func TestResolve_InvalidOperand(t *testing.T) {
	_, _, err := Resolve(universe, nil, convert.ArgumentDescriptor{}, arg("int"), config.Default())
	require.Error(t, err)

	var derr *diagnostic.Error
	assert.False(t, errors.As(err, &derr))
}

func TestConversionFinding_NamesTargetWrapper(t *testing.T) {
	f, ok := conversionFinding(types.MustParse("int"), types.MustParse("Short"), convert.NarrowingThenBoxing, 1)
	require.True(t, ok)
	assert.Equal(t, diagnostic.BoxingPerformed, f.Kind)
	assert.Equal(t, "The expression of type int is boxed into Short", f.Message())

	_, ok = conversionFinding(types.MustParse("int"), types.MustParse("long"), convert.WideningPrimitive, 0)
	assert.False(t, ok)
}
