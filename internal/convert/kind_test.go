package convert

import (
	"testing"

	"overload-resolver/internal/common"
	"overload-resolver/internal/types"
)

func TestConversionKind_String(t *testing.T) {
	tests := []struct {
		kind     ConversionKind
		expected string
	}{
		{Identity, "identity"},
		{WideningPrimitive, "widening_primitive"},
		{Boxing, "boxing"},
		{UnboxingThenWideningPrimitive, "unboxing_then_widening_primitive"},
		{UncheckedVarargsWrap, "varargs_wrap"},
		{ConversionKind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("ConversionKind.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestConversionKind_CostOrdering(t *testing.T) {
	// Verify the ordering the applicability phases rely on
	ordered := []ConversionKind{
		Identity,
		WideningPrimitive,
		WideningReference,
		Boxing,
		BoxingThenWideningReference,
		Unboxing,
		UncheckedVarargsWrap,
	}

	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("%s should cost less than %s", ordered[i-1], ordered[i])
		}
	}
}

func TestConversionKind_Predicates(t *testing.T) {
	for k := Identity; k <= UncheckedVarargsWrap; k++ {
		if k.IsBoxing() && k.IsUnboxing() {
			t.Errorf("%s cannot both box and unbox", k)
		}

		if k.IsStrict() && (k.IsBoxing() || k.IsUnboxing()) {
			t.Errorf("%s cannot be strict and box/unbox", k)
		}

		if k.String() == common.UnknownStr {
			t.Errorf("%d has no name", k)
		}
	}
}

func TestConversionKind_Pivot(t *testing.T) {
	tests := []struct {
		kind           ConversionKind
		source, target string
		want           string
		ok             bool
	}{
		{Boxing, "int", "Integer", "Integer", true},
		{BoxingThenWideningReference, "int", "Number", "Integer", true},
		{NarrowingThenBoxing, "int", "Short", "Short", true},
		{Unboxing, "Long", "long", "long", true},
		{UnboxingThenWideningPrimitive, "Byte", "int", "byte", true},
		{WideningPrimitive, "int", "long", "", false},
		{UncheckedVarargsWrap, "int", "Object", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got, ok := tt.kind.Pivot(types.MustParse(tt.source), types.MustParse(tt.target))
			if ok != tt.ok {
				t.Fatalf("Pivot ok = %v, want %v", ok, tt.ok)
			}

			if ok && got.String() != tt.want {
				t.Errorf("Pivot = %s, want %s", got, tt.want)
			}
		})
	}
}
