package primitive

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// Constant is the compile-time value of a constant expression of primitive
// type. Integral kinds (char included) use Int, floating kinds use Float,
// boolean uses Bool.
type Constant struct {
	Kind  KindEnum
	Int   int64
	Float float64
	Bool  bool
}

// IntConstant builds an integral constant of the given kind.
func IntConstant(k KindEnum, v int64) Constant {
	return Constant{Kind: k, Int: v}
}

// FloatConstant builds a floating-point constant of the given kind.
func FloatConstant(k KindEnum, v float64) Constant {
	return Constant{Kind: k, Float: v}
}

// BoolConstant builds a boolean constant.
func BoolConstant(v bool) Constant {
	return Constant{Kind: KindBoolean, Bool: v}
}

// FitsIn reports whether an integral constant is representable in the target
// integral kind without loss. Integral values are range checked even when
// the kinds match. Floating and boolean constants fit only their own kind.
func (c Constant) FitsIn(target KindEnum) bool {
	if !c.Kind.IsIntegral() || !target.IsIntegral() {
		return c.Kind == target
	}

	var err error

	switch target {
	case KindByte:
		_, err = safecast.Conv[int8](c.Int)
	case KindShort:
		_, err = safecast.Conv[int16](c.Int)
	case KindChar:
		_, err = safecast.Conv[uint16](c.Int)
	case KindInt:
		_, err = safecast.Conv[int32](c.Int)
	case KindLong:
		return true
	}

	return err == nil
}

// CanNarrowTo reports the assignment-context rule: a constant of kind byte,
// short, char or int may be narrowed to byte, short or char when the value
// fits.
func (c Constant) CanNarrowTo(target KindEnum) bool {
	switch c.Kind {
	case KindByte, KindShort, KindChar, KindInt:
	default:
		return false
	}

	switch target {
	case KindByte, KindShort, KindChar:
		return c.FitsIn(target)
	default:
		return false
	}
}

// As converts the constant to another kind following the primitive
// conversion semantics of the target. Boolean never converts to numeric.
func (c Constant) As(target KindEnum) (Constant, bool) {
	if c.Kind == target {
		return c, true
	}

	if !c.Kind.IsNumeric() || !target.IsNumeric() {
		return Constant{}, false
	}

	res := Constant{Kind: target}

	switch {
	case target.IsFloating() && c.Kind.IsFloating():
		res.Float = c.Float
	case target.IsFloating():
		res.Float = float64(c.Int)
	case c.Kind.IsFloating():
		res.Int = truncate(target, int64(c.Float))
	default:
		res.Int = truncate(target, c.Int)
	}

	return res, true
}

func truncate(k KindEnum, v int64) int64 {
	switch k {
	case KindByte:
		return int64(int8(v))
	case KindShort:
		return int64(int16(v))
	case KindChar:
		return int64(uint16(v))
	case KindInt:
		return int64(int32(v))
	default:
		return v
	}
}

func (c Constant) String() string {
	switch {
	case c.Kind == KindBoolean:
		return strconv.FormatBool(c.Bool)
	case c.Kind == KindChar:
		return strconv.QuoteRune(rune(c.Int))
	case c.Kind.IsFloating():
		return strconv.FormatFloat(c.Float, 'g', -1, 64)
	default:
		return strconv.FormatInt(c.Int, 10)
	}
}

// ParseConstant reads a literal of kind k: "true", "'a'", "127", "0x7f",
// "1.5". Integral literals must fit the kind.
func ParseConstant(k KindEnum, text string) (Constant, error) {
	text = strings.TrimSpace(text)

	switch {
	case k == KindBoolean:
		v, err := strconv.ParseBool(text)
		if err != nil {
			return Constant{}, fmt.Errorf("invalid boolean literal %q", text)
		}

		return BoolConstant(v), nil
	case k == KindChar && strings.HasPrefix(text, "'"):
		r, _, tail, err := strconv.UnquoteChar(strings.TrimSuffix(text[1:], "'"), '\'')
		if err != nil || tail != "" || !strings.HasSuffix(text, "'") || len(text) < 3 {
			return Constant{}, fmt.Errorf("invalid char literal %q", text)
		}

		c := IntConstant(KindChar, int64(r))
		if !c.FitsIn(KindChar) {
			return Constant{}, fmt.Errorf("char literal %s is outside the UTF-16 code unit range", text)
		}

		return c, nil
	case k.IsIntegral():
		v, err := strconv.ParseInt(strings.ReplaceAll(text, "_", ""), 0, 64)
		if err != nil {
			return Constant{}, fmt.Errorf("invalid %s literal %q", k.Name(), text)
		}

		if !IntConstant(KindLong, v).FitsIn(k) {
			return Constant{}, fmt.Errorf("literal %s does not fit in %s", text, k.Name())
		}

		return IntConstant(k, v), nil
	case k.IsFloating():
		v, err := strconv.ParseFloat(strings.TrimRight(text, "fFdD"), 64)
		if err != nil {
			return Constant{}, fmt.Errorf("invalid %s literal %q", k.Name(), text)
		}

		return FloatConstant(k, v), nil
	default:
		return Constant{}, fmt.Errorf("kind %s has no literals", k.Name())
	}
}
