package primitive

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindBoolean
	KindByte
	KindShort
	KindChar
	KindInt
	KindLong
	KindFloat
	KindDouble

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var kindNames = [...]string{
	KindBoolean: "boolean",
	KindByte:    "byte",
	KindShort:   "short",
	KindChar:    "char",
	KindInt:     "int",
	KindLong:    "long",
	KindFloat:   "float",
	KindDouble:  "double",
}

// Kinds lists every valid primitive kind in declaration order.
func Kinds() []KindEnum {
	res := make([]KindEnum, 0, KindTotal-1)
	for k := KindBoolean; int(k) < KindTotal; k++ {
		res = append(res, k)
	}

	return res
}

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// Name returns the source spelling of the kind, e.g. "int".
func (k KindEnum) Name() string {
	if !k.IsValid() {
		return k.String()
	}

	return kindNames[k]
}

func (k KindEnum) IsNumeric() bool {
	switch k {
	default:
		return false
	case KindByte, KindShort, KindChar, KindInt, KindLong, KindFloat, KindDouble:
		return true
	}
}

func (k KindEnum) IsIntegral() bool {
	switch k {
	default:
		return false
	case KindByte, KindShort, KindChar, KindInt, KindLong:
		return true
	}
}

func (k KindEnum) IsFloating() bool {
	switch k {
	default:
		return false
	case KindFloat, KindDouble:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds have a meaningful bits amount, but requested for: " + k.Name())
	case KindByte:
		return 8
	case KindShort, KindChar:
		return 16
	case KindInt, KindFloat:
		return 32
	case KindLong, KindDouble:
		return 64
	}
}

// FromName parses a primitive type name as written in source.
// Returns zero value when name is not a primitive.
func FromName(name string) KindEnum {
	for k := KindBoolean; int(k) < KindTotal; k++ {
		if kindNames[k] == name {
			return k
		}
	}

	return 0
}
