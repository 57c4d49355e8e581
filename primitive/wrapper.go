package primitive

// Wrapper is the boxed counterpart of a primitive kind. Values are aligned with
// KindEnum so that the boxing table stays a bijection by construction.
type Wrapper int

const (
	_ Wrapper = iota

	WrapperBoolean
	WrapperByte
	WrapperShort
	WrapperCharacter
	WrapperInteger
	WrapperLong
	WrapperFloat
	WrapperDouble
)

var wrapperClasses = [...]string{
	WrapperBoolean:   "java.lang.Boolean",
	WrapperByte:      "java.lang.Byte",
	WrapperShort:     "java.lang.Short",
	WrapperCharacter: "java.lang.Character",
	WrapperInteger:   "java.lang.Integer",
	WrapperLong:      "java.lang.Long",
	WrapperFloat:     "java.lang.Float",
	WrapperDouble:    "java.lang.Double",
}

var wrapperNames = [...]string{
	WrapperBoolean:   "Boolean",
	WrapperByte:      "Byte",
	WrapperShort:     "Short",
	WrapperCharacter: "Character",
	WrapperInteger:   "Integer",
	WrapperLong:      "Long",
	WrapperFloat:     "Float",
	WrapperDouble:    "Double",
}

func (w Wrapper) IsValid() bool {
	return w > 0 && int(w) < KindTotal
}

// ClassName returns the fully qualified class name, e.g. "java.lang.Integer".
func (w Wrapper) ClassName() string {
	if !w.IsValid() {
		return ""
	}

	return wrapperClasses[w]
}

// String returns the simple class name, e.g. "Integer".
func (w Wrapper) String() string {
	if !w.IsValid() {
		return "Wrapper(invalid)"
	}

	return wrapperNames[w]
}

// Box returns the only wrapper a primitive kind boxes into.
func Box(k KindEnum) (Wrapper, bool) {
	if !k.IsValid() {
		return 0, false
	}

	return Wrapper(k), true
}

// Unbox returns the only primitive kind a wrapper unboxes into.
func Unbox(w Wrapper) (KindEnum, bool) {
	if !w.IsValid() {
		return 0, false
	}

	return KindEnum(w), true
}

// WrapperByClass maps a class name (qualified or simple) to a wrapper.
// Returns zero value for classes that are not primitive wrappers.
func WrapperByClass(name string) Wrapper {
	for w := WrapperBoolean; int(w) < KindTotal; w++ {
		if wrapperClasses[w] == name || wrapperNames[w] == name {
			return w
		}
	}

	return 0
}
