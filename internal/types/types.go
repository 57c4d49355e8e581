package types

import (
	"strings"

	"overload-resolver/internal/common"
	"overload-resolver/primitive"
)

// Kind is the discriminator of the closed Type variant.
type Kind int

const (
	KindInvalid   Kind = iota
	KindPrimitive      // boolean, byte, short, char, int, long, float, double
	KindWrapper        // the boxed counterpart of a primitive
	KindReference      // any other class or interface
	KindArray          // array of another type
	KindNull           // the type of the null literal
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindWrapper:
		return "wrapper"
	case KindReference:
		return "reference"
	case KindArray:
		return "array"
	case KindNull:
		return "null"
	default:
		return common.UnknownStr
	}
}

// Type is a comparable value describing one static type. Arrays are stored as
// their innermost element plus a dimension count, so == is structural
// equality and Type can key maps.
type Type struct {
	base  Kind
	prim  primitive.KindEnum // for primitives and wrappers
	class string             // for references, qualified class name
	dims  uint8
}

// Prim returns the primitive type of kind k.
func Prim(k primitive.KindEnum) Type {
	return Type{base: KindPrimitive, prim: k}
}

// Wrapper returns the wrapper class type boxing primitive kind k.
func Wrapper(k primitive.KindEnum) Type {
	return Type{base: KindWrapper, prim: k}
}

// Class returns the reference type for a class name. Wrapper class names and
// the simple names of well-known java.lang classes are normalized.
func Class(id string) Type {
	if w := primitive.WrapperByClass(id); w != 0 {
		k, _ := primitive.Unbox(w)
		return Wrapper(k)
	}

	if full, ok := wellKnown[id]; ok {
		id = full
	}

	return Type{base: KindReference, class: id}
}

// ArrayOf returns the array type with elements of type elem.
func ArrayOf(elem Type) Type {
	elem.dims++
	return elem
}

// Null returns the null type.
func Null() Type {
	return Type{base: KindNull}
}

// Kind returns the variant of t.
func (t Type) Kind() Kind {
	if t.dims > 0 {
		return KindArray
	}

	return t.base
}

func (t Type) IsValid() bool     { return t.base != KindInvalid }
func (t Type) IsPrimitive() bool { return t.Kind() == KindPrimitive }
func (t Type) IsWrapper() bool   { return t.Kind() == KindWrapper }
func (t Type) IsArray() bool     { return t.Kind() == KindArray }
func (t Type) IsNull() bool      { return t.Kind() == KindNull }

// IsReference reports every non-primitive type: classes, wrappers, arrays and null.
func (t Type) IsReference() bool {
	return t.IsValid() && !t.IsPrimitive()
}

// Primitive returns the primitive kind of a primitive or wrapper type.
func (t Type) Primitive() primitive.KindEnum {
	switch t.Kind() {
	case KindPrimitive, KindWrapper:
		return t.prim
	default:
		return 0
	}
}

// IsNumeric reports numeric primitives only; wrappers must be unboxed first.
func (t Type) IsNumeric() bool {
	return t.IsPrimitive() && t.prim.IsNumeric()
}

// IsBooleanKind reports boolean and Boolean.
func (t Type) IsBooleanKind() bool {
	k := t.Kind()
	return (k == KindPrimitive || k == KindWrapper) && t.prim == primitive.KindBoolean
}

// ClassID returns the qualified class name of a reference or wrapper type.
func (t Type) ClassID() string {
	switch t.Kind() {
	case KindReference:
		return t.class
	case KindWrapper:
		w, _ := primitive.Box(t.prim)
		return w.ClassName()
	default:
		return ""
	}
}

// Elem returns the element type of an array.
func (t Type) Elem() (Type, bool) {
	if t.dims == 0 {
		return Type{}, false
	}

	t.dims--

	return t, true
}

// Box returns the wrapper type of a primitive.
func (t Type) Box() (Type, bool) {
	if !t.IsPrimitive() {
		return Type{}, false
	}

	return Wrapper(t.prim), true
}

// Unbox returns the primitive type of a wrapper.
func (t Type) Unbox() (Type, bool) {
	if !t.IsWrapper() {
		return Type{}, false
	}

	return Prim(t.prim), true
}

// Erasure drops everything a non-generic engine cannot observe. Generic
// arguments never reach a Type, so this is the identity.
func (t Type) Erasure() Type {
	return t
}

// String renders the type the way diagnostics print it: simple class names,
// primitives in source spelling, "[]" per dimension.
func (t Type) String() string {
	return t.render(simpleName)
}

// QualifiedName renders the type with fully qualified class names.
func (t Type) QualifiedName() string {
	return t.render(func(s string) string { return s })
}

func (t Type) render(name func(string) string) string {
	var base string

	switch t.base {
	case KindPrimitive:
		base = t.prim.Name()
	case KindWrapper:
		base = name(Wrapper(t.prim).ClassID())
	case KindReference:
		base = name(t.class)
	case KindNull:
		base = "null"
	default:
		base = common.UnknownStr
	}

	return base + strings.Repeat("[]", int(t.dims))
}

func simpleName(id string) string {
	if i := strings.LastIndexByte(id, '.'); i >= 0 {
		return id[i+1:]
	}

	return id
}

// List renders types separated by ", " as in method signatures.
func List(ts []Type) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}

	return strings.Join(parts, ", ")
}
