package types

import (
	"errors"
	"fmt"
	"strings"

	"overload-resolver/internal/common"
)

// Accessibility is the declared access level of a member.
type Accessibility int

const (
	AccessPackage   Accessibility = iota // no modifier
	AccessPublic                         // public
	AccessProtected                      // protected
	AccessPrivate                        // private
)

// String returns the modifier keyword, "package" for the default access.
func (a Accessibility) String() string {
	switch a {
	case AccessPackage:
		return "package"
	case AccessPublic:
		return "public"
	case AccessProtected:
		return "protected"
	case AccessPrivate:
		return "private"
	default:
		return common.UnknownStr
	}
}

// ParseAccessibility reads a modifier keyword; empty means package access.
func ParseAccessibility(s string) (Accessibility, error) {
	switch strings.TrimSpace(s) {
	case "", "package":
		return AccessPackage, nil
	case "public":
		return AccessPublic, nil
	case "protected":
		return AccessProtected, nil
	case "private":
		return AccessPrivate, nil
	default:
		return AccessPackage, fmt.Errorf("unknown accessibility %q", s)
	}
}

// MethodSignature is one candidate method or constructor as handed over by
// name resolution.
type MethodSignature struct {
	Name          string
	DeclaringType string // qualified class name
	Params        []Type
	IsVarargs     bool // last parameter is Array(T), unrolled to T in the variable-arity phase
	IsStatic      bool
	IsConstructor bool
	Access        Accessibility
}

// Validate checks the structural invariants of a signature.
func (m MethodSignature) Validate() error {
	if m.Name == "" && !m.IsConstructor {
		return errors.New("method name is empty")
	}

	for i, p := range m.Params {
		if !p.IsValid() || p.IsNull() {
			return fmt.Errorf("%s: parameter %d has invalid type %s", m.Name, i, p)
		}
	}

	if m.IsVarargs && (len(m.Params) == 0 || !m.Params[len(m.Params)-1].IsArray()) {
		return fmt.Errorf("%s: variable arity method must end with an array parameter", m.Name)
	}

	return nil
}

// DisplayName is the method name, or the simple declaring class name for
// constructors.
func (m MethodSignature) DisplayName() string {
	if m.IsConstructor {
		return simpleName(m.DeclaringType)
	}

	return m.Name
}

// String renders "name(T1, T2...)" the way diagnostics print signatures.
func (m MethodSignature) String() string {
	params := List(m.Params)
	if m.IsVarargs && strings.HasSuffix(params, "[]") {
		params = strings.TrimSuffix(params, "[]") + "..."
	}

	return m.DisplayName() + "(" + params + ")"
}

// FixedArity is the number of parameters that are never unrolled.
func (m MethodSignature) FixedArity() int {
	if m.IsVarargs {
		return len(m.Params) - 1
	}

	return len(m.Params)
}

// VarargsElem returns T for a variable-arity parameter T[].
func (m MethodSignature) VarargsElem() (Type, bool) {
	if !m.IsVarargs || len(m.Params) == 0 {
		return Type{}, false
	}

	return m.Params[len(m.Params)-1].Elem()
}

// ExpandedParams returns the parameter list seen by n arguments in the
// variable-arity phase: fixed parameters followed by the element type
// repeated up to n. Non-varargs methods return their parameters unchanged.
func (m MethodSignature) ExpandedParams(n int) []Type {
	elem, ok := m.VarargsElem()
	if !ok {
		return m.Params
	}

	fixed := m.FixedArity()
	size := max(n, fixed)

	res := make([]Type, 0, size)
	res = append(res, m.Params[:fixed]...)

	for len(res) < size {
		res = append(res, elem)
	}

	return res
}

// SameErasedParams reports override-equivalent parameter lists.
func (m MethodSignature) SameErasedParams(o MethodSignature) bool {
	if len(m.Params) != len(o.Params) {
		return false
	}

	for i := range m.Params {
		if m.Params[i].Erasure() != o.Params[i].Erasure() {
			return false
		}
	}

	return true
}

// ParseSignature reads "name(T1, T2...)" with optional modifiers in front:
// "public static test(Integer, int...)".
func ParseSignature(declaring, s string) (MethodSignature, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(strings.TrimSpace(s), ")") {
		return MethodSignature{}, fmt.Errorf("invalid signature %q", s)
	}

	m := MethodSignature{DeclaringType: normalizeID(declaring)}

	head := strings.Fields(s[:open])
	if len(head) == 0 {
		return MethodSignature{}, fmt.Errorf("missing method name in %q", s)
	}

	for _, mod := range head[:len(head)-1] {
		switch mod {
		case "static":
			m.IsStatic = true
		case "new":
			m.IsConstructor = true
		default:
			access, err := ParseAccessibility(mod)
			if err != nil {
				return MethodSignature{}, fmt.Errorf("signature %q: %w", s, err)
			}

			m.Access = access
		}
	}

	m.Name = head[len(head)-1]
	if m.IsConstructor {
		if m.Name != simpleName(m.DeclaringType) {
			return MethodSignature{}, fmt.Errorf("constructor %s declared in class %s", m.Name, m.DeclaringType)
		}

		m.Name = "<init>"
	}

	body := strings.TrimSpace(s[open+1 : strings.LastIndexByte(s, ')')])
	if body != "" {
		parts := strings.Split(body, ",")
		for i, part := range parts {
			part = strings.TrimSpace(part)
			if strings.HasSuffix(part, "...") {
				if i != len(parts)-1 {
					return MethodSignature{}, fmt.Errorf("signature %q: only the last parameter may be variable arity", s)
				}

				m.IsVarargs = true
			}

			p, err := Parse(part)
			if err != nil {
				return MethodSignature{}, fmt.Errorf("signature %q: %w", s, err)
			}

			m.Params = append(m.Params, p)
		}
	}

	return m, m.Validate()
}
