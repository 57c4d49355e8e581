package resolve

import (
	"overload-resolver/internal/common"
	"overload-resolver/internal/convert"
	"overload-resolver/internal/types"
)

// ConstructorName is the name call sites use to invoke constructors.
const ConstructorName = "<init>"

// AccessContext is where an invocation is written.
type AccessContext struct {
	Class   string // qualified name of the enclosing class
	Package string // defaults to the package of Class
}

// PackageName returns the package of the caller.
func (a AccessContext) PackageName() string {
	if a.Package != "" || a.Class == "" {
		return a.Package
	}

	return types.PackageOf(a.Class)
}

// CallSite is one method invocation.
type CallSite struct {
	// Site labels the invocation in findings, e.g. "Main.java:12".
	Site string
	// Name of the invoked method, ConstructorName for constructors.
	Name string
	// Receiver is the qualified type searched for the method.
	Receiver string
	Args     []convert.ArgumentDescriptor
	Caller   AccessContext
}

// ArgTypes returns the static types of the arguments.
func (c CallSite) ArgTypes() []types.Type {
	res := make([]types.Type, len(c.Args))
	for i, a := range c.Args {
		res[i] = a.StaticType
	}

	return res
}

// Phase is an applicability phase.
type Phase int

const (
	PhaseStrict Phase = iota + 1
	PhaseLoose
	PhaseVarargs
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStrict:
		return "strict"
	case PhaseLoose:
		return "loose"
	case PhaseVarargs:
		return "varargs"
	default:
		return common.UnknownStr
	}
}

// Context returns the conversion context arguments are checked in.
func (p Phase) Context() convert.Context {
	switch p {
	case PhaseStrict:
		return convert.Strict
	case PhaseLoose:
		return convert.Loose
	default:
		return convert.Varargs
	}
}
