package scenario

import (
	"fmt"

	"overload-resolver/internal/convert"
	"overload-resolver/internal/resolve"
	"overload-resolver/internal/types"
	"overload-resolver/primitive"
)

// Program is a validated scenario turned into engine inputs.
type Program struct {
	File     *File
	Universe *types.Universe
	// Methods holds the declared methods per class ID, declaration order.
	Methods map[string][]types.MethodSignature
}

// Descriptor converts the argument into the engine's view of an expression.
func (a Argument) Descriptor() (convert.ArgumentDescriptor, error) {
	t, err := types.Parse(a.Type)
	if err != nil {
		return convert.ArgumentDescriptor{}, err
	}

	if !a.IsConstant() {
		return convert.Arg(t), nil
	}

	if !t.IsPrimitive() {
		return convert.ArgumentDescriptor{}, fmt.Errorf("constant of non-primitive type %s", t)
	}

	c, err := primitive.ParseConstant(t.Primitive(), a.Const)
	if err != nil {
		return convert.ArgumentDescriptor{}, err
	}

	return convert.ConstArg(c), nil
}

// Compile validates f and builds its universe and method tables.
func Compile(f *File) (*Program, error) {
	if diags := Validate(f); diags.HasErrors() {
		return nil, diags.Error()
	}

	u := types.NewUniverse()
	methods := make(map[string][]types.MethodSignature, len(f.Classes))

	for _, c := range f.Classes {
		info := types.ClassInfo{
			ID:          c.Name,
			Super:       c.Super,
			Interfaces:  c.Interfaces,
			IsInterface: c.Interface,
		}

		if err := u.Add(info); err != nil {
			return nil, err
		}

		id := types.Class(c.Name).ClassID()

		for _, decl := range c.Methods {
			m, err := types.ParseSignature(c.Name, decl)
			if err != nil {
				return nil, err
			}

			methods[id] = append(methods[id], m)
		}
	}

	if _, err := u.Freeze(); err != nil {
		return nil, fmt.Errorf("invalid class hierarchy: %w", err)
	}

	return &Program{File: f, Universe: u, Methods: methods}, nil
}

// Candidates returns the methods visible on receiver: its own declarations
// first, then those of its supertypes, most specific first. Constructors are
// never inherited.
func (p *Program) Candidates(receiver string, constructors bool) []types.MethodSignature {
	var res []types.MethodSignature

	id := types.Class(receiver).ClassID()

	if constructors {
		for _, m := range p.Methods[id] {
			if m.IsConstructor {
				res = append(res, m)
			}
		}

		return res
	}

	for _, sup := range p.Universe.Supertypes(id) {
		for _, m := range p.Methods[sup] {
			if !m.IsConstructor {
				res = append(res, m)
			}
		}
	}

	return res
}

// CallSite builds the engine call site of c.
func (p *Program) CallSite(c *Call) (resolve.CallSite, error) {
	site := resolve.CallSite{
		Site:     c.Site,
		Name:     c.Method,
		Receiver: types.Class(c.Receiver).ClassID(),
		Caller:   resolve.AccessContext{Class: c.Caller},
	}

	if c.Method == "new" {
		site.Name = resolve.ConstructorName
	}

	if c.Caller != "" {
		site.Caller.Class = types.Class(c.Caller).ClassID()
	}

	for i, a := range c.Args {
		d, err := a.Descriptor()
		if err != nil {
			return resolve.CallSite{}, fmt.Errorf("argument %d: %w", i, err)
		}

		site.Args = append(site.Args, d)
	}

	return site, nil
}
