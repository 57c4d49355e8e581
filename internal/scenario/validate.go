package scenario

import (
	"fmt"

	"overload-resolver/internal/diagnostic"
	"overload-resolver/internal/suggest"
	"overload-resolver/internal/types"
)

// Validate checks a scenario structurally: names, signatures, argument
// types and references between classes. It does not resolve anything.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("scenario_is_nil", "scenario file is nil", "")
		return res
	}

	if f.Version != "1" {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported scenario version %q", f.Version), "")
	}

	if err := f.Config.Validate(); err != nil {
		res.AddError("invalid_config", err.Error(), "")
	}

	classes := map[string]bool{}
	jdk := types.NewUniverse()
	names := jdk.Classes()

	for _, c := range f.Classes {
		if c.Name == "" {
			res.AddError("class_name_empty", "class without a name", "")
			continue
		}

		id := types.Class(c.Name).ClassID()
		if classes[id] {
			res.AddError("duplicate_class", fmt.Sprintf("duplicate class %q", c.Name), c.Name)
		}

		classes[id] = true
		names = append(names, id)

		for _, decl := range c.Methods {
			if _, err := types.ParseSignature(c.Name, decl); err != nil {
				res.AddError("invalid_signature", err.Error(), c.Name)
			}
		}
	}

	known := func(name string) bool {
		if name == "" {
			return true
		}

		id := types.Class(name).ClassID()
		if classes[id] {
			return true
		}

		_, ok := jdk.Lookup(id)

		return ok
	}

	for i := range f.Calls {
		c := &f.Calls[i]

		if c.Method == "" {
			res.AddError("method_name_empty", "call without a method name", c.Site)
		}

		if c.Receiver == "" || !known(c.Receiver) {
			res.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticError,
				Code:        "unknown_receiver",
				Message:     fmt.Sprintf("unknown receiver class %q", c.Receiver),
				Site:        c.Site,
				Suggestions: suggest.Names(types.Class(c.Receiver).ClassID(), names, suggest.DefaultLimit),
			})
		}

		if !known(c.Caller) {
			res.AddError("unknown_caller", fmt.Sprintf("unknown caller class %q", c.Caller), c.Site)
		}

		for j, a := range c.Args {
			if _, err := a.Descriptor(); err != nil {
				res.AddError("invalid_argument", fmt.Sprintf("argument %d: %v", j, err), c.Site)
			}

			if id, ok := referencedClass(a); ok && !known(id) {
				res.Add(unknownClass(id, fmt.Sprintf("argument %d", j), c.Site, names))
			}
		}
	}

	for i := range f.Conditionals {
		c := &f.Conditionals[i]

		for _, side := range []struct {
			name string
			arg  Argument
		}{{"left operand", c.Left}, {"right operand", c.Right}} {
			if _, err := side.arg.Descriptor(); err != nil {
				res.AddError("invalid_operand", fmt.Sprintf("%s: %v", side.name, err), c.Site)
			}

			if id, ok := referencedClass(side.arg); ok && !known(id) {
				res.Add(unknownClass(id, side.name, c.Site, names))
			}
		}
	}

	return res
}

// referencedClass returns the declared class an argument type names, looking
// through array dimensions. Primitives, wrappers and null name none.
func referencedClass(a Argument) (string, bool) {
	d, err := a.Descriptor()
	if err != nil {
		return "", false
	}

	t := d.StaticType
	for t.IsArray() {
		t, _ = t.Elem()
	}

	if t.Kind() != types.KindReference {
		return "", false
	}

	return t.ClassID(), true
}

// unknownClass warns about a type the universe only knows as a direct
// subclass of Object.
func unknownClass(id, what, site string, names []string) diagnostic.Diagnostic {
	return diagnostic.Diagnostic{
		Severity:    diagnostic.DiagnosticWarning,
		Code:        "unknown_class",
		Message:     fmt.Sprintf("%s: class %q is not declared and is treated as a direct subclass of Object", what, id),
		Site:        site,
		Suggestions: suggest.Names(id, names, suggest.DefaultLimit),
	}
}
