package scenario

import (
	"overload-resolver/internal/config"
)

// File is the root of a scenario file.
type File struct {
	Version      string        `yaml:"version"`
	Config       config.Config `yaml:"config,omitempty"`
	Classes      []Class       `yaml:"classes,omitempty"`
	Calls        []Call        `yaml:"calls,omitempty"`
	Conditionals []Conditional `yaml:"conditionals,omitempty"`
}

// Class declares a class or interface and its methods.
type Class struct {
	Name       string   `yaml:"name"`
	Super      string   `yaml:"super,omitempty"`
	Interfaces []string `yaml:"interfaces,omitempty"`
	Interface  bool     `yaml:"interface,omitempty"`
	// Methods are signatures with modifiers, e.g. "public static test(int...)".
	// Constructors are written "new Y(int)".
	Methods []string `yaml:"methods,omitempty"`
}

// Call is one method or constructor invocation.
type Call struct {
	Site     string `yaml:"site,omitempty"`
	Caller   string `yaml:"caller,omitempty"`
	Receiver string `yaml:"receiver"`
	// Method is the invoked name; "new" invokes a constructor.
	Method string     `yaml:"method"`
	Args   []Argument `yaml:"args,omitempty"`
	// Expect is the selected signature, e.g. "test(Integer)", or the code of
	// the expected error, e.g. "ambiguous_method".
	Expect string `yaml:"expect,omitempty"`
}

// Conditional is one "guard ? left : right" expression.
type Conditional struct {
	Site  string   `yaml:"site,omitempty"`
	Guard *bool    `yaml:"guard,omitempty"`
	Left  Argument `yaml:"left"`
	Right Argument `yaml:"right"`
	// Expect is the result type or the code of the expected error.
	Expect string `yaml:"expect,omitempty"`
}

// Argument is an expression: a type, optionally with a constant value.
// Written as a bare type ("int") or as a mapping ({type: int, const: 5}).
type Argument struct {
	Type  string `yaml:"type"`
	Const string `yaml:"const,omitempty"`
}

// IsConstant reports whether the argument carries a constant value.
func (a Argument) IsConstant() bool {
	return a.Const != ""
}
