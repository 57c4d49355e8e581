package diagnostic

import (
	"fmt"

	"overload-resolver/internal/common"
	"overload-resolver/internal/types"
)

// FindingKind identifies what a Finding reports.
type FindingKind int

const (
	NoApplicableMethod FindingKind = iota + 1
	AmbiguousMethod
	IllegalConditionalOperandTypes
	BoxingPerformed
	UnboxingPerformed
)

// FindingKinds returns all kinds in declaration order.
func FindingKinds() []FindingKind {
	return []FindingKind{
		NoApplicableMethod,
		AmbiguousMethod,
		IllegalConditionalOperandTypes,
		BoxingPerformed,
		UnboxingPerformed,
	}
}

// Code returns the diagnostic code of the kind.
func (k FindingKind) Code() string {
	switch k {
	case NoApplicableMethod:
		return "no_applicable_method"
	case AmbiguousMethod:
		return "ambiguous_method"
	case IllegalConditionalOperandTypes:
		return "incompatible_conditional_operands"
	case BoxingPerformed:
		return "boxing"
	case UnboxingPerformed:
		return "unboxing"
	default:
		return common.UnknownStr
	}
}

// String returns the diagnostic code.
func (k FindingKind) String() string {
	return k.Code()
}

// ParseFindingKind maps a diagnostic code back to its kind.
func ParseFindingKind(code string) (FindingKind, error) {
	for _, k := range FindingKinds() {
		if k.Code() == code {
			return k, nil
		}
	}

	return 0, fmt.Errorf("unknown diagnostic code %q", code)
}

// IsFatal reports kinds that make the enclosing expression ill-typed.
func (k FindingKind) IsFatal() bool {
	switch k {
	case NoApplicableMethod, AmbiguousMethod, IllegalConditionalOperandTypes:
		return true
	default:
		return false
	}
}

// Finding is a structured observation of the engine. Candidate and Other
// point at signatures owned by the caller.
type Finding struct {
	Kind FindingKind
	// Site labels the expression the finding belongs to.
	Site string
	// Name and Receiver describe the invocation: method name and the type
	// searched for it.
	Name     string
	Receiver string
	// Candidate is the closest candidate of NoApplicableMethod (nil when
	// the name has no candidates) or the first of an ambiguous pair.
	Candidate *types.MethodSignature
	// Other is the second candidate of an ambiguous pair.
	Other *types.MethodSignature
	// ArgumentIndex is the first incompatible argument, -1 if none.
	ArgumentIndex int
	Expected      types.Type
	Actual        types.Type
	// Arguments are the static argument types of the invocation.
	Arguments []types.Type
	// From and To are the operand types of a conditional or the two sides of
	// a boxing or unboxing conversion.
	From types.Type
	To   types.Type
	// Suggestions are similarly named methods of the receiver.
	Suggestions []string
}

// Message renders the finding in the compiler's wording.
func (f Finding) Message() string {
	switch f.Kind {
	case NoApplicableMethod:
		return f.noApplicableMessage()
	case AmbiguousMethod:
		if f.Candidate == nil {
			return fmt.Sprintf("The method %s(%s) is ambiguous for the type %s",
				f.Name, types.List(f.Arguments), simple(f.Receiver))
		}

		if f.Candidate.IsConstructor {
			return fmt.Sprintf("The constructor %s is ambiguous", f.Candidate)
		}

		return fmt.Sprintf("The method %s is ambiguous for the type %s",
			f.Candidate, simple(f.receiver()))
	case IllegalConditionalOperandTypes:
		return fmt.Sprintf("Incompatible conditional operand types %s and %s", f.From, f.To)
	case BoxingPerformed:
		return fmt.Sprintf("The expression of type %s is boxed into %s", f.From, f.To)
	case UnboxingPerformed:
		return fmt.Sprintf("The expression of type %s is unboxed into %s", f.From, f.To)
	default:
		return common.UnknownStr
	}
}

func (f Finding) noApplicableMessage() string {
	args := types.List(f.Arguments)

	switch {
	case f.Candidate == nil:
		return fmt.Sprintf("The method %s(%s) is undefined for the type %s", f.Name, args, simple(f.Receiver))
	case f.Candidate.IsConstructor:
		return fmt.Sprintf("The constructor %s(%s) is undefined", f.Candidate.DisplayName(), args)
	default:
		return fmt.Sprintf("The method %s in the type %s is not applicable for the arguments (%s)",
			f.Candidate, simple(f.Candidate.DeclaringType), args)
	}
}

func (f Finding) receiver() string {
	if f.Receiver != "" {
		return f.Receiver
	}

	if f.Candidate != nil {
		return f.Candidate.DeclaringType
	}

	return ""
}

// Diagnostic renders the finding at the given severity.
func (f Finding) Diagnostic(severity DiagnosticSeverity) Diagnostic {
	return Diagnostic{
		Severity:    severity,
		Code:        f.Kind.Code(),
		Message:     f.Message(),
		Site:        f.Site,
		Suggestions: f.Suggestions,
	}
}

// Error carries a fatal finding as a Go error; match it with errors.As.
type Error struct {
	Finding Finding
}

// Error returns the finding message.
func (e *Error) Error() string {
	if e.Finding.Site != "" {
		return e.Finding.Site + ": " + e.Finding.Message()
	}

	return e.Finding.Message()
}

// NewError wraps a finding.
func NewError(f Finding) *Error {
	return &Error{Finding: f}
}

func simple(id string) string {
	if id == "" {
		return common.UnknownStr
	}

	return types.Class(id).String()
}
