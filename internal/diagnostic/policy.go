package diagnostic

import (
	"errors"
	"fmt"
)

// Policy maps finding kinds to severities.
type Policy struct {
	severities map[FindingKind]DiagnosticSeverity
}

// DefaultPolicy makes fatal findings errors and ignores boxing findings, the
// compiler's default for the autoboxing option.
func DefaultPolicy() Policy {
	return Policy{severities: map[FindingKind]DiagnosticSeverity{
		NoApplicableMethod:             DiagnosticError,
		AmbiguousMethod:                DiagnosticError,
		IllegalConditionalOperandTypes: DiagnosticError,
		BoxingPerformed:                DiagnosticIgnore,
		UnboxingPerformed:              DiagnosticIgnore,
	}}
}

// NewPolicy builds a policy from severity names keyed by diagnostic code.
// Fatal kinds always stay errors.
func NewPolicy(overrides map[string]string) (Policy, error) {
	p := DefaultPolicy()

	for code, name := range overrides {
		kind, err := ParseFindingKind(code)
		if err != nil {
			return Policy{}, err
		}

		sev, err := ParseSeverity(name)
		if err != nil {
			return Policy{}, fmt.Errorf("%s: %w", code, err)
		}

		if kind.IsFatal() && sev != DiagnosticError {
			return Policy{}, fmt.Errorf("%s: severity of a fatal diagnostic cannot be %s", code, sev)
		}

		p.severities[kind] = sev
	}

	return p, nil
}

// Severity returns the severity for a kind.
func (p Policy) Severity(kind FindingKind) DiagnosticSeverity {
	if kind.IsFatal() {
		return DiagnosticError
	}

	if p.severities == nil {
		return DefaultPolicy().Severity(kind)
	}

	return p.severities[kind]
}

// Apply renders findings into d.
func (p Policy) Apply(d *Diagnostics, findings ...Finding) {
	for _, f := range findings {
		sev := p.Severity(f.Kind)
		if sev == DiagnosticIgnore {
			continue
		}

		d.Add(f.Diagnostic(sev))
	}
}

// Report renders the finding carried by err, if any, and all advisory
// findings. Errors that carry no finding are reported as resolve_failed.
func (p Policy) Report(d *Diagnostics, site string, err error, findings ...Finding) {
	if err != nil {
		var derr *Error
		if errors.As(err, &derr) {
			p.Apply(d, derr.Finding)
		} else {
			d.AddError("resolve_failed", err.Error(), site)
		}
	}

	p.Apply(d, findings...)
}
