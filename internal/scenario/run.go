package scenario

import (
	"context"
	"errors"
	"fmt"

	"overload-resolver/internal/batch"
	"overload-resolver/internal/conditional"
	"overload-resolver/internal/config"
	"overload-resolver/internal/diagnostic"
	"overload-resolver/internal/resolve"
	"overload-resolver/internal/types"
)

// OutcomeKind tells calls from conditionals.
type OutcomeKind string

const (
	OutcomeCall        OutcomeKind = "call"
	OutcomeConditional OutcomeKind = "conditional"
)

// Outcome is the result of one call or conditional of a scenario.
type Outcome struct {
	Kind OutcomeKind
	Site string
	// Expression renders the input, e.g. "Y.test(int)" or "Integer : Short".
	Expression  string
	Resolution  *resolve.Resolution
	Conditional *conditional.Result
	// Emitted are the converted argument expressions for a resolved call.
	Emitted  []string
	Findings []diagnostic.Finding
	Err      error
	Expect   string
}

// Got renders what the engine produced: the selected signature or result
// type, or the code of the fatal finding.
func (o Outcome) Got() string {
	if o.Err != nil {
		var derr *diagnostic.Error
		if errors.As(o.Err, &derr) {
			return derr.Finding.Kind.Code()
		}

		return "error"
	}

	switch {
	case o.Resolution != nil:
		return o.Resolution.Selected.String()
	case o.Conditional != nil:
		return o.Conditional.Type.String()
	default:
		return ""
	}
}

// Met reports whether the outcome matches its expectation, if any.
func (o Outcome) Met() bool {
	return o.Expect == "" || o.Expect == o.Got()
}

type task struct {
	call *Call
	cond *Conditional
}

// Run resolves every call and conditional of the program, at most jobs at a
// time, and returns the outcomes in file order: calls, then conditionals.
func (p *Program) Run(ctx context.Context, jobs int) ([]Outcome, error) {
	cfg := p.File.Config

	tasks := make([]task, 0, len(p.File.Calls)+len(p.File.Conditionals))
	for i := range p.File.Calls {
		tasks = append(tasks, task{call: &p.File.Calls[i]})
	}

	for i := range p.File.Conditionals {
		tasks = append(tasks, task{cond: &p.File.Conditionals[i]})
	}

	return batch.Map(ctx, jobs, tasks, func(_ context.Context, t task) Outcome {
		if t.call != nil {
			return p.runCall(t.call, cfg)
		}

		return p.runConditional(t.cond, cfg)
	})
}

func (p *Program) runCall(c *Call, cfg config.Config) Outcome {
	out := Outcome{Kind: OutcomeCall, Site: c.Site, Expect: c.Expect}

	site, err := p.CallSite(c)
	if err != nil {
		out.Err = err
		return out
	}

	out.Expression = fmt.Sprintf("%s.%s(%s)", types.Class(c.Receiver), c.Method, types.List(site.ArgTypes()))

	res, err := resolve.Resolve(p.Universe, p.Candidates(site.Receiver, site.Name == resolve.ConstructorName), site, cfg)
	if err != nil {
		out.Err = err
		return out
	}

	exprs := make([]string, len(site.Args))
	for i := range exprs {
		exprs[i] = fmt.Sprintf("a%d", i)
	}

	if emitted, err := res.EmitArguments(exprs); err == nil {
		out.Emitted = emitted
	}

	out.Resolution = &res
	out.Findings = res.Findings

	return out
}

func (p *Program) runConditional(c *Conditional, cfg config.Config) Outcome {
	out := Outcome{Kind: OutcomeConditional, Site: c.Site, Expect: c.Expect}

	left, err := c.Left.Descriptor()
	if err != nil {
		out.Err = err
		return out
	}

	right, err := c.Right.Descriptor()
	if err != nil {
		out.Err = err
		return out
	}

	out.Expression = fmt.Sprintf("%s : %s", left.StaticType, right.StaticType)

	res, findings, err := conditional.Resolve(p.Universe, c.Guard, left, right, cfg)
	if err != nil {
		var derr *diagnostic.Error
		if errors.As(err, &derr) {
			derr.Finding.Site = c.Site
		}

		out.Err = err

		return out
	}

	for i := range findings {
		findings[i].Site = c.Site
	}

	out.Conditional = &res
	out.Findings = findings

	return out
}

// Diagnostics renders outcomes through the policy. Unmet expectations are
// errors; an expected fatal finding is reported as info.
func Diagnostics(outcomes []Outcome, policy diagnostic.Policy) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	for _, o := range outcomes {
		err := o.Err

		var derr *diagnostic.Error
		if err != nil && o.Expect != "" && o.Met() && errors.As(err, &derr) {
			d.Add(derr.Finding.Diagnostic(diagnostic.DiagnosticInfo))
			err = nil
		}

		policy.Report(&d, o.Site, err, o.Findings...)

		if !o.Met() {
			d.AddError("expectation_failed", fmt.Sprintf("expected %s, got %s", o.Expect, o.Got()), o.Site)
		}
	}

	return d
}
