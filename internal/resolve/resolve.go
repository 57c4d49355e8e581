package resolve

import (
	"errors"
	"fmt"
	"strings"

	"overload-resolver/internal/common"
	"overload-resolver/internal/config"
	"overload-resolver/internal/convert"
	"overload-resolver/internal/diagnostic"
	"overload-resolver/internal/suggest"
	"overload-resolver/internal/types"
)

// Resolution is the outcome of a successful overload resolution.
type Resolution struct {
	Selected *types.MethodSignature
	Phase    Phase
	// Conversions has one entry per argument.
	Conversions []convert.ConversionKind
	// Params are the parameter types the arguments convert to, unrolled
	// for a variable-arity invocation.
	Params      []types.Type
	Arguments   []types.Type
	VarargsWrap bool
	// Findings are advisory: boxing and unboxing of arguments.
	Findings []diagnostic.Finding
}

// ParameterConversions has one entry per declared parameter of Selected.
func (r Resolution) ParameterConversions() []convert.ConversionKind {
	return CandidateEvaluation{
		Signature:   r.Selected,
		Conversions: r.Conversions,
		VarargsWrap: r.VarargsWrap,
	}.ParameterConversions()
}

// Resolve selects the method site invokes among candidates. Failures are
// returned as *diagnostic.Error carrying a NoApplicableMethod or
// AmbiguousMethod finding; invalid candidate signatures are plain errors.
func Resolve(u *types.Universe, candidates []types.MethodSignature, site CallSite, cfg config.Config) (Resolution, error) {
	for i := range candidates {
		if err := candidates[i].Validate(); err != nil {
			return Resolution{}, fmt.Errorf("candidate %d: %w", i, err)
		}
	}

	for i, arg := range site.Args {
		if !arg.StaticType.IsValid() {
			return Resolution{}, fmt.Errorf("argument %d has no type", i)
		}
	}

	phases := Applicable(u, candidates, site, cfg)

	phase, evals, ok := phases.First()
	if !ok {
		return Resolution{}, diagnostic.NewError(noApplicable(u, candidates, site, cfg))
	}

	selected, err := Select(u, evals, len(site.Args))
	if err != nil {
		var derr *diagnostic.Error
		if errors.As(err, &derr) {
			derr.Finding.Site = site.Site
			derr.Finding.Receiver = receiverOf(site, derr.Finding.Candidate)
			derr.Finding.Arguments = site.ArgTypes()
		}

		return Resolution{}, err
	}

	res := Resolution{
		Selected:    selected.Signature,
		Phase:       phase,
		Conversions: selected.Conversions,
		Params:      selected.Params(len(site.Args)),
		Arguments:   site.ArgTypes(),
		VarargsWrap: selected.VarargsWrap,
	}

	res.Findings = conversionFindings(site, res.Params, res.Conversions)

	return res, nil
}

func noApplicable(u *types.Universe, candidates []types.MethodSignature, site CallSite, cfg config.Config) diagnostic.Finding {
	f := diagnostic.Finding{
		Kind:          diagnostic.NoApplicableMethod,
		Site:          site.Site,
		Name:          site.Name,
		Receiver:      site.Receiver,
		Arguments:     site.ArgTypes(),
		ArgumentIndex: -1,
	}

	if m, ok := closest(u, filterCandidates(u, candidates, site), site, cfg); ok {
		f.Candidate = m.sig
		f.ArgumentIndex = m.index
		f.Expected = m.expected
		f.Actual = m.actual

		return f
	}

	f.Receiver = receiverOf(site, nil)
	if first, ok := common.First(candidates); ok && f.Receiver == "" {
		f.Receiver = first.DeclaringType
	}

	names := make([]string, 0, len(candidates))
	for i := range candidates {
		if Accessible(u, &candidates[i], site.Caller) && !candidates[i].IsConstructor {
			names = append(names, candidates[i].Name)
		}
	}

	f.Suggestions = suggest.Names(site.Name, names, suggest.DefaultLimit)

	return f
}

func receiverOf(site CallSite, m *types.MethodSignature) string {
	if site.Receiver != "" {
		return site.Receiver
	}

	if m != nil {
		return m.DeclaringType
	}

	return ""
}

// conversionFindings reports every argument that is boxed or unboxed. params
// are the parameter types the arguments converted to.
func conversionFindings(site CallSite, params []types.Type, conversions []convert.ConversionKind) []diagnostic.Finding {
	var res []diagnostic.Finding

	for i, kind := range conversions {
		src := site.Args[i].StaticType

		pivot, ok := kind.Pivot(src, params[i])
		if !ok {
			continue
		}

		f := diagnostic.Finding{Kind: diagnostic.BoxingPerformed, Site: site.Site, ArgumentIndex: i, From: src, To: pivot}
		if kind.IsUnboxing() {
			f.Kind = diagnostic.UnboxingPerformed
		}

		res = append(res, f)
	}

	return res
}

// EmitArguments renders the argument expressions a code generator passes to
// the selected method: each converted explicitly, trailing variable-arity
// arguments wrapped into an array creation.
func (r Resolution) EmitArguments(exprs []string) ([]string, error) {
	if len(exprs) != len(r.Conversions) {
		return nil, fmt.Errorf("got %d expressions for %d arguments", len(exprs), len(r.Conversions))
	}

	converted := make([]string, len(exprs))

	for i, expr := range exprs {
		out, ok := convert.Emit(r.Conversions[i], r.Arguments[i], r.Params[i], expr)
		if !ok {
			return nil, fmt.Errorf("argument %d: cannot emit %s from %s to %s", i, r.Conversions[i], r.Arguments[i], r.Params[i])
		}

		converted[i] = out
	}

	if !r.VarargsWrap {
		return converted, nil
	}

	fixed := r.Selected.FixedArity()
	arrayType := r.Selected.Params[len(r.Selected.Params)-1]
	elem, _ := arrayType.Elem()

	wrapped := fmt.Sprintf("new %s[]{%s}", elem, strings.Join(converted[fixed:], ", "))

	return append(converted[:fixed:fixed], wrapped), nil
}
