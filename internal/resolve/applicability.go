package resolve

import (
	"overload-resolver/internal/common"
	"overload-resolver/internal/config"
	"overload-resolver/internal/convert"
	"overload-resolver/internal/types"
)

// CandidateEvaluation is a candidate found applicable in a phase.
type CandidateEvaluation struct {
	Signature *types.MethodSignature
	// Index is the position of the candidate in the input list.
	Index int
	Phase Phase
	// Conversions has one entry per argument. Arguments collected into the
	// variable-arity array carry their element-level conversion.
	Conversions []convert.ConversionKind
	// VarargsWrap is set when trailing arguments are wrapped into an array.
	VarargsWrap bool
}

// Params returns the parameter types the arguments were checked against:
// the declared list, or the list unrolled to nargs in the varargs phase.
func (e CandidateEvaluation) Params(nargs int) []types.Type {
	if e.VarargsWrap {
		return e.Signature.ExpandedParams(nargs)
	}

	return e.Signature.Params
}

// ParameterConversions has one entry per declared parameter: the argument
// conversions, with UncheckedVarargsWrap for a wrapped variable-arity
// parameter.
func (e CandidateEvaluation) ParameterConversions() []convert.ConversionKind {
	if !e.VarargsWrap {
		return e.Conversions
	}

	fixed := e.Signature.FixedArity()
	res := make([]convert.ConversionKind, 0, fixed+1)
	res = append(res, e.Conversions[:fixed]...)

	return append(res, convert.UncheckedVarargsWrap)
}

// Phases holds the applicable candidates per phase. Only the first
// non-empty phase is populated; later phases are never evaluated.
type Phases struct {
	Strict  []CandidateEvaluation
	Loose   []CandidateEvaluation
	Varargs []CandidateEvaluation
}

// First returns the first non-empty phase.
func (p Phases) First() (Phase, []CandidateEvaluation, bool) {
	switch {
	case len(p.Strict) > 0:
		return PhaseStrict, p.Strict, true
	case len(p.Loose) > 0:
		return PhaseLoose, p.Loose, true
	case len(p.Varargs) > 0:
		return PhaseVarargs, p.Varargs, true
	default:
		return 0, nil, false
	}
}

// Applicable runs the applicability phases for site over candidates. A
// candidate is considered only if its name matches and it is accessible from
// the caller. Below source level 1.5 only the strict phase runs.
func Applicable(u *types.Universe, candidates []types.MethodSignature, site CallSite, cfg config.Config) Phases {
	var res Phases

	eligible := filterCandidates(u, candidates, site)

	res.Strict = runPhase(u, eligible, site, PhaseStrict)
	if !common.IsEmpty(res.Strict) || !cfg.Boxing() {
		return res
	}

	res.Loose = runPhase(u, eligible, site, PhaseLoose)
	if !common.IsEmpty(res.Loose) || !cfg.Varargs() {
		return res
	}

	res.Varargs = runPhase(u, eligible, site, PhaseVarargs)

	return res
}

// indexed keeps the declaration position of a filtered candidate.
type indexed struct {
	sig   *types.MethodSignature
	index int
}

func filterCandidates(u *types.Universe, candidates []types.MethodSignature, site CallSite) []indexed {
	var res []indexed

	for i := range candidates {
		m := &candidates[i]
		if m.Name != site.Name || !Accessible(u, m, site.Caller) {
			continue
		}

		res = append(res, indexed{sig: m, index: i})
	}

	return res
}

func runPhase(u *types.Universe, candidates []indexed, site CallSite, phase Phase) []CandidateEvaluation {
	var res []CandidateEvaluation

	for _, c := range candidates {
		eval, ok := evaluate(u, c, site.Args, phase)
		if ok {
			res = append(res, eval)
		}
	}

	return res
}

// evaluate checks one candidate in one phase. Variable-arity methods take
// part in the first two phases in their fixed-arity form.
func evaluate(u *types.Universe, c indexed, args []convert.ArgumentDescriptor, phase Phase) (CandidateEvaluation, bool) {
	m := c.sig
	eval := CandidateEvaluation{Signature: m, Index: c.index, Phase: phase}

	var params []types.Type

	if phase == PhaseVarargs {
		if !m.IsVarargs || len(args) < m.FixedArity() {
			return CandidateEvaluation{}, false
		}

		params = m.ExpandedParams(len(args))
		eval.VarargsWrap = true
	} else {
		if len(args) != len(m.Params) {
			return CandidateEvaluation{}, false
		}

		params = m.Params
	}

	eval.Conversions = make([]convert.ConversionKind, len(args))

	for i, arg := range args {
		kind, ok := convert.ClassifyArgument(u, arg, params[i], phase.Context())
		if !ok {
			return CandidateEvaluation{}, false
		}

		eval.Conversions[i] = kind
	}

	return eval, true
}

// mismatch describes why the closest candidate is not applicable.
type mismatch struct {
	sig      *types.MethodSignature
	index    int // first incompatible argument, -1 for an arity mismatch
	expected types.Type
	actual   types.Type
}

// closest picks the candidate a no-applicable-method report names: the first
// one whose arity fits the call, else the first one with the name.
func closest(u *types.Universe, candidates []indexed, site CallSite, cfg config.Config) (mismatch, bool) {
	first, ok := common.First(candidates)
	if !ok {
		return mismatch{}, false
	}

	ctx := convert.Strict
	if cfg.Boxing() {
		ctx = convert.Loose
	}

	nargs := len(site.Args)

	for _, c := range candidates {
		m := c.sig

		var params []types.Type

		switch {
		case len(m.Params) == nargs:
			params = m.Params
		case m.IsVarargs && cfg.Varargs() && nargs >= m.FixedArity():
			params = m.ExpandedParams(nargs)
		default:
			continue
		}

		for i, arg := range site.Args {
			if _, ok := convert.ClassifyArgument(u, arg, params[i], ctx); !ok {
				return mismatch{sig: m, index: i, expected: params[i], actual: arg.StaticType}, true
			}
		}

		// a fixed-arity form that fits only in a disabled phase
		return mismatch{sig: m, index: -1}, true
	}

	return mismatch{sig: first.sig, index: -1}, true
}
