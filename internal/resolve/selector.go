package resolve

import (
	"errors"
	"sort"

	"overload-resolver/internal/common"
	"overload-resolver/internal/convert"
	"overload-resolver/internal/diagnostic"
	"overload-resolver/internal/types"
)

// ErrNoCandidates is returned by Select for an empty phase.
var ErrNoCandidates = errors.New("no applicable candidates to select from")

// Select picks the most specific candidate of one phase. nargs is the number
// of arguments of the call; variable-arity parameter lists are unrolled to
// it before comparison. Returns a *diagnostic.Error with an AmbiguousMethod
// finding when no single candidate is most specific. The outcome does not
// depend on the order of evals.
func Select(u *types.Universe, evals []CandidateEvaluation, nargs int) (CandidateEvaluation, error) {
	if common.IsEmpty(evals) {
		return CandidateEvaluation{}, ErrNoCandidates
	}

	maximal := maximallySpecific(u, evals, nargs)

	if common.IsSingle(maximal) {
		return maximal[0], nil
	}

	sortCanonical(maximal)

	if sameParams(maximal) {
		return mostDerived(u, maximal), nil
	}

	return CandidateEvaluation{}, diagnostic.NewError(diagnostic.Finding{
		Kind:          diagnostic.AmbiguousMethod,
		Name:          maximal[0].Signature.Name,
		Candidate:     maximal[0].Signature,
		Other:         maximal[1].Signature,
		ArgumentIndex: -1,
	})
}

// MoreSpecific reports whether every parameter of a converts to the
// corresponding parameter of b by a strict conversion. When both are
// variable-arity invocations the element types are compared as well, so
// calls without trailing arguments still rank foo(String...) above
// foo(Object...).
func MoreSpecific(u *types.Universe, a, b CandidateEvaluation, nargs int) bool {
	pa, pb := a.Params(nargs), b.Params(nargs)
	if len(pa) != len(pb) {
		return false
	}

	for i := range pa {
		if _, ok := convert.Classify(u, pa[i], pb[i], convert.Strict); !ok {
			return false
		}
	}

	if a.VarargsWrap && b.VarargsWrap {
		ea, _ := a.Signature.VarargsElem()
		eb, _ := b.Signature.VarargsElem()

		if _, ok := convert.Classify(u, ea, eb, convert.Strict); !ok {
			return false
		}
	}

	return true
}

// maximallySpecific keeps the candidates no other candidate is strictly more
// specific than.
func maximallySpecific(u *types.Universe, evals []CandidateEvaluation, nargs int) []CandidateEvaluation {
	var res []CandidateEvaluation

	for i, m := range evals {
		maximal := true

		for j, o := range evals {
			if i == j {
				continue
			}

			if MoreSpecific(u, o, m, nargs) && !MoreSpecific(u, m, o, nargs) {
				maximal = false
				break
			}
		}

		if maximal {
			res = append(res, m)
		}
	}

	return res
}

func sortCanonical(evals []CandidateEvaluation) {
	sort.SliceStable(evals, func(i, j int) bool {
		a, b := evals[i].Signature, evals[j].Signature
		if sa, sb := a.String(), b.String(); sa != sb {
			return sa < sb
		}

		return a.DeclaringType < b.DeclaringType
	})
}

func sameParams(evals []CandidateEvaluation) bool {
	for _, e := range evals[1:] {
		if !evals[0].Signature.SameErasedParams(*e.Signature) || evals[0].VarargsWrap != e.VarargsWrap {
			return false
		}
	}

	return true
}

// mostDerived prefers the declaration of the most derived type; evals is
// canonically sorted so ties resolve the same way for any input order.
func mostDerived(u *types.Universe, evals []CandidateEvaluation) CandidateEvaluation {
	best := evals[0]

	for _, e := range evals[1:] {
		if e.Signature.DeclaringType != best.Signature.DeclaringType &&
			u.IsSubclass(e.Signature.DeclaringType, best.Signature.DeclaringType) {
			best = e
		}
	}

	return best
}
