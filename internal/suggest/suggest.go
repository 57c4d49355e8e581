package suggest

import (
	"sort"
)

// MinSimilarity is the score a name needs to be suggested.
const MinSimilarity = 0.6

// DefaultLimit caps the number of suggestions.
const DefaultLimit = 3

type scored struct {
	name  string
	score float64
}

// Names returns up to limit distinct names similar to name, best first.
// Ties are broken alphabetically so results are stable. The name itself is
// never suggested.
func Names(name string, known []string, limit int) []string {
	if limit <= 0 {
		limit = DefaultLimit
	}

	seen := make(map[string]bool, len(known))

	var hits []scored

	for _, k := range known {
		if k == name || seen[k] {
			continue
		}

		seen[k] = true

		score := Similarity(name, k)
		if score < MinSimilarity && !sameTokens(name, k) {
			continue
		}

		hits = append(hits, scored{name: k, score: score})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}

		return hits[i].name < hits[j].name
	})

	res := make([]string, 0, min(limit, len(hits)))
	for i := 0; i < len(hits) && i < limit; i++ {
		res = append(res, hits[i].name)
	}

	return res
}

// sameTokens catches reordered words, e.g. "valueFromString" for
// "stringFromValue".
func sameTokens(a, b string) bool {
	ta, tb := TokenizeIdent(a), TokenizeIdent(b)
	if len(ta) != len(tb) || len(ta) < 2 {
		return false
	}

	sort.Strings(ta)
	sort.Strings(tb)

	for i := range ta {
		if ta[i] != tb[i] {
			return false
		}
	}

	return true
}
