package route

import (
	"cmp"
	"slices"

	"github.com/agnivade/levenshtein"
)

// Suggest ranks literal patterns by edit distance to path. Parametric
// patterns are skipped since they would match by shape, not spelling.
func (t *Table) Suggest(path string, limit int) []string {
	if t == nil || limit <= 0 {
		return nil
	}
	target := Canonical(path)
	threshold := max(3, len(target)/2)

	type candidate struct {
		pattern  string
		distance int
		order    int
	}
	candidates := make([]candidate, 0, len(t.routes))
	for i, c := range t.routes {
		if !Literal(c.canonical) || c.canonical == target {
			continue
		}
		d := levenshtein.ComputeDistance(target, c.canonical)
		if d > threshold {
			continue
		}
		candidates = append(candidates, candidate{pattern: c.canonical, distance: d, order: i})
	}
	slices.SortFunc(candidates, func(a, b candidate) int {
		if a.distance != b.distance {
			return cmp.Compare(a.distance, b.distance)
		}
		return cmp.Compare(a.order, b.order)
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.pattern)
	}
	return out
}
