package elaborate

import (
	"github.com/lattice-gql/qcore/plan"
	"github.com/lattice-gql/qcore/result"
)

// mergeTree is phase 7 (spec.md §4.F): plan.MergeQueries is applied at
// every Group in the tree, bottom-up, so a duplicate selection introduced
// by alias expansion or component elaboration at any nesting depth gets
// folded together, not just at the root.
func mergeTree(q plan.Query) *result.Result[plan.Query] {
	acc := result.NewAccumulator()
	merged := mapChildren(q, func(c plan.Query) plan.Query {
		r := mergeTree(c)
		result.Absorb(acc, r)
		return r.ValueOrZero()
	})

	g, ok := merged.(plan.Group)
	if !ok {
		return result.Finish(acc, merged)
	}
	r := plan.MergeQueries(g.Children)
	result.Absorb(acc, r)
	return result.Finish(acc, r.ValueOrZero())
}
