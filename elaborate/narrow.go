package elaborate

import (
	"github.com/lattice-gql/qcore/plan"
	"github.com/lattice-gql/qcore/result"
)

// normalizeNarrows is phase 4 (spec.md §4.F): every remaining
// plan.UntypedNarrow is resolved against cfg.Schema and replaced with a
// plan.Narrow naming the concrete schema.TypeRef. This phase re-resolves
// (schema lookups are cheap and side-effect free, spec.md's Facade
// contract) rather than thread phase 2's resolution through. For a name
// that does not resolve it records its own UnknownType warning (phase 2
// reports the same name as well) and drops the UntypedNarrow down to its
// Child so a
// single bad fragment does not also fail P5's "no Untyped* survives"
// invariant for the rest of the tree.
func normalizeNarrows(q plan.Query, cfg Config) *result.Result[plan.Query] {
	acc := result.NewAccumulator()
	out := rewrite(q, func(n plan.Query) plan.Query {
		un, ok := n.(plan.UntypedNarrow)
		if !ok {
			return n
		}
		tpe, ok := cfg.Schema.LookupType(un.TypeName)
		if !ok {
			result.Absorb(acc, result.Warning[struct{}](result.Problems{result.NewUnknownType(un.TypeName)}, struct{}{}))
			return un.Child
		}
		return plan.Narrow{SubType: tpe, Child: un.Child}
	})
	return result.Finish(acc, out)
}
