package elaborate

import (
	"github.com/lattice-gql/qcore/plan"
	"github.com/lattice-gql/qcore/value"
)

// foldSkips is phase 5 (spec.md §4.F): a plan.Skip whose Cond has already
// resolved (phase 1) to a concrete value.Boolean is folded away entirely,
// replaced by its Child when the condition keeps the field and by
// plan.Skipped when it doesn't. A Skip whose Cond is anything else (in a
// full Elaborate run, value.Absent for an optional variable that was
// neither supplied nor defaulted) is retained unchanged for whatever
// evaluates the plan to decide later.
func foldSkips(q plan.Query) plan.Query {
	return rewrite(q, func(n plan.Query) plan.Query {
		sk, ok := n.(plan.Skip)
		if !ok {
			return n
		}
		b, ok := sk.Cond.(value.Boolean)
		if !ok {
			return n
		}
		include := bool(b)
		if sk.Sense == plan.SkipIf {
			include = !include
		}
		if include {
			return sk.Child
		}
		return plan.Skipped
	})
}
