package elaborate

import "github.com/lattice-gql/qcore/plan"

// hoistIntrospection is phase 3 (spec.md §4.F): every selection of
// __schema or __type is wrapped in plan.Introspect so later phases (and
// ultimately whichever interpreter executes the plan) know to evaluate
// that subtree against schema metadata instead of ordinary cursor data.
// __typename is left as an ordinary Select: its value is a fact about
// the current object, not the schema, so it needs no distinct evaluation
// context.
func hoistIntrospection(q plan.Query, cfg Config) plan.Query {
	return rewrite(q, func(n plan.Query) plan.Query {
		sel, ok := n.(plan.Select)
		if !ok {
			return n
		}
		if sel.FieldName != "__schema" && sel.FieldName != "__type" {
			return n
		}
		return plan.Introspect{Schema: cfg.Schema, Child: sel}
	})
}
