package elaborate

import (
	"github.com/lattice-gql/qcore/plan"
	"github.com/lattice-gql/qcore/schema"
)

// elaborateComponents is phase 6 (spec.md §4.F): every Select whose
// (parent type, field name) is registered with cfg.Components is
// rewritten to
//
//	Wrap(fieldName, Component(target, join, Select(fieldName, args, child)))
//
// keeping the original Select intact (field name and args included) as
// Component's child, so the delegated interpreter still sees what was
// asked for instead of just its subselection. Recursion into the
// field's own child always happens first, delegated or not, so a
// second delegation boundary nested underneath (spec.md §8 scenario 5)
// is still found. parentType tracks the type context the same way
// phase 2 does, since delegation is keyed on (type, field), not field
// name alone.
func elaborateComponents(q plan.Query, parentType schema.TypeRef, cfg Config) plan.Query {
	switch n := q.(type) {
	case plan.Select:
		mapping, delegated := cfg.Components.Lookup(parentType, n.FieldName)
		fieldType, ok := cfg.Schema.FieldType(parentType, n.FieldName)
		if !ok {
			return n
		}
		n.Child = elaborateComponents(n.Child, fieldType, cfg)
		if !delegated {
			return n
		}
		return plan.Wrap{
			FieldName: n.FieldName,
			Child: plan.Component{
				Target: mapping.Target,
				Join:   mapping.Join,
				Child:  n,
			},
		}

	case plan.Group:
		children := make([]plan.Query, len(n.Children))
		for i, c := range n.Children {
			children[i] = elaborateComponents(c, parentType, cfg)
		}
		return plan.NewGroup(children...)

	default:
		return mapChildren(q, func(c plan.Query) plan.Query {
			return elaborateComponents(c, parentType, cfg)
		})
	}
}
