package elaborate

import "github.com/lattice-gql/qcore/plan"

// mapChildren rebuilds q with f applied to each of its direct Query
// children (one level only), preserving every other field. Sentinel and
// childless node kinds (Skip's Cond is a value.Value, not a child Query)
// pass through unchanged. This is the shared traversal primitive every
// phase in this package builds its tree rewrite on, since plan's node
// kinds are a closed but externally type-switchable set (spec.md §9).
func mapChildren(q plan.Query, f func(plan.Query) plan.Query) plan.Query {
	switch n := q.(type) {
	case plan.Select:
		n.Child = f(n.Child)
		return n
	case plan.Group:
		children := make([]plan.Query, len(n.Children))
		for i, c := range n.Children {
			children[i] = f(c)
		}
		n.Children = children
		return n
	case plan.Unique:
		n.Child = f(n.Child)
		return n
	case plan.Filter:
		n.Child = f(n.Child)
		return n
	case plan.Component:
		n.Child = f(n.Child)
		return n
	case plan.Effect:
		n.Child = f(n.Child)
		return n
	case plan.Introspect:
		n.Child = f(n.Child)
		return n
	case plan.EnvironmentNode:
		n.Child = f(n.Child)
		return n
	case plan.Wrap:
		n.Child = f(n.Child)
		return n
	case plan.Rename:
		n.Child = f(n.Child)
		return n
	case plan.UntypedNarrow:
		n.Child = f(n.Child)
		return n
	case plan.Narrow:
		n.Child = f(n.Child)
		return n
	case plan.Skip:
		n.Child = f(n.Child)
		return n
	case plan.Limit:
		n.Child = f(n.Child)
		return n
	case plan.Offset:
		n.Child = f(n.Child)
		return n
	case plan.OrderBy:
		n.Child = f(n.Child)
		return n
	case plan.Count:
		n.Child = f(n.Child)
		return n
	case plan.TransformCursor:
		n.Child = f(n.Child)
		return n
	default:
		// Empty, Skipped: no children.
		return q
	}
}

// rewrite applies f to every node of q, post-order: children are rewritten
// before the node itself, so f always sees an already-rewritten subtree.
func rewrite(q plan.Query, f func(plan.Query) plan.Query) plan.Query {
	descended := mapChildren(q, func(c plan.Query) plan.Query { return rewrite(c, f) })
	return f(descended)
}
