package plan

import (
	"github.com/lattice-gql/qcore/predicate"
	"github.com/lattice-gql/qcore/schema"
)

// MatchTypeCase partitions a (possibly Group-ed) set of children into a
// "default" bundle (everything that is not a Narrow) and one merged Narrow
// per distinct subtype (spec.md §4.E). It returns ok=false if none of
// children is a Narrow.
//
// This is the Go rendering of the source's TypeCase pattern-match
// extractor (spec.md §9): a pure function pairing with NewTypeCase rather
// than a language-level pattern.
func MatchTypeCase(children []Query) (def Query, narrows []Narrow, ok bool) {
	var defaults []Query
	byType := make(map[string][]Query)
	var typeOrder []string

	for _, c := range children {
		if n, isNarrow := c.(Narrow); isNarrow {
			name := n.SubType.Name()
			if _, seen := byType[name]; !seen {
				typeOrder = append(typeOrder, name)
			}
			byType[name] = append(byType[name], n.Child)
			continue
		}
		defaults = append(defaults, c)
	}

	if len(typeOrder) == 0 {
		return NewGroup(children...), nil, false
	}

	narrows = make([]Narrow, 0, len(typeOrder))
	for _, name := range typeOrder {
		bodies := byType[name]
		subType := firstNarrowSubType(children, name)
		narrows = append(narrows, Narrow{SubType: subType, Child: NewGroup(bodies...)})
	}
	return NewGroup(defaults...), narrows, true
}

func firstNarrowSubType(children []Query, name string) schema.TypeRef {
	for _, c := range children {
		if n, ok := c.(Narrow); ok && n.SubType.Name() == name {
			return n.SubType
		}
	}
	return schema.TypeRef{}
}

// NewTypeCase is the constructor pairing MatchTypeCase destructures:
// given a default bundle and a set of per-subtype Narrow bodies, it
// rebuilds the combined child list (caller wraps in NewGroup/Combine as
// appropriate for the surrounding context).
func NewTypeCase(def Query, narrows []Narrow) []Query {
	out := make([]Query, 0, len(narrows)+1)
	if !IsEmpty(def) {
		out = append(out, Ungroup(def)...)
	}
	for _, n := range narrows {
		out = append(out, n)
	}
	return out
}

// FilterOrderByOffsetLimit is the canonical optional stack recognized and
// built by MatchFilterOrderByOffsetLimit / NewFilterOrderByOffsetLimit:
// Limit(Offset(OrderBy(Filter(pred, child)))), with any layer optional but
// always nested in this order when present (spec.md §4.E).
type FilterOrderByOffsetLimit struct {
	Limit   *int
	Offset  *int
	OrderBy []OrderSelection
	Filter  *predicate.Predicate
	Child   Query
}

// MatchFilterOrderByOffsetLimit recognizes the canonical stack, peeling off
// as many of Limit/Offset/OrderBy/Filter as are present from the outside
// in. Any subset may be absent; absence is represented with nil/zero
// fields on the result.
func MatchFilterOrderByOffsetLimit(q Query) FilterOrderByOffsetLimit {
	var out FilterOrderByOffsetLimit
	cur := q
	if l, ok := cur.(Limit); ok {
		n := l.N
		out.Limit = &n
		cur = l.Child
	}
	if o, ok := cur.(Offset); ok {
		n := o.N
		out.Offset = &n
		cur = o.Child
	}
	if ob, ok := cur.(OrderBy); ok {
		out.OrderBy = ob.Selections
		cur = ob.Child
	}
	if f, ok := cur.(Filter); ok {
		pred := f.Pred
		out.Filter = &pred
		cur = f.Child
	}
	out.Child = cur
	return out
}

// NewFilterOrderByOffsetLimit rebuilds the canonical stack from its parts,
// preserving Limit(Offset(OrderBy(Filter(...)))) nesting order regardless
// of which parts are supplied.
func NewFilterOrderByOffsetLimit(spec FilterOrderByOffsetLimit) Query {
	cur := spec.Child
	if spec.Filter != nil {
		cur = Filter{Pred: *spec.Filter, Child: cur}
	}
	if len(spec.OrderBy) > 0 {
		cur = OrderBy{Selections: spec.OrderBy, Child: cur}
	}
	if spec.Offset != nil {
		cur = Offset{N: *spec.Offset, Child: cur}
	}
	if spec.Limit != nil {
		cur = Limit{N: *spec.Limit, Child: cur}
	}
	return cur
}
