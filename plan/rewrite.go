package plan

import (
	"github.com/lattice-gql/qcore/result"
	"github.com/lattice-gql/qcore/value"
)

// Ungroup flattens the top-level Group of q transitively, returning its
// children as a flat slice. A non-Group node ungroups to a one-element
// slice containing itself; Empty ungroups to an empty slice.
func Ungroup(q Query) []Query {
	if IsEmpty(q) {
		return nil
	}
	if g, ok := q.(Group); ok {
		var out []Query
		for _, c := range g.Children {
			out = append(out, Ungroup(c)...)
		}
		return out
	}
	return []Query{q}
}

// transparent descends through the node kinds that hasField/fieldAlias/
// children treat as see-through wrappers: Rename, EnvironmentNode, and
// TransformCursor (spec.md §4.E).
func transparent(q Query) (Query, bool) {
	switch n := q.(type) {
	case Rename:
		return n.Child, true
	case EnvironmentNode:
		return n.Child, true
	case TransformCursor:
		return n.Child, true
	default:
		return nil, false
	}
}

// Children descends through Rename/EnvironmentNode/TransformCursor and
// returns the ungrouped children of the underlying Select/Wrap/Count; for
// any other node kind it returns nil.
func Children(q Query) []Query {
	cur := q
	for {
		if next, ok := transparent(cur); ok {
			cur = next
			continue
		}
		break
	}
	switch n := cur.(type) {
	case Select:
		return Ungroup(n.Child)
	case Wrap:
		return Ungroup(n.Child)
	case Count:
		return Ungroup(n.Child)
	default:
		return nil
	}
}

// HasField recognizes a top-level selection of f, transparently to
// Rename/EnvironmentNode/TransformCursor.
func HasField(q Query, f string) bool {
	cur := q
	for {
		if next, ok := transparent(cur); ok {
			cur = next
			continue
		}
		break
	}
	if s, ok := cur.(Select); ok {
		return s.FieldName == f
	}
	if w, ok := cur.(Wrap); ok {
		return w.FieldName == f
	}
	if c, ok := cur.(Count); ok {
		return c.FieldName == f
	}
	return false
}

// FieldAlias returns the outermost Rename name encountered on the way to
// a selection of f, or ("", false) if there is none (either f is not
// selected at all, or it is selected without an alias).
func FieldAlias(q Query, f string) (string, bool) {
	cur := q
	var outerAlias string
	haveAlias := false
	for {
		if n, ok := cur.(Rename); ok {
			if !haveAlias {
				outerAlias = n.ResultName
				haveAlias = true
			}
			cur = n.Child
			continue
		}
		if next, ok := transparent(cur); ok {
			cur = next
			continue
		}
		break
	}
	if !HasField(cur, f) {
		return "", false
	}
	if !haveAlias {
		return "", false
	}
	return outerAlias, true
}

// possiblyRenamedSelect matches a (possibly Rename-wrapped) Select, Wrap,
// or Count, and reports its field name plus result (alias) name. It does
// not look through EnvironmentNode or TransformCursor. This is the Go
// rendering of the source's PossiblyRenamedSelect pattern-match extractor
// (spec.md §9): a pure function paired with a rebuild closure rather than
// a language-level pattern.
type possiblyRenamedSelectMatch struct {
	FieldName  string
	ResultName string
	Args       value.Bindings
	Child      Query
	rebuild    func(child Query) Query
}

func matchPossiblyRenamedSelect(q Query) (possiblyRenamedSelectMatch, bool) {
	switch n := q.(type) {
	case Select:
		return possiblyRenamedSelectMatch{
			FieldName:  n.FieldName,
			ResultName: n.FieldName,
			Args:       n.Args,
			Child:      n.Child,
			rebuild: func(child Query) Query {
				return Select{FieldName: n.FieldName, Args: n.Args, Child: child}
			},
		}, true
	case Wrap:
		return possiblyRenamedSelectMatch{
			FieldName:  n.FieldName,
			ResultName: n.FieldName,
			Child:      n.Child,
			rebuild: func(child Query) Query {
				return Wrap{FieldName: n.FieldName, Child: child}
			},
		}, true
	case Count:
		return possiblyRenamedSelectMatch{
			FieldName:  n.FieldName,
			ResultName: n.FieldName,
			Child:      n.Child,
			rebuild: func(child Query) Query {
				return Count{FieldName: n.FieldName, Child: child}
			},
		}, true
	case Rename:
		inner, ok := matchPossiblyRenamedSelect(n.Child)
		if !ok {
			return possiblyRenamedSelectMatch{}, false
		}
		inner.ResultName = n.ResultName
		innerRebuild := inner.rebuild
		inner.rebuild = func(child Query) Query {
			return Rename{ResultName: n.ResultName, Child: innerRebuild(child)}
		}
		return inner, true
	default:
		return possiblyRenamedSelectMatch{}, false
	}
}

// RootName returns the (name, alias) of q's unique root selection, if it
// has exactly one, transparently to Rename and to any outer
// EnvironmentNode/TransformCursor wrappers. ok is false if q is not a
// single possibly-renamed selection (e.g. it's a Group of more than one
// field, or not a selection at all).
func RootName(q Query) (name string, alias string, hasAlias bool, ok bool) {
	m, matched := matchPossiblyRenamedSelect(q)
	for !matched {
		switch n := q.(type) {
		case EnvironmentNode:
			q = n.Child
		case TransformCursor:
			q = n.Child
		default:
			return "", "", false, false
		}
		m, matched = matchPossiblyRenamedSelect(q)
	}
	return m.FieldName, m.ResultName, m.ResultName != m.FieldName, true
}

// RenameRoot returns q with its root selection aliased to n, or
// (nil, false) if q lacks a unique root selection.
func RenameRoot(q Query, n string) (Query, bool) {
	_, ok := matchPossiblyRenamedSelect(q)
	if !ok {
		return nil, false
	}
	return Rename{ResultName: n, Child: rebuildWithoutRename(q)}, true
}

// rebuildWithoutRename strips any outer Rename wrappers so RenameRoot
// does not nest two aliases on the same selection.
func rebuildWithoutRename(q Query) Query {
	if n, ok := q.(Rename); ok {
		return rebuildWithoutRename(n.Child)
	}
	return q
}

// MapFields applies f to every top-level selection node (Select/Wrap/
// Count) of q, in order, rebuilding the tree and propagating failures
// from the accumulating result carrier (spec.md §4.E).
func MapFields(q Query, f func(Query) *result.Result[Query]) *result.Result[Query] {
	tops := Ungroup(q)
	mapped := make([]Query, 0, len(tops))
	acc := result.NewAccumulator()
	for _, t := range tops {
		r := f(t)
		result.Absorb(acc, r)
		mapped = append(mapped, r.ValueOrZero())
	}
	return result.Finish(acc, NewGroup(mapped...))
}
