package plan

import (
	"github.com/lattice-gql/qcore/result"
	"github.com/lattice-gql/qcore/value"
)

// MergeQueries fuses sibling selections of the same (field, alias) into a
// single selection with a combined child, per spec.md §4.E step 5:
//
//  1. Filter out Empty.
//  2. Flatten one level of Group.
//  3. Partition into selection-like (possibly-renamed Select/Wrap/Count)
//     and the rest.
//  4. Group selections by (fieldName, resultName); merge each bucket's
//     children recursively; emit one selection per bucket with empty args.
//  5. Emit Group(rest ++ merged); collapse to a single element, or Empty.
//
// Two Selects sharing a name but different aliases remain distinct. Two
// sharing an alias are only mergeable if their arguments are equal; a
// mismatch is reported as AmbiguousMerge rather than silently picking one
// (spec.md's own resolution of that Open Question).
//
// TransformCursor and EnvironmentNode are never merged across (a second
// Open Question spec.md leaves unresolved in the source, resolved here by
// treating them as opaque — they fall into "rest").
func MergeQueries(qs []Query) *result.Result[Query] {
	// Step 1 + 2: drop Empty, flatten one level of Group.
	var flat []Query
	for _, q := range qs {
		if IsEmpty(q) {
			continue
		}
		if g, ok := q.(Group); ok {
			for _, c := range g.Children {
				if !IsEmpty(c) {
					flat = append(flat, c)
				}
			}
			continue
		}
		flat = append(flat, q)
	}

	// Step 3: partition.
	type bucketKey struct{ field, alias string }
	type bucket struct {
		key      bucketKey
		args     value.Bindings
		children []Query
		rebuild  func(child Query) Query
	}

	var rest []Query
	buckets := make(map[bucketKey]*bucket)
	var order []*bucket
	acc := result.NewAccumulator()

	for _, q := range flat {
		m, ok := matchOpaque(q)
		if ok {
			rest = append(rest, m)
			continue
		}
		match, ok := matchPossiblyRenamedSelect(q)
		if !ok {
			rest = append(rest, q)
			continue
		}
		key := bucketKey{field: match.FieldName, alias: match.ResultName}
		b, exists := buckets[key]
		if !exists {
			b = &bucket{key: key, args: match.Args, rebuild: match.rebuild}
			buckets[key] = b
			order = append(order, b)
		} else if !b.args.Equal(match.Args) {
			result.Absorb(acc, result.Failure[Query]([]*result.Problem{result.NewAmbiguousMerge(key.alias)}))
		}
		b.children = append(b.children, match.Child)
	}

	// Step 4: merge each bucket's children.
	merged := make([]Query, 0, len(order))
	for _, b := range order {
		childResult := MergeQueries(b.children)
		result.Absorb(acc, childResult)
		child := childResult.ValueOrZero()
		merged = append(merged, b.rebuild(child))
	}

	// Step 5.
	out := NewGroup(append(append([]Query{}, rest...), merged...)...)
	return result.Finish(acc, out)
}

// matchOpaque reports q if it is one of the node kinds merge must never
// descend into or combine across: TransformCursor and EnvironmentNode
// (Open Question #2, resolved as "preserve transparency for traversal,
// but do not merge through them" — see SPEC_FULL.md).
func matchOpaque(q Query) (Query, bool) {
	switch q.(type) {
	case TransformCursor, EnvironmentNode:
		return q, true
	default:
		return nil, false
	}
}
