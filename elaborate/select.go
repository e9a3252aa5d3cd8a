package elaborate

import (
	"strings"

	"github.com/lattice-gql/qcore/plan"
	"github.com/lattice-gql/qcore/result"
	"github.com/lattice-gql/qcore/schema"
)

// elaborateSelects is phase 2 (spec.md §4.F): walks q top-down under the
// type context parentType, validating every ordinary field against
// cfg.Schema (unknown field, unknown argument, leaf/non-leaf
// subselection), then, once a Select's child has itself been elaborated,
// offering cfg.Selects the chance to rewrite it (the per-type hook a
// caller uses to turn a root id-lookup field into
// Unique(Filter(Eql(...), child)), spec.md's worked example).
//
// Fields whose name begins with "__" are introspection meta-fields
// (__typename, __schema, __type); this phase does not validate them
// against cfg.Schema at all, leaving that subtree untouched for phase 3
// to recognize and wrap in plan.Introspect.
func elaborateSelects(q plan.Query, parentType schema.TypeRef, cfg Config) *result.Result[plan.Query] {
	switch n := q.(type) {
	case plan.Select:
		return elaborateOneSelect(n, parentType, cfg)

	case plan.Group:
		rebuilt := result.Traverse(n.Children, func(c plan.Query) *result.Result[plan.Query] {
			return elaborateSelects(c, parentType, cfg)
		})
		return result.Map(rebuilt, func(cs []plan.Query) plan.Query { return plan.NewGroup(cs...) })

	case plan.UntypedNarrow:
		tpe, ok := cfg.Schema.LookupType(n.TypeName)
		if !ok {
			return result.Warning(result.Problems{result.NewUnknownType(n.TypeName)}, plan.Query(n))
		}
		child := elaborateSelects(n.Child, tpe, cfg)
		return result.Map(child, func(c plan.Query) plan.Query {
			return plan.UntypedNarrow{TypeName: n.TypeName, Child: c}
		})

	case plan.Rename:
		child := elaborateSelects(n.Child, parentType, cfg)
		return result.Map(child, func(c plan.Query) plan.Query {
			n.Child = c
			return n
		})

	case plan.Skip:
		child := elaborateSelects(n.Child, parentType, cfg)
		return result.Map(child, func(c plan.Query) plan.Query {
			n.Child = c
			return n
		})

	default:
		return result.Success(q)
	}
}

func elaborateOneSelect(n plan.Select, parentType schema.TypeRef, cfg Config) *result.Result[plan.Query] {
	if strings.HasPrefix(n.FieldName, "__") {
		return result.Success[plan.Query](n)
	}

	acc := result.NewAccumulator()
	absorbProblem := func(p *result.Problem) {
		result.Absorb(acc, result.Warning[struct{}](result.Problems{p}, struct{}{}))
	}

	fieldType, ok := cfg.Schema.FieldType(parentType, n.FieldName)
	if !ok {
		result.Absorb(acc, result.Failure[plan.Query](result.Problems{result.NewUnknownField(parentType.Name(), n.FieldName)}))
		return result.Finish(acc, plan.Query(n))
	}

	declared, _ := cfg.Schema.FieldArguments(parentType, n.FieldName)
	declaredNames := make(map[string]bool, len(declared))
	for _, d := range declared {
		declaredNames[d.Name] = true
	}
	for _, arg := range n.Args {
		if !declaredNames[arg.Name] {
			absorbProblem(result.NewUnknownArgument(n.FieldName, arg.Name))
		}
	}

	leaf := cfg.Schema.IsLeaf(fieldType)
	childIsEmpty := plan.IsEmpty(n.Child)
	switch {
	case leaf && !childIsEmpty:
		absorbProblem(result.NewLeafSubselection(n.FieldName, fieldType.Name()))
	case !leaf && childIsEmpty:
		absorbProblem(result.NewNonLeafSubselection(n.FieldName, fieldType.Name()))
	}

	// A leaf type has no fields to validate a subselection against, so don't
	// descend into one: that would just pile an UnknownField problem on top
	// of the LeafSubselection one already recorded above.
	if !leaf {
		childResult := elaborateSelects(n.Child, fieldType, cfg)
		result.Absorb(acc, childResult)
		n.Child = childResult.ValueOrZero()
	}

	if acc.Failed() {
		return result.Finish(acc, plan.Query(n))
	}

	if rw, ok := cfg.Selects.Lookup(fieldType); ok {
		rewritten := rw(n, fieldType)
		result.Absorb(acc, rewritten)
		return result.Finish(acc, rewritten.ValueOrZero())
	}

	return result.Finish(acc, plan.Query(n))
}
