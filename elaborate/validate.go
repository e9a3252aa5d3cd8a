package elaborate

import (
	"github.com/lattice-gql/qcore/plan"
	"github.com/lattice-gql/qcore/result"
	"github.com/lattice-gql/qcore/value"
)

// validateTree is phase 8 (spec.md §4.F): a final structural sweep
// confirming the invariants the earlier phases are each individually
// supposed to have established — P5 (no pre-elaboration node or value
// survives) foremost among them. A violation here means an earlier phase
// has a bug, not that the input was malformed, so it is reported as
// InternalInvariant rather than any of the user-facing problem kinds.
func validateTree(q plan.Query) *result.Result[plan.Query] {
	acc := result.NewAccumulator()
	absorb := func(format string, args ...interface{}) {
		result.Absorb(acc, result.Warning[struct{}](result.Problems{result.NewInternalInvariant(nil, format, args...)}, struct{}{}))
	}

	walkValidate(q, absorb)
	return result.Finish(acc, q)
}

func walkValidate(q plan.Query, absorb func(string, ...interface{})) {
	switch n := q.(type) {
	case plan.UntypedNarrow:
		absorb("UntypedNarrow survived elaboration for type %q", n.TypeName)
	case plan.Select:
		validateValue(n.Args, absorb)
	case plan.Skip:
		validateArgValue(n.Cond, absorb)
	}
	mapChildren(q, func(c plan.Query) plan.Query {
		walkValidate(c, absorb)
		return c
	})
}

func validateValue(bs value.Bindings, absorb func(string, ...interface{})) {
	for _, b := range bs {
		validateArgValue(b.Value, absorb)
	}
}

func validateArgValue(v value.Value, absorb func(string, ...interface{})) {
	switch n := v.(type) {
	case value.UntypedEnumValue:
		absorb("UntypedEnumValue %q survived elaboration", n.Name)
	case value.UntypedVariableValue:
		absorb("UntypedVariableValue %q survived elaboration", n.Name)
	case value.List:
		for _, e := range n.Elems {
			validateArgValue(e, absorb)
		}
	case value.Object:
		for _, f := range n.Fields {
			validateArgValue(f.Value, absorb)
		}
	}
}
