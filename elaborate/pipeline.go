package elaborate

import (
	"github.com/lattice-gql/qcore/result"
	"github.com/lattice-gql/qcore/value"
)

// Elaborate runs the eight-phase pipeline (spec.md §4.F) over op, using
// vars as the caller-supplied variable values and cfg to resolve schema
// and per-type/per-field hooks. Phase 1 (variable binding) short-circuits
// the whole pipeline on failure, since every later phase assumes
// arguments are already concrete values; every other phase accumulates
// and continues as far as it meaningfully can (spec.md §4.G).
func Elaborate(op *UntypedOperation, vars map[string]value.Value, cfg Config) *result.Result[*Operation] {
	cfg = cfg.WithDefaults()
	cfg.Logger.Debugf("elaborating operation %q (%s)", op.Name, op.Kind)

	bound := bindVariables(op, vars)
	if bound.IsFailure() {
		cfg.Logger.Errorf("operation %q: variable binding failed", op.Name)
		return result.Failure[*Operation](bound.Problems())
	}

	rootType, ok := cfg.Schema.RootOperation(op.Kind)
	if !ok {
		problems := append(append(result.Problems{}, bound.Problems()...), result.NewUnknownType(op.Kind.String()))
		return result.Failure[*Operation](problems)
	}

	acc := result.NewAccumulator()
	result.Absorb(acc, bound)

	selected := elaborateSelects(bound.ValueOrZero(), rootType, cfg)
	result.Absorb(acc, selected)
	tree := selected.ValueOrZero()

	tree = hoistIntrospection(tree, cfg)

	narrowed := normalizeNarrows(tree, cfg)
	result.Absorb(acc, narrowed)
	tree = narrowed.ValueOrZero()

	tree = foldSkips(tree)

	tree = elaborateComponents(tree, rootType, cfg)

	merged := mergeTree(tree)
	result.Absorb(acc, merged)
	tree = merged.ValueOrZero()

	validated := validateTree(tree)
	result.Absorb(acc, validated)
	tree = validated.ValueOrZero()

	op2 := &Operation{
		Kind:       op.Kind,
		Name:       op.Name,
		Query:      tree,
		ResultType: rootType,
	}

	final := result.Finish(acc, op2)
	if final.IsFailure() {
		cfg.Logger.Errorf("operation %q: elaboration failed with %d problem(s)", op.Name, len(final.Problems()))
	} else if final.Kind() == result.KindWarning {
		cfg.Logger.Warnf("operation %q: elaborated with %d problem(s)", op.Name, len(final.Problems()))
	}
	return final
}
