package elaborate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-gql/qcore/elaborate"
	"github.com/lattice-gql/qcore/plan"
	"github.com/lattice-gql/qcore/schema"
	"github.com/lattice-gql/qcore/value"
)

func humanByIDOp(cond value.Value) *elaborate.UntypedOperation {
	return &elaborate.UntypedOperation{
		Kind: schema.Query,
		Name: "Hero",
		VarDefs: []elaborate.UntypedVarDef{
			{Name: "id", TypeName: "ID", NonNull: true},
		},
		Root: plan.Select{
			FieldName: "human",
			Args:      value.Bindings{{Name: "id", Value: value.UntypedVariableValue{Name: "id"}}},
			Child: plan.Skip{
				Sense: plan.IncludeIf,
				Cond:  cond,
				Child: plan.Select{FieldName: "name", Child: plan.Empty},
			},
		},
	}
}

func TestElaborateSubstitutesSuppliedVariable(t *testing.T) {
	cfg := elaborate.Config{Schema: buildTestSchema()}.WithDefaults()
	op := humanByIDOp(value.Boolean(true))
	out := elaborate.Elaborate(op, map[string]value.Value{"id": value.String("1000")}, cfg)
	require.False(t, out.IsFailure())

	result := out.ValueOrZero()
	sel := result.Query.(plan.Select)
	idVal, ok := sel.Args.Lookup("id")
	require.True(t, ok)
	assert.Equal(t, value.ID{Raw: "1000"}, idVal, "String is coerced to ID per the variable's declared type")
}

func TestElaborateMissingRequiredVariable(t *testing.T) {
	cfg := elaborate.Config{Schema: buildTestSchema()}.WithDefaults()
	op := humanByIDOp(value.Boolean(true))
	out := elaborate.Elaborate(op, map[string]value.Value{}, cfg)
	require.True(t, out.IsFailure())
	require.Len(t, out.Problems(), 1)
	assert.Equal(t, "MissingRequired", out.Problems()[0].Kind.String())
}

func TestElaborateUnknownVariable(t *testing.T) {
	cfg := elaborate.Config{Schema: buildTestSchema()}.WithDefaults()
	op := &elaborate.UntypedOperation{
		Kind: schema.Query,
		Name: "Hero",
		Root: plan.Select{
			FieldName: "human",
			Args:      value.Bindings{{Name: "id", Value: value.UntypedVariableValue{Name: "undeclared"}}},
			Child:     plan.Select{FieldName: "name", Child: plan.Empty},
		},
	}
	out := elaborate.Elaborate(op, nil, cfg)
	assert.True(t, out.IsFailure())
	found := false
	for _, p := range out.Problems() {
		if p.Kind.String() == "UnknownVariable" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestElaborateLeavesVariableValuedSkipForLater(t *testing.T) {
	cfg := elaborate.Config{Schema: buildTestSchema()}.WithDefaults()
	op := &elaborate.UntypedOperation{
		Kind: schema.Query,
		Name: "Hero",
		VarDefs: []elaborate.UntypedVarDef{
			{Name: "withName", TypeName: "Boolean", NonNull: false},
		},
		Root: plan.Select{
			FieldName: "human",
			Args:      value.Bindings{{Name: "id", Value: value.String("1")}},
			Child: plan.Skip{
				Sense: plan.IncludeIf,
				Cond:  value.UntypedVariableValue{Name: "withName"},
				Child: plan.Select{FieldName: "name", Child: plan.Empty},
			},
		},
	}
	out := elaborate.Elaborate(op, map[string]value.Value{}, cfg)
	require.False(t, out.IsFailure())
	sel := out.ValueOrZero().Query.(plan.Select)
	sk, ok := sel.Child.(plan.Skip)
	require.True(t, ok, "an unresolved variable-valued Cond is not folded away")
	assert.Equal(t, value.Absent, sk.Cond, "withName is optional and unsupplied, so it resolves to Absent rather than Variable")
}
