package elaborate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-gql/qcore/plan"
	"github.com/lattice-gql/qcore/value"
)

func TestValidateTreeCleanTreeProducesNoProblems(t *testing.T) {
	tree := plan.Select{FieldName: "human", Child: plan.Select{FieldName: "name", Child: plan.Empty}}
	out := validateTree(tree)
	require.False(t, out.IsFailure())
	assert.Empty(t, out.Problems())
}

func TestValidateTreeCatchesSurvivingUntypedNarrow(t *testing.T) {
	tree := plan.UntypedNarrow{TypeName: "Human", Child: plan.Empty}
	out := validateTree(tree)
	require.False(t, out.IsFailure(), "an internal invariant is reported as a warning, not a hard failure")
	require.Len(t, out.Problems(), 1)
	assert.Equal(t, "InternalInvariant", out.Problems()[0].Kind.String())
}

func TestValidateTreeCatchesSurvivingUntypedValue(t *testing.T) {
	tree := plan.Select{
		FieldName: "human",
		Args:      value.Bindings{{Name: "id", Value: value.UntypedEnumValue{Name: "FOO"}}},
		Child:     plan.Empty,
	}
	out := validateTree(tree)
	require.Len(t, out.Problems(), 1)
	assert.Contains(t, out.Problems()[0].Error(), "UntypedEnumValue")
}
