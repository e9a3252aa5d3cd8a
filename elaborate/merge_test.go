package elaborate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-gql/qcore/plan"
)

func TestMergeTreeMergesAtEveryDepth(t *testing.T) {
	inner := plan.Group{Children: []plan.Query{
		plan.Select{FieldName: "friend", Child: plan.Select{FieldName: "name", Child: plan.Empty}},
		plan.Select{FieldName: "friend", Child: plan.Select{FieldName: "id", Child: plan.Empty}},
	}}
	tree := plan.Select{FieldName: "human", Child: inner}

	out := mergeTree(tree)
	require.False(t, out.IsFailure())

	human := out.ValueOrZero().(plan.Select)
	friend := human.Child.(plan.Select)
	assert.Equal(t, "friend", friend.FieldName)
	assert.Len(t, plan.Ungroup(friend.Child), 2)
}

func TestMergeTreePassesThroughNonGroupNodes(t *testing.T) {
	leaf := plan.Select{FieldName: "name", Child: plan.Empty}
	out := mergeTree(leaf)
	require.False(t, out.IsFailure())
	assert.Equal(t, leaf, out.ValueOrZero())
}
