package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-gql/qcore/plan"
	"github.com/lattice-gql/qcore/value"
)

func TestMergeQueriesFusesSameFieldAndAlias(t *testing.T) {
	a := plan.Select{FieldName: "human", Child: plan.Select{FieldName: "name", Child: plan.Empty}}
	b := plan.Select{FieldName: "human", Child: plan.Select{FieldName: "homePlanet", Child: plan.Empty}}

	out := plan.MergeQueries([]plan.Query{a, b})
	require.False(t, out.IsFailure())

	merged, ok := out.ValueOrZero().(plan.Select)
	require.True(t, ok)
	assert.Equal(t, "human", merged.FieldName)

	children := plan.Ungroup(merged.Child)
	assert.Len(t, children, 2)
}

func TestMergeQueriesDistinctAliasesStaySeparate(t *testing.T) {
	a := plan.Rename{ResultName: "h1", Child: plan.Select{FieldName: "human", Args: value.Bindings{{Name: "id", Value: value.Int(1)}}, Child: plan.Empty}}
	b := plan.Rename{ResultName: "h2", Child: plan.Select{FieldName: "human", Args: value.Bindings{{Name: "id", Value: value.Int(2)}}, Child: plan.Empty}}

	out := plan.MergeQueries([]plan.Query{a, b})
	require.False(t, out.IsFailure())
	g, ok := out.ValueOrZero().(plan.Group)
	require.True(t, ok)
	assert.Len(t, g.Children, 2)
}

func TestMergeQueriesAmbiguousMerge(t *testing.T) {
	a := plan.Select{FieldName: "human", Args: value.Bindings{{Name: "id", Value: value.Int(1)}}, Child: plan.Select{FieldName: "name", Child: plan.Empty}}
	b := plan.Select{FieldName: "human", Args: value.Bindings{{Name: "id", Value: value.Int(2)}}, Child: plan.Select{FieldName: "homePlanet", Child: plan.Empty}}

	out := plan.MergeQueries([]plan.Query{a, b})
	assert.True(t, out.IsFailure())
	require.Len(t, out.Problems(), 1)
	assert.Equal(t, "AmbiguousMerge", out.Problems()[0].Kind.String())
}

func TestMergeQueriesDropsEmptyAndFlattensGroups(t *testing.T) {
	g := plan.Group{Children: []plan.Query{sel("a"), plan.Empty, sel("b")}}
	out := plan.MergeQueries([]plan.Query{g})
	require.False(t, out.IsFailure())
	merged, ok := out.ValueOrZero().(plan.Group)
	require.True(t, ok)
	assert.Len(t, merged.Children, 2)
}

func TestMergeQueriesLeavesTransformCursorOpaque(t *testing.T) {
	tc := plan.TransformCursor{Child: sel("a")}
	out := plan.MergeQueries([]plan.Query{tc, tc})
	require.False(t, out.IsFailure())
	g, ok := out.ValueOrZero().(plan.Group)
	require.True(t, ok)
	assert.Len(t, g.Children, 2, "TransformCursor siblings are never merged across")
}
