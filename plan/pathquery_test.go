package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-gql/qcore/plan"
)

func TestMkPathQuerySharesPrefixes(t *testing.T) {
	out := plan.MkPathQuery([][]string{
		{"human", "name"},
		{"human", "homePlanet"},
		{"droid", "name"},
	})

	g, ok := out.(plan.Group)
	require.True(t, ok)
	require.Len(t, g.Children, 2)

	human := g.Children[0].(plan.Select)
	assert.Equal(t, "human", human.FieldName)
	humanChildren := plan.Ungroup(human.Child)
	require.Len(t, humanChildren, 2)

	droid := g.Children[1].(plan.Select)
	assert.Equal(t, "droid", droid.FieldName)
}

func TestMkPathQueryDeduplicatesOneElementPaths(t *testing.T) {
	out := plan.MkPathQuery([][]string{{"id"}, {"id"}})
	s, ok := out.(plan.Select)
	require.True(t, ok)
	assert.Equal(t, "id", s.FieldName)
	assert.True(t, plan.IsEmpty(s.Child))
}

func TestMkPathQueryIgnoresEmptyPaths(t *testing.T) {
	out := plan.MkPathQuery([][]string{{}, {"id"}})
	s, ok := out.(plan.Select)
	require.True(t, ok)
	assert.Equal(t, "id", s.FieldName)
}
