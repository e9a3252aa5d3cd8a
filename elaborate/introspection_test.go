package elaborate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lattice-gql/qcore/plan"
)

func TestHoistIntrospectionWrapsSchemaAndType(t *testing.T) {
	cfg := Config{Schema: testSchema()}.WithDefaults()
	tree := plan.NewGroup(
		plan.Select{FieldName: "__schema", Child: plan.Empty},
		plan.Select{FieldName: "__type", Child: plan.Empty},
		plan.Select{FieldName: "name", Child: plan.Empty},
	)

	out := hoistIntrospection(tree, cfg)
	g := out.(plan.Group)
	_, ok := g.Children[0].(plan.Introspect)
	assert.True(t, ok)
	_, ok = g.Children[1].(plan.Introspect)
	assert.True(t, ok)
	_, ok = g.Children[2].(plan.Introspect)
	assert.False(t, ok, "__typename-style ordinary fields are left alone")
}

func TestHoistIntrospectionLeavesTypenameAlone(t *testing.T) {
	cfg := Config{Schema: testSchema()}.WithDefaults()
	sel := plan.Select{FieldName: "__typename", Child: plan.Empty}
	out := hoistIntrospection(sel, cfg)
	_, ok := out.(plan.Introspect)
	assert.False(t, ok)
}
