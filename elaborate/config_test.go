package elaborate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-gql/qcore/plan"
	"github.com/lattice-gql/qcore/result"
	"github.com/lattice-gql/qcore/schema"
)

func TestSelectElaboratorLookup(t *testing.T) {
	se := NewSelectElaborator()
	_, ok := se.Lookup(schema.NewTypeRef("Human"))
	assert.False(t, ok)

	se.On(schema.NewTypeRef("Human"), func(sel plan.Select, tpe schema.TypeRef) *result.Result[plan.Query] {
		return result.Success[plan.Query](sel)
	})
	_, ok = se.Lookup(schema.NewTypeRef("Human"))
	assert.True(t, ok)
}

func TestComponentElaboratorDelegateDefaultsToTrivialJoin(t *testing.T) {
	ce := NewComponentElaborator().Delegate(schema.NewTypeRef("Query"), "droid", fakeMapping{target: "Droid"}, nil)
	m, ok := ce.Lookup(schema.NewTypeRef("Query"), "droid")
	require.True(t, ok)
	assert.Equal(t, plan.TrivialJoin, m.Join)
}

func TestConfigWithDefaultsFillsInZeroFields(t *testing.T) {
	cfg := Config{Schema: testSchema()}.WithDefaults()
	assert.NotNil(t, cfg.Selects)
	assert.NotNil(t, cfg.Components)
	assert.NotNil(t, cfg.Logger)
}
