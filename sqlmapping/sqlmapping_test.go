package sqlmapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-gql/qcore/sqlmapping"
)

func buildTestRoot() *sqlmapping.Root {
	return sqlmapping.NewRoot().
		Add(sqlmapping.ObjectMapping{
			Type:  "Droid",
			Table: "droids",
			Columns: map[string]sqlmapping.FieldMapping{
				"id":      {Column: "id"},
				"name":    {Column: "name"},
				"creator": {Relation: "Human"},
			},
		}).
		Add(sqlmapping.ObjectMapping{
			Type:  "Human",
			Table: "humans",
			Columns: map[string]sqlmapping.FieldMapping{
				"id":   {Column: "id"},
				"name": {Column: "name"},
			},
		})
}

func TestObjectMappingTargetType(t *testing.T) {
	m := sqlmapping.ObjectMapping{Type: "Droid"}
	assert.Equal(t, "Droid", m.TargetType())
}

func TestSqlField(t *testing.T) {
	m := sqlmapping.ObjectMapping{Columns: map[string]sqlmapping.FieldMapping{"id": {Column: "id"}}}
	fm, ok := m.SqlField("id")
	require.True(t, ok)
	assert.Equal(t, "id", fm.Column)

	_, ok = m.SqlField("missing")
	assert.False(t, ok)
}

func TestSqlObject(t *testing.T) {
	root := buildTestRoot()
	m, ok := root.SqlObject("Droid")
	require.True(t, ok)
	assert.Equal(t, "droids", m.Table)

	_, ok = root.SqlObject("Nonexistent")
	assert.False(t, ok)
}

func TestSqlRootResolvesRelationChain(t *testing.T) {
	root := buildTestRoot()
	m, ok := root.SqlRoot("Droid", []string{"creator"})
	require.True(t, ok)
	assert.Equal(t, "humans", m.Table)

	m, ok = root.SqlRoot("Droid", nil)
	require.True(t, ok)
	assert.Equal(t, "droids", m.Table)
}

func TestSqlRootFailsOnNonRelationField(t *testing.T) {
	root := buildTestRoot()
	_, ok := root.SqlRoot("Droid", []string{"name"})
	assert.False(t, ok, "name has no Relation to follow")
}

func TestSqlRootFailsOnUnknownStartType(t *testing.T) {
	root := buildTestRoot()
	_, ok := root.SqlRoot("Unknown", nil)
	assert.False(t, ok)
}
