// Package sqlmapping is a reference implementation of the
// ObjectMapping/FieldMapping shape spec.md §6.3 describes as one possible
// downstream consumer of a compiled plan's Component nodes: a static,
// in-memory description of how a GraphQL type's fields correspond to SQL
// columns and relations. The compiler core never imports this package —
// only plan.Mapping's one-method TargetType() seam is visible from plan —
// so swapping sqlmapping for doobie- or skunk-flavored mappings elsewhere
// needs no change to plan or elaborate.
package sqlmapping

import "github.com/lattice-gql/qcore/plan"

// FieldMapping describes one field of an ObjectMapping.
type FieldMapping struct {
	// Column is the SQL column this field reads, empty if the field is
	// itself a relation handled by a nested ObjectMapping instead.
	Column string
	// Relation, when non-empty, names another ObjectMapping this field
	// delegates to (a foreign-key join), keyed the same way Root keys
	// top-level mappings.
	Relation string
}

// ObjectMapping describes how one GraphQL object type's selectable
// fields correspond to a single SQL table.
type ObjectMapping struct {
	Type    string
	Table   string
	Columns map[string]FieldMapping
}

func (m ObjectMapping) TargetType() string { return m.Type }

var _ plan.Mapping = ObjectMapping{}

// SqlField returns the FieldMapping for field, if declared.
func (m ObjectMapping) SqlField(field string) (FieldMapping, bool) {
	f, ok := m.Columns[field]
	return f, ok
}

// Root is a named registry of ObjectMappings, the unit a
// elaborate.ComponentElaborator registers against (one ObjectMapping per
// delegated GraphQL type).
type Root struct {
	objects map[string]ObjectMapping
}

// NewRoot builds an empty mapping registry.
func NewRoot() *Root { return &Root{objects: make(map[string]ObjectMapping)} }

// Add registers m under its own type name, returning the receiver so
// registrations can be chained.
func (r *Root) Add(m ObjectMapping) *Root {
	r.objects[m.Type] = m
	return r
}

// SqlObject looks up the ObjectMapping registered for typeName.
func (r *Root) SqlObject(typeName string) (ObjectMapping, bool) {
	m, ok := r.objects[typeName]
	return m, ok
}

// SqlRoot resolves a chain of relation names down to the ObjectMapping
// ultimately responsible for the field at the end of path, starting from
// root's mapping for startType. Used to build a Join description once a
// Component crosses into this mapping's territory.
func (r *Root) SqlRoot(startType string, path []string) (ObjectMapping, bool) {
	cur, ok := r.SqlObject(startType)
	if !ok {
		return ObjectMapping{}, false
	}
	for _, field := range path {
		fm, ok := cur.SqlField(field)
		if !ok || fm.Relation == "" {
			return ObjectMapping{}, false
		}
		cur, ok = r.SqlObject(fm.Relation)
		if !ok {
			return ObjectMapping{}, false
		}
	}
	return cur, true
}
