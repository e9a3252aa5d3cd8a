package schema

import "github.com/lattice-gql/qcore/value"

// TypeDef is one named type description in an in-memory Schema.
type TypeDef struct {
	Name    string
	Kind    Kind
	Fields  map[string]*FieldDef
	Members []string // object type names possible for a Union/Interface
	Values  []string // declared names for an Enum
	OfType  string   // element type name for ListKind/NonNullKind wrappers
}

// FieldDef is one field declaration on an Object or Interface TypeDef.
type FieldDef struct {
	Name string
	Type TypeRef
	Args []InputValue
}

// Schema is a concrete, programmatically-built implementation of Facade.
// It is the one used throughout this repository's own tests and the
// example/starwars demo; a real deployment would instead adapt an SDL or
// reflection-derived schema loader (explicitly out of scope, spec.md §1)
// to implement Facade directly.
type Schema struct {
	types        map[string]*TypeDef
	queryRoot    string
	mutationRoot string
	subRoot      string
}

// NewSchema builds an empty Schema; use Add* methods to populate it.
func NewSchema() *Schema {
	return &Schema{types: make(map[string]*TypeDef)}
}

// AddType registers a type description, keyed by its name.
func (s *Schema) AddType(t *TypeDef) *Schema {
	if t.Fields == nil {
		t.Fields = make(map[string]*FieldDef)
	}
	s.types[t.Name] = t
	return s
}

// SetRoot declares which type serves as the root for op.
func (s *Schema) SetRoot(op OperationKind, typeName string) *Schema {
	switch op {
	case Query:
		s.queryRoot = typeName
	case Mutation:
		s.mutationRoot = typeName
	case Subscription:
		s.subRoot = typeName
	}
	return s
}

var _ Facade = (*Schema)(nil)

func (s *Schema) LookupType(name string) (TypeRef, bool) {
	if _, ok := s.types[name]; !ok {
		return TypeRef{}, false
	}
	return NewTypeRef(name), true
}

func (s *Schema) FieldType(tpe TypeRef, field string) (TypeRef, bool) {
	td, ok := s.types[tpe.Name()]
	if !ok {
		return TypeRef{}, false
	}
	fd, ok := td.Fields[field]
	if !ok {
		return TypeRef{}, false
	}
	return fd.Type, true
}

func (s *Schema) FieldArguments(tpe TypeRef, field string) ([]InputValue, bool) {
	td, ok := s.types[tpe.Name()]
	if !ok {
		return nil, false
	}
	fd, ok := td.Fields[field]
	if !ok {
		return nil, false
	}
	return fd.Args, true
}

func (s *Schema) IsLeaf(tpe TypeRef) bool {
	td, ok := s.types[unwrap(tpe.Name())]
	if !ok {
		// Unknown types are conservatively treated as non-leaf so that
		// UnknownField/UnknownType surfaces the real problem instead of a
		// confusing LeafSubselection.
		return false
	}
	return td.Kind == Scalar || td.Kind == Enum
}

func (s *Schema) PossibleTypes(tpe TypeRef) []TypeRef {
	td, ok := s.types[unwrap(tpe.Name())]
	if !ok {
		return nil
	}
	switch td.Kind {
	case Object:
		return []TypeRef{NewTypeRef(td.Name)}
	case Union, Interface:
		out := make([]TypeRef, len(td.Members))
		for i, m := range td.Members {
			out[i] = NewTypeRef(m)
		}
		return out
	default:
		return nil
	}
}

func (s *Schema) RootOperation(op OperationKind) (TypeRef, bool) {
	var name string
	switch op {
	case Query:
		name = s.queryRoot
	case Mutation:
		name = s.mutationRoot
	case Subscription:
		name = s.subRoot
	}
	if name == "" {
		return TypeRef{}, false
	}
	return NewTypeRef(name), true
}

func (s *Schema) KindOf(tpe TypeRef) (Kind, bool) {
	td, ok := s.types[tpe.Name()]
	if !ok {
		return 0, false
	}
	return td.Kind, true
}

// unwrap strips no wrapping today (List/NonNull are represented as their
// own named wrapper types in this minimal in-memory model, via OfType);
// kept as a seam so list/non-null unwrapping has a single call site.
func unwrap(name string) string { return name }

// Arg is a convenience constructor for a required InputValue with no
// default.
func Arg(name string, tpe TypeRef) InputValue {
	return InputValue{Name: name, Type: tpe}
}

// ArgWithDefault is a convenience constructor for an optional InputValue.
func ArgWithDefault(name string, tpe TypeRef, def value.Value) InputValue {
	return InputValue{Name: name, Type: tpe, Default: def, HasDefault: true}
}
