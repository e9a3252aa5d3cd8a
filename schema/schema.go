// Package schema provides a symbolic, nominal-equality view onto an
// externally supplied GraphQL schema: named type references plus the
// field-lookup surface the elaborator needs. It does not parse SDL or load
// schemas from any particular source — that remains an external
// collaborator's job (spec.md §1); this package only defines the façade
// the elaborator programs against, plus one concrete in-memory
// implementation used by tests, examples, and anything that builds a
// schema programmatically.
package schema

import (
	"fmt"

	"github.com/lattice-gql/qcore/value"
)

// Kind classifies a named type.
type Kind int

const (
	Scalar Kind = iota
	Object
	Interface
	Union
	Enum
	InputObject
	ListKind
	NonNullKind
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "SCALAR"
	case Object:
		return "OBJECT"
	case Interface:
		return "INTERFACE"
	case Union:
		return "UNION"
	case Enum:
		return "ENUM"
	case InputObject:
		return "INPUT_OBJECT"
	case ListKind:
		return "LIST"
	case NonNullKind:
		return "NON_NULL"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// OperationKind identifies one of the three GraphQL root operation types.
type OperationKind int

const (
	Query OperationKind = iota
	Mutation
	Subscription
)

func (k OperationKind) String() string {
	switch k {
	case Query:
		return "query"
	case Mutation:
		return "mutation"
	case Subscription:
		return "subscription"
	default:
		return "unknown"
	}
}

// TypeRef is a symbolic reference into a Schema, resolvable to a concrete
// type description by name. Equality is nominal: two TypeRefs are equal
// iff their qualified names match, regardless of which Schema value
// produced them. This is deliberate (design note, spec.md §9): the schema
// is modeled as an arena of named descriptions indexed by name, not a
// graph of pointers, so TypeRefs never participate in reference cycles.
type TypeRef struct {
	name string
}

// NewTypeRef builds a bare TypeRef from a name. It is not guaranteed to
// resolve against any particular Schema until passed through Facade
// methods.
func NewTypeRef(name string) TypeRef { return TypeRef{name: name} }

// Name returns the qualified type name.
func (t TypeRef) Name() string { return t.name }

// Equal reports nominal equality.
func (t TypeRef) Equal(other TypeRef) bool { return t.name == other.name }

func (t TypeRef) String() string { return t.name }

// IsZero reports whether this TypeRef was never assigned a name.
func (t TypeRef) IsZero() bool { return t.name == "" }

// InputValue describes one declared argument (or input-object field).
type InputValue struct {
	Name       string
	Type       TypeRef
	Default    value.Value
	HasDefault bool
}

// Facade is the surface the elaborator and predicate builders consult.
// Implementations are expected to be cheap and side-effect free; the
// elaborator calls these repeatedly during a single compile.
type Facade interface {
	// LookupType resolves a bare type name to a TypeRef, if declared.
	LookupType(name string) (TypeRef, bool)

	// FieldType returns the declared type of a field on tpe.
	FieldType(tpe TypeRef, field string) (TypeRef, bool)

	// FieldArguments returns the declared argument list of a field on tpe.
	FieldArguments(tpe TypeRef, field string) ([]InputValue, bool)

	// IsLeaf reports whether tpe is a leaf (scalar or enum) type, i.e.
	// selections of it must not carry a subselection set.
	IsLeaf(tpe TypeRef) bool

	// PossibleTypes returns the concrete object types tpe may resolve to
	// at runtime: tpe itself for an Object, its members for a Union or
	// Interface, and nil otherwise.
	PossibleTypes(tpe TypeRef) []TypeRef

	// RootOperation returns the root type for one of Query/Mutation/
	// Subscription, if the schema declares it.
	RootOperation(op OperationKind) (TypeRef, bool)

	// KindOf returns the Kind of a named type.
	KindOf(tpe TypeRef) (Kind, bool)
}
