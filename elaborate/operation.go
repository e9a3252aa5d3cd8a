// Package elaborate implements the multi-phase, type-directed rewrite that
// turns an untyped, parser-produced operation into a typed, executable
// plan tree (spec.md §4.F): variable binding, per-type select
// elaboration, introspection hoisting, type-refinement normalization,
// skip/include folding, component boundary elaboration, merge, and
// validation, in that order.
package elaborate

import (
	"github.com/lattice-gql/qcore/plan"
	"github.com/lattice-gql/qcore/schema"
	"github.com/lattice-gql/qcore/value"
)

// UntypedVarDef is one variable declared on an operation, as the parser
// produced it (spec.md §6.1): a name, its declared GraphQL type written
// without its outermost "!" (e.g. "Int", "[String!]"; an outer non-null
// marker is carried by NonNull instead — this package does not itself
// parse type syntax further than is needed to resolve a TypeRef), and an
// optional default literal.
type UntypedVarDef struct {
	Name        string
	TypeName    string
	NonNull     bool
	Default     value.Value
	HasDefault  bool
}

// UntypedOperation is the parser's output (spec.md §6.1): one of
// Query/Mutation/Subscription, carrying a root Query built only from
// pre-elaboration node kinds (Select, Group, UntypedNarrow, Skip with a
// possibly-variable condition, Empty) plus its variable definitions.
type UntypedOperation struct {
	Kind     schema.OperationKind
	Name     string
	Root     plan.Query
	VarDefs  []UntypedVarDef
}

// Operation is the elaborator's successful output (spec.md §4.F): a typed
// plan tree plus the GraphQL type its root evaluates to.
type Operation struct {
	Kind       schema.OperationKind
	Name       string
	Query      plan.Query
	ResultType schema.TypeRef
}
