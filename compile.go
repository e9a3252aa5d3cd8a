// Package qcore wires the query algebra, elaborator pipeline, and an
// external text parser into a single compiler entry point (spec.md
// §6.2): Compile accepts either already-parsed operations or GraphQL
// operation text and runs them through elaborate.Elaborate against a
// caller-supplied schema.Facade and elaborate.Config.
package qcore

import (
	"fmt"

	"github.com/lattice-gql/qcore/elaborate"
	"github.com/lattice-gql/qcore/internal/gqltext"
	"github.com/lattice-gql/qcore/result"
	"github.com/lattice-gql/qcore/value"
)

// Compile elaborates input into a typed Operation. input is either a
// string of GraphQL operation text (parsed via internal/gqltext, which
// does syntax only — no schema validation) or an
// *elaborate.UntypedOperation built directly by a caller that already has
// its own parser. Any other input type is an InternalInvariant problem.
//
// When input is text containing more than one operation, name selects
// which one to compile; name is ignored for a single operation and for
// the *elaborate.UntypedOperation form. An empty document, or a name that
// matches no operation, fails with InternalInvariant.
func Compile(input any, name string, variables map[string]value.Value, cfg elaborate.Config) *result.Result[*elaborate.Operation] {
	switch v := input.(type) {
	case *elaborate.UntypedOperation:
		return elaborate.Elaborate(v, variables, cfg)

	case string:
		parsed := gqltext.Parse("operation", v)
		if parsed.IsFailure() {
			return result.Failure[*elaborate.Operation](parsed.Problems())
		}
		ops := parsed.ValueOrZero()
		op, err := selectOperation(ops, name)
		if err != nil {
			problems := append(append(result.Problems{}, parsed.Problems()...), result.NewInternalInvariant(err, "%s", err.Error()))
			return result.Failure[*elaborate.Operation](problems)
		}
		return elaborate.Elaborate(op, variables, cfg)

	default:
		return result.Failure[*elaborate.Operation](result.Problems{
			result.NewInternalInvariant(nil, "unsupported Compile input type %T", input),
		})
	}
}

func selectOperation(ops []*elaborate.UntypedOperation, name string) (*elaborate.UntypedOperation, error) {
	if len(ops) == 0 {
		return nil, fmt.Errorf("document contains no operations")
	}
	if len(ops) == 1 {
		return ops[0], nil
	}
	if name == "" {
		return nil, fmt.Errorf("document contains %d operations; an operation name is required", len(ops))
	}
	for _, op := range ops {
		if op.Name == name {
			return op, nil
		}
	}
	return nil, fmt.Errorf("no operation named %q in document", name)
}
