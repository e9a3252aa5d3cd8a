// Package effect defines the single point (spec.md §5) where the pure,
// single-threaded compiler core yields to an external concurrency
// capability: EffectHandler. The core never calls an EffectHandler itself
// — it only ever holds one, opaquely, inside a plan.Effect or
// plan.Component node — so this package depends on plan, never the other
// way around.
package effect

import (
	"context"

	"github.com/lattice-gql/qcore/plan"
	"github.com/lattice-gql/qcore/predicate"
	"github.com/lattice-gql/qcore/result"
)

// EffectRequest pairs a compiled subquery with the cursor it should be
// evaluated against; a batch of these is what an EffectHandler receives so
// it can coalesce/batch however its backend prefers.
type EffectRequest struct {
	Query  plan.Query
	Cursor predicate.Cursor
}

// EffectResponse pairs a request's Query back up with the Cursor produced
// by running it, mirroring EffectRequest so a caller can zip inputs to
// outputs positionally or by identity.
type EffectResponse struct {
	Query  plan.Query
	Cursor predicate.Cursor
}

// EffectHandler is the abstract capability handle spec.md §5 calls out as
// "the only point where the core yields to an external scheduler": a
// single asynchronous method. context.Context stands in for the source's
// higher-kinded effect context F (Go generics do not support
// higher-kinded type parameters; see SPEC_FULL.md §5). Implementations own
// batching, scheduling, and cooperative cancellation.
type EffectHandler interface {
	// Name identifies the handler for rendering/diagnostics; it also
	// satisfies plan.EffectHandler so a value implementing EffectHandler
	// can be stored directly in a plan.Effect node.
	Name() string

	// RunEffects evaluates every request, yielding to whatever scheduler
	// the implementation wraps. Cancellation is cooperative: RunEffects
	// must observe ctx, not invent its own cancellation source (spec.md
	// §5).
	RunEffects(ctx context.Context, requests []EffectRequest) (*result.Result[[]EffectResponse], error)
}

var _ plan.EffectHandler = EffectHandler(nil)
