package effect

import (
	"context"

	"github.com/lattice-gql/qcore/result"
	"golang.org/x/sync/errgroup"
)

// ErrgroupHandler is a reference EffectHandler that runs every request
// concurrently, bounded by Concurrency, using golang.org/x/sync/errgroup —
// the same package the teacher reaches for in
// graphql/schemabuilder/pagination.go and batch/benchmark_test.go for
// bounded concurrent fan-out. It exists to exercise the EffectHandler seam
// end to end in tests and the example/starwars demo; the compiler core
// never imports this package.
type ErrgroupHandler struct {
	// Concurrency bounds how many requests run at once. Zero means
	// unbounded.
	Concurrency int
	// Run executes a single request against its cursor, producing the
	// resulting cursor or an error.
	Run func(ctx context.Context, req EffectRequest) (EffectResponse, error)
}

func (h *ErrgroupHandler) Name() string { return "ErrgroupHandler" }

func (h *ErrgroupHandler) RunEffects(ctx context.Context, requests []EffectRequest) (*result.Result[[]EffectResponse], error) {
	responses := make([]EffectResponse, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	if h.Concurrency > 0 {
		g.SetLimit(h.Concurrency)
	}

	for i, req := range requests {
		i, req := i, req
		g.Go(func() error {
			resp, err := h.Run(gctx, req)
			if err != nil {
				return err
			}
			responses[i] = resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result.Success(responses), nil
}

var _ EffectHandler = (*ErrgroupHandler)(nil)
