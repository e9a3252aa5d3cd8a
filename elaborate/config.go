package elaborate

import (
	"github.com/lattice-gql/qcore/internal/log"
	"github.com/lattice-gql/qcore/plan"
	"github.com/lattice-gql/qcore/result"
	"github.com/lattice-gql/qcore/schema"
)

// SelectRewrite is a per-type hook invoked by phase 2 after structural
// validation of a Select succeeds, letting a type introduce
// domain-specific rewriting (spec.md §4.F phase 2's example: turning a
// root lookup-by-id field into Unique(Filter(Eql(...), child))). sel is
// the already-type-checked node with Child already elaborated; tpe is the
// type the field resolves to, which is also the type On was registered
// against (phase 2 looks the rewrite up by the field's resolved type).
type SelectRewrite func(sel plan.Select, tpe schema.TypeRef) *result.Result[plan.Query]

// SelectElaborator is a dispatch table from TypeRef to SelectRewrite
// (spec.md §9: "Represent as a hashmap keyed by nominal type identity;
// lookup falls back to an identity rewrite"). Builder composes multiple
// handlers by chaining: later registrations for the same type replace
// earlier ones, matching the teacher's last-registration-wins convention
// in schemabuilder/schema.go.
type SelectElaborator struct {
	byType map[string]SelectRewrite
}

// NewSelectElaborator builds an empty dispatch table; every type falls
// back to the identity rewrite until registered.
func NewSelectElaborator() *SelectElaborator {
	return &SelectElaborator{byType: make(map[string]SelectRewrite)}
}

// On registers (or replaces) the rewrite for tpe, returning the receiver
// so registrations can be chained.
func (e *SelectElaborator) On(tpe schema.TypeRef, rw SelectRewrite) *SelectElaborator {
	e.byType[tpe.Name()] = rw
	return e
}

// Lookup returns the registered rewrite for tpe, or (nil, false) if the
// identity rewrite should apply.
func (e *SelectElaborator) Lookup(tpe schema.TypeRef) (SelectRewrite, bool) {
	rw, ok := e.byType[tpe.Name()]
	return rw, ok
}

// ComponentMapping declares that a single field's selection should be
// elaborated as a component boundary (spec.md §4.F phase 6).
type ComponentMapping struct {
	Target plan.Mapping
	Join   plan.Join // nil means plan.TrivialJoin
}

// ComponentElaborator is a dispatch table from (TypeRef, field name) to
// ComponentMapping.
type ComponentElaborator struct {
	byField map[componentKey]ComponentMapping
}

type componentKey struct {
	typeName, field string
}

// NewComponentElaborator builds an empty dispatch table.
func NewComponentElaborator() *ComponentElaborator {
	return &ComponentElaborator{byField: make(map[componentKey]ComponentMapping)}
}

// Delegate registers field on tpe as a component boundary delegated to
// mapping, via join (plan.TrivialJoin if join is nil).
func (e *ComponentElaborator) Delegate(tpe schema.TypeRef, field string, mapping plan.Mapping, join plan.Join) *ComponentElaborator {
	if join == nil {
		join = plan.TrivialJoin
	}
	e.byField[componentKey{tpe.Name(), field}] = ComponentMapping{Target: mapping, Join: join}
	return e
}

// Lookup returns the registered ComponentMapping for (tpe, field), if any.
func (e *ComponentElaborator) Lookup(tpe schema.TypeRef, field string) (ComponentMapping, bool) {
	m, ok := e.byField[componentKey{tpe.Name(), field}]
	return m, ok
}

// Config wires everything phase 2 and phase 6 need, plus diagnostics.
// Passed explicitly to Elaborate — no package-level globals (ambient
// configuration stack, SPEC_FULL.md §4).
type Config struct {
	Schema     schema.Facade
	Selects    *SelectElaborator
	Components *ComponentElaborator
	Logger     log.Logger
}

// WithDefaults fills in zero-value fields with safe defaults (an empty
// SelectElaborator/ComponentElaborator and a no-op Logger), the way the
// teacher's NewPlanner accepts an optional ServiceSelector.
func (c Config) WithDefaults() Config {
	if c.Selects == nil {
		c.Selects = NewSelectElaborator()
	}
	if c.Components == nil {
		c.Components = NewComponentElaborator()
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	return c
}
