// Package plan implements the query algebra (spec.md §3, §4.D): the
// recursive plan-tree representation a GraphQL operation is elaborated
// into, its smart constructors, and the structural invariants each node
// kind carries. Package-level rewriting utilities (ungroup, children,
// merge, path synthesis, extractors) live alongside the algebra in this
// package (spec.md §4.E groups them with the algebra for the same reason
// the teacher keeps SelectionSet/Selection and their rewrites together in
// a single graphql package).
package plan

import (
	"github.com/lattice-gql/qcore/predicate"
	"github.com/lattice-gql/qcore/schema"
	"github.com/lattice-gql/qcore/value"
)

// Query is one node of the plan tree. The interface is closed (an
// unexported marker method) so every node kind is known at this package's
// build time; traversal is written as an exhaustive type switch rather
// than virtual dispatch, per the design note in spec.md §9.
type Query interface {
	isQuery()
}

// Render produces the canonical debug string for q (spec.md §6.4), used
// for test assertions and logging only. Implemented in render.go as a
// single exhaustive type switch, per the design note in spec.md §9, rather
// than as a Render method on every node kind.

// EffectHandler is the minimal shape the algebra needs to hold for an
// Effect node: just enough to identify and render a handler. The richer
// RunEffects contract (spec.md §5) lives in package effect, which depends
// on plan — not the reverse — so the algebra never needs to know about
// cursors or the outer effect context F.
type EffectHandler interface {
	Name() string
}

// Mapping is the minimal shape the algebra needs to hold for a Component
// node's target mapping. The richer ObjectMapping/FieldMapping contract
// (spec.md §6.3) lives in package sqlmapping, illustrating one concrete
// downstream consumer.
type Mapping interface {
	TargetType() string
}

// Join describes how a Component node's child cursor is derived from its
// parent's cursor when crossing an interpreter boundary.
type Join interface {
	Render() string
}

type trivialJoin struct{}

func (trivialJoin) Render() string { return "TrivialJoin" }

// TrivialJoin passes the parent cursor through unchanged; it is the
// default join used by component boundary elaboration (spec.md §4.F
// phase 6) when no other join is specified.
var TrivialJoin Join = trivialJoin{}

// Environment is an ordered stack of (name -> value) frames (spec.md §3).
// Lookup walks from the innermost frame outward; extension clones rather
// than mutates, so the original remains valid after a child Environment
// node is built.
type Environment struct {
	frames []map[string]value.Value
}

// EmptyEnv is the environment with no bindings.
var EmptyEnv = Environment{}

// Extend returns a new Environment with one additional frame, leaving the
// receiver unmodified.
func (e Environment) Extend(bindings map[string]value.Value) Environment {
	frames := make([]map[string]value.Value, len(e.frames)+1)
	copy(frames, e.frames)
	frames[len(frames)-1] = bindings
	return Environment{frames: frames}
}

// Lookup searches frames from innermost to outermost.
func (e Environment) Lookup(name string) (value.Value, bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if v, ok := e.frames[i][name]; ok {
			return v, true
		}
	}
	return nil, false
}

// ---- Node kinds -----------------------------------------------------

// Select is a field selection: name(args){ child }. child is Empty iff
// the field is a leaf; a non-leaf field must have a non-Empty child after
// elaboration (enforced by the elaborator, not by this constructor, since
// pre-elaboration trees legitimately violate it transiently).
type Select struct {
	FieldName string
	Args      value.Bindings
	Child     Query
}

func (Select) isQuery() {}

// Group is an unordered (for semantics; ordered for rendering) set of two
// or more sibling queries. Group never nests directly: the smart
// constructor NewGroup flattens one level, and Combine (the `~` operator)
// flattens adjacent Groups on composition.
type Group struct {
	Children []Query
}

func (Group) isQuery() {}

// Unique asserts its child ultimately produces a single-element list,
// unwrapping it to a single value. Typically introduced by per-type Select
// elaboration around an id-keyed lookup.
type Unique struct {
	Child Query
}

func (Unique) isQuery() {}

// Filter restricts a list-producing child to rows matching Pred.
type Filter struct {
	Pred  predicate.Predicate
	Child Query
}

func (Filter) isQuery() {}

// Component marks an inter-interpreter boundary: Child is elaborated
// against (and ultimately executed by) a different backend, reached via
// Join from the current cursor, using Target to interpret field names on
// the far side.
type Component struct {
	Target Mapping
	Join   Join
	Child  Query
}

func (Component) isQuery() {}

// Effect marks a possibly-batched effectful continuation: evaluating
// Child requires yielding to Handler, the sole point (spec.md §5) where
// the compiler's pure core hands off to an external scheduler.
type Effect struct {
	Handler EffectHandler
	Child   Query
}

func (Effect) isQuery() {}

// Introspect evaluates Child against schema metadata instead of ordinary
// cursor data; Schema identifies which schema's metadata is in view.
type Introspect struct {
	Schema schema.Facade
	Child  Query
}

func (Introspect) isQuery() {}

// EnvironmentNode extends the ambient Environment for the evaluation of
// Child. Named EnvironmentNode (not Environment) to avoid colliding with
// the Environment value type above.
type EnvironmentNode struct {
	Env   Environment
	Child Query
}

func (EnvironmentNode) isQuery() {}

// Wrap wraps Child's result as a field named FieldName, without Child
// itself being a Select (e.g. wrapping a Component boundary's result).
type Wrap struct {
	FieldName string
	Child     Query
}

func (Wrap) isQuery() {}

// Rename aliases the topmost field of Child to ResultName.
type Rename struct {
	ResultName string
	Child      Query
}

func (Rename) isQuery() {}

// UntypedNarrow is the parser's representation of an inline fragment
// `... on TypeName { child }` before the elaborator has resolved TypeName
// against the schema. Removed by phase 4 (type-refinement normalization);
// P5 requires none remain reachable from a compiled plan.
type UntypedNarrow struct {
	TypeName string
	Child    Query
}

func (UntypedNarrow) isQuery() {}

// Narrow restricts Child to evaluation contexts where the cursor's focus
// is of dynamic type SubType.
type Narrow struct {
	SubType schema.TypeRef
	Child   Query
}

func (Narrow) isQuery() {}

// Sense is the polarity of a Skip node: SkipIf suppresses Child when Cond
// is true (@skip); IncludeIf suppresses Child when Cond is false
// (@include).
type Sense bool

const (
	SkipIf    Sense = true
	IncludeIf Sense = false
)

// Skip includes or excludes Child based on a boolean condition. A
// constant-valued Cond is folded away by phase 5; a variable-valued one is
// retained for runtime evaluation.
type Skip struct {
	Sense Sense
	Cond  value.Value
	Child Query
}

func (Skip) isQuery() {}

// Limit truncates a list-producing child to at most N elements.
type Limit struct {
	N     int
	Child Query
}

func (Limit) isQuery() {}

// Offset skips the first N elements of a list-producing child.
type Offset struct {
	N     int
	Child Query
}

func (Offset) isQuery() {}

// OrderBy sorts a list-producing child per Selections, lexicographically
// (spec.md §3): the first non-zero per-selection comparison wins. The sort
// must be stable so repeated application is idempotent (P6).
type OrderBy struct {
	Selections []OrderSelection
	Child      Query
}

func (OrderBy) isQuery() {}

// OrderSelection is the plan-algebra-facing counterpart of
// predicate.OrderSelection, carrying an opaque (type-erased) comparator so
// OrderBy can be a single non-generic node kind in a closed, non-generic
// Query interface.
type OrderSelection struct {
	Path      []string
	Ascending bool
	NullsLast bool
	Compare   func(a, b value.Value) int
}

// Count emits the cardinality of Child as a field named FieldName.
type Count struct {
	FieldName string
	Child     Query
}

func (Count) isQuery() {}

// CursorTransform rewrites a cursor before Child executes against it.
type CursorTransform func(predicate.Cursor) (predicate.Cursor, error)

// TransformCursor applies Transform to the cursor before evaluating Child.
type TransformCursor struct {
	Transform CursorTransform
	Child     Query
}

func (TransformCursor) isQuery() {}

type skippedSentinel struct{}

func (skippedSentinel) isQuery() {}

// Skipped is the sentinel placeholder a folded Skip(SkipIf, true, _) or
// Skip(IncludeIf, false, _) collapses to.
var Skipped Query = skippedSentinel{}

type emptySentinel struct{}

func (emptySentinel) isQuery() {}

// Empty is the identity element under merge, and the required Child of
// every leaf Select.
var Empty Query = emptySentinel{}

// IsEmpty reports whether q is the Empty sentinel.
func IsEmpty(q Query) bool {
	_, ok := q.(emptySentinel)
	return ok
}

// IsSkipped reports whether q is the Skipped sentinel.
func IsSkipped(q Query) bool {
	_, ok := q.(skippedSentinel)
	return ok
}

// ---- Smart constructors ---------------------------------------------

// NewSelect builds a field selection. name must be non-empty; callers are
// responsible for the leaf/non-leaf child invariant, which is enforced by
// the elaborator (phase 2), not here, since intermediate construction
// during elaboration legitimately passes through states that violate it.
func NewSelect(name string, args value.Bindings, child Query) Query {
	return Select{FieldName: name, Args: args, Child: child}
}

// NewGroup builds a Group from children, enforcing the §3 invariants:
// Group elements are flattened one level, Empty elements are dropped, and
// the result collapses to a single child (or Empty) when possible.
//
// NewGroup is the constructor merge ends every bucket with (spec.md
// §4.E step 5); raw tree construction during elaboration should use
// Combine instead, which preserves Empty (merge removes it later).
func NewGroup(children ...Query) Query {
	flat := make([]Query, 0, len(children))
	for _, c := range children {
		if IsEmpty(c) {
			continue
		}
		if g, ok := c.(Group); ok {
			flat = append(flat, g.Children...)
		} else {
			flat = append(flat, c)
		}
	}
	switch len(flat) {
	case 0:
		return Empty
	case 1:
		return flat[0]
	default:
		return Group{Children: flat}
	}
}

// Combine implements the `~` composition operator (spec.md §4.D):
// Group(a)~Group(b) = Group(a++b), flattening adjacent Groups. Unlike
// NewGroup, Combine does NOT remove Empty elements; merge is what
// establishes the identity laws, not Combine (spec.md §4.D).
func Combine(a, b Query) Query {
	var children []Query
	if g, ok := a.(Group); ok {
		children = append(children, g.Children...)
	} else {
		children = append(children, a)
	}
	if g, ok := b.(Group); ok {
		children = append(children, g.Children...)
	} else {
		children = append(children, b)
	}
	if len(children) == 1 {
		return children[0]
	}
	return Group{Children: children}
}

// CombineAll folds Combine over a slice, returning Empty for an empty
// slice.
func CombineAll(qs ...Query) Query {
	if len(qs) == 0 {
		return Empty
	}
	out := qs[0]
	for _, q := range qs[1:] {
		out = Combine(out, q)
	}
	return out
}
