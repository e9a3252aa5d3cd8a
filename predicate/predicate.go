// Package predicate implements the typed boolean predicate and projection
// term algebra (spec.md §4.C): pure, lazy projections from a Cursor to a
// scalar, closed under boolean composition, used by Filter and OrderBy
// plan nodes.
package predicate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lattice-gql/qcore/value"
)

// Cursor is the external, iterator-like handle an interpreter supplies
// when evaluating a compiled plan against live data (spec.md GLOSSARY).
// This package only depends on the shape of Cursor; constructing and
// walking real cursors is the runtime interpreter's job (out of scope,
// spec.md §1).
type Cursor interface {
	// Focus returns the scalar value currently under the cursor.
	Focus() (value.Value, error)
	// Step descends into a named field of the cursor's current object
	// focus, returning a new Cursor rooted there.
	Step(field string) (Cursor, error)
}

// Term is a lazy, pure projection from a Cursor to a value of type T.
type Term[T any] struct {
	eval func(Cursor) (T, error)
	tag  string
}

// Eval runs the projection against c.
func (t Term[T]) Eval(c Cursor) (T, error) { return t.eval(c) }

// Render produces a canonical debug string for the term.
func (t Term[T]) Render() string { return t.tag }

// Const builds a constant term.
func Const[T any](v T, render func(T) string) Term[T] {
	return Term[T]{
		eval: func(Cursor) (T, error) { return v, nil },
		tag:  render(v),
	}
}

// Field builds a term that steps through path and decodes the resulting
// focus with decode. An empty path decodes the cursor's current focus.
func Field[T any](path []string, decode func(value.Value) (T, error)) Term[T] {
	return Term[T]{
		eval: func(c Cursor) (T, error) {
			cur := c
			for _, seg := range path {
				next, err := cur.Step(seg)
				if err != nil {
					var zero T
					return zero, err
				}
				cur = next
			}
			v, err := cur.Focus()
			if err != nil {
				var zero T
				return zero, err
			}
			return decode(v)
		},
		tag: strings.Join(path, "/"),
	}
}

// Predicate is a boolean Term: a type alias for Term[bool], so any
// Term[bool] can be passed where a Predicate is expected. The name lets
// Predicate-specific constructors (And/Or/Not/Project) read naturally and
// lets predicate.Predicate appear in plan node fields.
type Predicate = Term[bool]

// Eql builds an equality predicate between two terms of the same
// comparable type.
func Eql[T comparable](a, b Term[T]) Predicate {
	return Predicate{
		eval: func(c Cursor) (bool, error) {
			av, err := a.Eval(c)
			if err != nil {
				return false, err
			}
			bv, err := b.Eval(c)
			if err != nil {
				return false, err
			}
			return av == bv, nil
		},
		tag: fmt.Sprintf("(%s = %s)", a.Render(), b.Render()),
	}
}

// And builds the conjunction of zero or more predicates; the empty
// conjunction is trivially true.
func And(ps ...Predicate) Predicate {
	tags := make([]string, len(ps))
	for i, p := range ps {
		tags[i] = p.Render()
	}
	return Predicate{
		eval: func(c Cursor) (bool, error) {
			for _, p := range ps {
				ok, err := p.Eval(c)
				if err != nil || !ok {
					return false, err
				}
			}
			return true, nil
		},
		tag: "(" + strings.Join(tags, " && ") + ")",
	}
}

// Or builds the disjunction of zero or more predicates; the empty
// disjunction is trivially false.
func Or(ps ...Predicate) Predicate {
	tags := make([]string, len(ps))
	for i, p := range ps {
		tags[i] = p.Render()
	}
	return Predicate{
		eval: func(c Cursor) (bool, error) {
			for _, p := range ps {
				ok, err := p.Eval(c)
				if err != nil {
					return false, err
				}
				if ok {
					return true, nil
				}
			}
			return false, nil
		},
		tag: "(" + strings.Join(tags, " || ") + ")",
	}
}

// Not negates a predicate.
func Not(p Predicate) Predicate {
	return Predicate{
		eval: func(c Cursor) (bool, error) {
			ok, err := p.Eval(c)
			return !ok, err
		},
		tag: "!" + p.Render(),
	}
}

// Contains reports whether list contains elem, per value.Equal.
func Contains(list Term[[]value.Value], elem Term[value.Value]) Predicate {
	return Predicate{
		eval: func(c Cursor) (bool, error) {
			lv, err := list.Eval(c)
			if err != nil {
				return false, err
			}
			ev, err := elem.Eval(c)
			if err != nil {
				return false, err
			}
			for _, v := range lv {
				if value.Equal(v, ev) {
					return true, nil
				}
			}
			return false, nil
		},
		tag: fmt.Sprintf("%s CONTAINS %s", list.Render(), elem.Render()),
	}
}

// Matches reports whether a string term matches a regular expression.
func Matches(s Term[string], pattern string) Predicate {
	re := regexp.MustCompile(pattern)
	return Predicate{
		eval: func(c Cursor) (bool, error) {
			sv, err := s.Eval(c)
			if err != nil {
				return false, err
			}
			return re.MatchString(sv), nil
		},
		tag: fmt.Sprintf("%s MATCHES %q", s.Render(), pattern),
	}
}

// In reports whether t's value equals one of vs.
func In[T comparable](t Term[T], vs []T) Predicate {
	set := make(map[T]struct{}, len(vs))
	tags := make([]string, len(vs))
	for i, v := range vs {
		set[v] = struct{}{}
		tags[i] = fmt.Sprintf("%v", v)
	}
	return Predicate{
		eval: func(c Cursor) (bool, error) {
			tv, err := t.Eval(c)
			if err != nil {
				return false, err
			}
			_, ok := set[tv]
			return ok, nil
		},
		tag: fmt.Sprintf("%s IN [%s]", t.Render(), strings.Join(tags, ", ")),
	}
}

// Project recursively enters the subcursor at path before evaluating
// inner. path may be empty, in which case Project is equivalent to inner.
func Project(path []string, inner Predicate) Predicate {
	return Predicate{
		eval: func(c Cursor) (bool, error) {
			cur := c
			for _, seg := range path {
				next, err := cur.Step(seg)
				if err != nil {
					return false, err
				}
				cur = next
			}
			return inner.Eval(cur)
		},
		tag: fmt.Sprintf("%s: %s", strings.Join(path, "/"), inner.Render()),
	}
}

// Order is a total order over T, supplied by the ambient scalar kind
// (spec.md §4.C: "Order[T] instances provided by the ambient scalar
// kind"). Compare returns <0, 0, >0 per the usual convention.
type Order[T any] interface {
	Compare(a, b T) int
}

type orderFunc[T any] func(a, b T) int

func (f orderFunc[T]) Compare(a, b T) int { return f(a, b) }

// IntOrder, FloatOrder, StringOrder, and BoolOrder are the Order
// instances for the four core scalar Go types terms commonly project to.
var (
	IntOrder    Order[int64]  = orderFunc[int64](func(a, b int64) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
	FloatOrder  Order[float64] = orderFunc[float64](func(a, b float64) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
	StringOrder Order[string] = orderFunc[string](strings.Compare)
	BoolOrder   Order[bool]   = orderFunc[bool](func(a, b bool) int {
		if a == b {
			return 0
		}
		if !a && b {
			return -1
		}
		return 1
	})
)
