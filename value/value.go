// Package value implements the literal GraphQL value model: the tagged
// union of scalar, list, and object literals that flow from the parser
// through the elaborator into a compiled plan tree.
package value

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Value is a GraphQL literal value. The interface is closed: only the
// types in this file implement it, so a type switch can list every
// variant (the compiler does not check such a switch for exhaustiveness).
type Value interface {
	isValue()
	Render() string
}

// Int is an integer literal.
type Int int64

func (Int) isValue()          {}
func (v Int) Render() string  { return strconv.FormatInt(int64(v), 10) }

// Float is a floating point literal.
type Float float64

func (Float) isValue()         {}
func (v Float) Render() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }

// String is a string literal.
type String string

func (String) isValue()         {}
func (v String) Render() string { return strconv.Quote(string(v)) }

// Boolean is a boolean literal.
type Boolean bool

func (Boolean) isValue()         {}
func (v Boolean) Render() string {
	if v {
		return "true"
	}
	return "false"
}

// ID is an opaque identifier scalar. Raw preserves the literal's original
// textual form (IDs may be written as either a string or an int in
// GraphQL source); Parsed, when non-nil, is a UUID decoding of Raw used by
// callers that know their ID space is UUID-shaped (see UUID in uuid.go).
type ID struct {
	Raw    string
	Parsed *UUID
}

func (ID) isValue()        {}
func (v ID) Render() string { return strconv.Quote(v.Raw) }

// Enum is a resolved enum value name. Phase 1 produces it from an
// UntypedEnumValue without checking that the name is one of the declared
// values of its enum type.
type Enum struct {
	Name string
}

func (Enum) isValue()         {}
func (v Enum) Render() string { return v.Name }

// nullValue and absentValue are singleton sentinels.
type nullValue struct{}

func (nullValue) isValue()         {}
func (nullValue) Render() string   { return "null" }

// Null is the typed null literal: a field was explicitly set to `null`.
var Null Value = nullValue{}

type absentValue struct{}

func (absentValue) isValue()       {}
func (absentValue) Render() string { return "<absent>" }

// Absent marks an argument that was not supplied at all, as distinct from
// one explicitly set to null. Absent may legitimately remain in a fully
// elaborated plan (an optional argument the caller never provided); it is
// not one of the Untyped* pre-elaboration variants eliminated by P5.
var Absent Value = absentValue{}

// List is an ordered literal list.
type List struct {
	Elems []Value
}

func (List) isValue() {}
func (v List) Render() string {
	parts := make([]string, len(v.Elems))
	for i, e := range v.Elems {
		parts[i] = e.Render()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ObjectField is a single (name, value) pair of an Object literal. Order
// is preserved because GraphQL input object field order is observable in
// round-trip rendering, even though it carries no semantic weight.
type ObjectField struct {
	Name  string
	Value Value
}

// Object is an ordered-field literal input object.
type Object struct {
	Fields []ObjectField
}

func (Object) isValue() {}
func (v Object) Render() string {
	parts := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		parts[i] = f.Name + ": " + f.Value.Render()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Field looks up a field by name, returning Absent if it is not present.
func (v Object) Field(name string) Value {
	for _, f := range v.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return Absent
}

// Variable is a reference to a named variable that phase 1 could not bind.
// Phase 1 substitutes every declared variable with a concrete value (or
// Absent), so it produces a Variable only for an undeclared name, together
// with an UnknownVariable problem that fails the compile.
type Variable struct {
	Name string
}

func (Variable) isValue()         {}
func (v Variable) Render() string { return "$" + v.Name }

// UntypedEnumValue is the parser's representation of a bare-name literal
// before the elaborator knows whether it denotes an enum value. Eliminated
// by phase 1 (variable binding / literal coercion); P5 requires none
// remain reachable from a compiled plan.
type UntypedEnumValue struct {
	Name string
}

func (UntypedEnumValue) isValue()         {}
func (v UntypedEnumValue) Render() string { return v.Name }

// UntypedVariableValue is the parser's representation of a `$name`
// reference before the elaborator has resolved it against the operation's
// variable definitions. Eliminated by phase 1; P5 requires none remain.
type UntypedVariableValue struct {
	Name string
}

func (UntypedVariableValue) isValue()         {}
func (v UntypedVariableValue) Render() string { return "$" + v.Name }

// Equal reports whether two values are structurally identical. Used by the
// merge algorithm to decide whether two selections of the same alias have
// compatible (i.e. equal) argument lists.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Float:
		bv, ok := b.(Float)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	case ID:
		bv, ok := b.(ID)
		return ok && av.Raw == bv.Raw
	case Enum:
		bv, ok := b.(Enum)
		return ok && av.Name == bv.Name
	case nullValue:
		_, ok := b.(nullValue)
		return ok
	case absentValue:
		_, ok := b.(absentValue)
		return ok
	case Variable:
		bv, ok := b.(Variable)
		return ok && av.Name == bv.Name
	case List:
		bv, ok := b.(List)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !Equal(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case Object:
		bv, ok := b.(Object)
		if !ok || len(av.Fields) != len(bv.Fields) {
			return false
		}
		am := fieldMap(av)
		bm := fieldMap(bv)
		if len(am) != len(bm) {
			return false
		}
		for k, v := range am {
			other, ok := bm[k]
			if !ok || !Equal(v, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func fieldMap(o Object) map[string]Value {
	m := make(map[string]Value, len(o.Fields))
	for _, f := range o.Fields {
		m[f.Name] = f.Value
	}
	return m
}

// SortedObjectFieldNames is a small helper used by renderers and tests that
// want a canonical field order regardless of literal source order.
func SortedObjectFieldNames(o Object) []string {
	names := make([]string, len(o.Fields))
	for i, f := range o.Fields {
		names[i] = f.Name
	}
	sort.Strings(names)
	return names
}

// String form, for error messages that embed a value's kind.
func KindName(v Value) string {
	switch v.(type) {
	case Int:
		return "Int"
	case Float:
		return "Float"
	case String:
		return "String"
	case Boolean:
		return "Boolean"
	case ID:
		return "ID"
	case Enum:
		return "Enum"
	case nullValue:
		return "Null"
	case absentValue:
		return "Absent"
	case List:
		return "List"
	case Object:
		return "Object"
	case Variable:
		return "Variable"
	case UntypedEnumValue:
		return "UntypedEnumValue"
	case UntypedVariableValue:
		return "UntypedVariableValue"
	default:
		return fmt.Sprintf("%T", v)
	}
}
