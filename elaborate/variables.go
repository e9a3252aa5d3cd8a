package elaborate

import (
	"strconv"

	"github.com/lattice-gql/qcore/plan"
	"github.com/lattice-gql/qcore/result"
	"github.com/lattice-gql/qcore/value"
)

// bindVariables is phase 1 (spec.md §4.F): every value.UntypedVariableValue
// reachable from op's argument bindings and skip/include conditions is
// resolved against op's declared variables, augmented by vars (the
// caller-supplied values passed to Compile). A declared, supplied variable
// substitutes its (coerced) value; a declared, unsupplied variable with a
// default substitutes the (coerced) default; a declared, unsupplied,
// nullable variable without a default substitutes value.Absent; a
// declared, unsupplied, non-null variable without a default accumulates
// MissingRequired. A reference to an undeclared name accumulates
// UnknownVariable and is left as a value.Variable; binding carries on over
// the rest of the tree so every such problem is collected (spec.md §4.G),
// and Elaborate then stops after this phase because these problems are
// failures.
func bindVariables(op *UntypedOperation, vars map[string]value.Value) *result.Result[plan.Query] {
	defs := make(map[string]UntypedVarDef, len(op.VarDefs))
	for _, d := range op.VarDefs {
		defs[d.Name] = d
	}

	acc := result.NewAccumulator()
	bind := func(v value.Value) value.Value {
		out, problem := bindValue(v, defs, vars)
		if problem != nil {
			result.Absorb(acc, result.Failure[value.Value](result.Problems{problem}))
		}
		return out
	}

	root := rewrite(op.Root, func(q plan.Query) plan.Query {
		switch n := q.(type) {
		case plan.Select:
			n.Args = bindBindings(n.Args, bind)
			return n
		case plan.Skip:
			n.Cond = bind(n.Cond)
			return n
		default:
			return q
		}
	})

	return result.Finish(acc, root)
}

func bindBindings(bs value.Bindings, bind func(value.Value) value.Value) value.Bindings {
	if len(bs) == 0 {
		return bs
	}
	out := make(value.Bindings, len(bs))
	for i, b := range bs {
		out[i] = value.Binding{Name: b.Name, Value: bind(b.Value)}
	}
	return out
}

// bindValue recursively substitutes variable references within v. It
// returns a *result.Problem only for the first offending reference met in
// a depth-first walk of v (list elements and object fields in order);
// callers fold each returned problem into their own accumulator.
func bindValue(v value.Value, defs map[string]UntypedVarDef, vars map[string]value.Value) (value.Value, *result.Problem) {
	switch n := v.(type) {
	case value.UntypedVariableValue:
		return resolveVariable(n.Name, defs, vars)
	case value.UntypedEnumValue:
		// Resolved to a typed Enum without membership validation: the
		// schema façade this package programs against (schema.Facade)
		// does not expose a type's declared enum values, only its kind
		// (see schema.Facade.KindOf). Validating membership would need
		// that extension; until then this phase only strips the
		// pre-elaboration wrapper, satisfying the "no Untyped* survives"
		// invariant.
		return value.Enum{Name: n.Name}, nil
	case value.List:
		elems := make([]value.Value, len(n.Elems))
		var first *result.Problem
		for i, e := range n.Elems {
			out, problem := bindValue(e, defs, vars)
			elems[i] = out
			if problem != nil && first == nil {
				first = problem
			}
		}
		return value.List{Elems: elems}, first
	case value.Object:
		fields := make([]value.ObjectField, len(n.Fields))
		var first *result.Problem
		for i, f := range n.Fields {
			out, problem := bindValue(f.Value, defs, vars)
			fields[i] = value.ObjectField{Name: f.Name, Value: out}
			if problem != nil && first == nil {
				first = problem
			}
		}
		return value.Object{Fields: fields}, first
	default:
		return v, nil
	}
}

func resolveVariable(name string, defs map[string]UntypedVarDef, vars map[string]value.Value) (value.Value, *result.Problem) {
	def, declared := defs[name]
	if !declared {
		return value.Variable{Name: name}, result.NewUnknownVariable(name)
	}

	if supplied, ok := vars[name]; ok {
		coerced, ok := coerceLiteral(supplied, def.TypeName)
		if !ok {
			return value.Absent, result.NewTypeMismatch(def.TypeName, value.KindName(supplied))
		}
		return coerced, nil
	}

	if def.HasDefault {
		coerced, ok := coerceLiteral(def.Default, def.TypeName)
		if !ok {
			return value.Absent, result.NewTypeMismatch(def.TypeName, value.KindName(def.Default))
		}
		return coerced, nil
	}

	if def.NonNull {
		return value.Absent, result.NewMissingRequired(name)
	}

	return value.Absent, nil
}

// coerceLiteral applies the builtin scalar widenings GraphQL expects at
// variable substitution time (spec.md §4.F: "coerce literal values to
// declared input types"). Named (custom scalar, enum, input object) types
// are passed through unchanged: validating those requires the schema
// façade, which is out of scope for this package-internal literal model
// and is left to per-type Select elaboration (phase 2) instead.
func coerceLiteral(v value.Value, typeName string) (value.Value, bool) {
	switch typeName {
	case "Int":
		switch n := v.(type) {
		case value.Int:
			return n, true
		case value.Float:
			return value.Int(n), true
		}
		return v, false
	case "Float":
		switch n := v.(type) {
		case value.Float:
			return n, true
		case value.Int:
			return value.Float(n), true
		}
		return v, false
	case "String":
		if _, ok := v.(value.String); ok {
			return v, true
		}
		return v, false
	case "Boolean":
		if _, ok := v.(value.Boolean); ok {
			return v, true
		}
		return v, false
	case "ID":
		switch n := v.(type) {
		case value.ID:
			return n, true
		case value.String:
			return value.ID{Raw: string(n)}, true
		case value.Int:
			return value.ID{Raw: strconv.FormatInt(int64(n), 10)}, true
		}
		return v, false
	default:
		return v, true
	}
}
