// Package gqltext turns GraphQL operation text into the untyped plan
// trees the elaborator consumes, using the syntax-only half of
// github.com/vektah/gqlparser/v2 (parser.ParseQuery): no schema
// validation, no field-type resolution, just turning source text into an
// AST and that AST into value.Value/plan.Query/elaborate.UntypedOperation
// shapes. Everything type-directed is the elaborator's job; this package
// never imports schema.Facade. Adapted from the selection-walking pattern
// in eddieafk-goinmonster's graph/field_collector.go.
package gqltext

import (
	"strconv"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/lattice-gql/qcore/elaborate"
	"github.com/lattice-gql/qcore/plan"
	"github.com/lattice-gql/qcore/result"
	"github.com/lattice-gql/qcore/schema"
	"github.com/lattice-gql/qcore/value"
)

// Parse parses source into one elaborate.UntypedOperation per operation
// definition it contains. A syntax error is reported as a single
// result.NewParseError problem carrying the parser's line/column.
func Parse(name, source string) *result.Result[[]*elaborate.UntypedOperation] {
	doc, gqlErr := parser.ParseQuery(&ast.Source{Name: name, Input: source})
	if gqlErr != nil {
		return result.Failure[[]*elaborate.UntypedOperation](result.Problems{parseErrorProblem(gqlErr, source)})
	}

	ops := make([]*elaborate.UntypedOperation, 0, len(doc.Operations))
	for _, op := range doc.Operations {
		ops = append(ops, convertOperation(op, doc.Fragments))
	}
	return result.Success(ops)
}

func parseErrorProblem(err *gqlerror.Error, source string) *result.Problem {
	line, col := 0, 0
	if len(err.Locations) > 0 {
		line, col = err.Locations[0].Line, err.Locations[0].Column
	}
	snippet := ""
	if lines := strings.Split(source, "\n"); line >= 1 && line <= len(lines) {
		snippet = lines[line-1]
	}
	return result.NewParseError(line, col, snippet, err)
}

func convertOperation(op *ast.OperationDefinition, fragments ast.FragmentDefinitionList) *elaborate.UntypedOperation {
	return &elaborate.UntypedOperation{
		Kind:    convertOperationKind(op.Operation),
		Name:    op.Name,
		Root:    convertSelectionSet(op.SelectionSet, fragments),
		VarDefs: convertVarDefs(op.VariableDefinitions),
	}
}

func convertOperationKind(k ast.Operation) schema.OperationKind {
	switch k {
	case ast.Mutation:
		return schema.Mutation
	case ast.Subscription:
		return schema.Subscription
	default:
		return schema.Query
	}
}

func convertVarDefs(defs ast.VariableDefinitionList) []elaborate.UntypedVarDef {
	out := make([]elaborate.UntypedVarDef, 0, len(defs))
	for _, d := range defs {
		vd := elaborate.UntypedVarDef{
			Name:     d.Variable,
			TypeName: strings.TrimSuffix(d.Type.String(), "!"),
			NonNull:  d.Type.NonNull,
		}
		if d.DefaultValue != nil {
			vd.Default = convertValue(d.DefaultValue)
			vd.HasDefault = true
		}
		out = append(out, vd)
	}
	return out
}

func convertSelectionSet(set ast.SelectionSet, fragments ast.FragmentDefinitionList) plan.Query {
	children := make([]plan.Query, 0, len(set))
	for _, sel := range set {
		children = append(children, convertSelection(sel, fragments)...)
	}
	return plan.NewGroup(children...)
}

// convertSelection returns zero or more plan.Query nodes: a bare Field
// contributes exactly one, but a fragment spread or inline fragment
// splices its inner selections into the caller's Group directly (spec.md
// §4.E's Ungroup is what later flattens any nesting this leaves behind).
func convertSelection(sel ast.Selection, fragments ast.FragmentDefinitionList) []plan.Query {
	switch s := sel.(type) {
	case *ast.Field:
		return []plan.Query{convertField(s, fragments)}

	case *ast.FragmentSpread:
		frag := fragments.ForName(s.Name)
		if frag == nil {
			return nil
		}
		inner := convertSelectionSet(frag.SelectionSet, fragments)
		narrowed := narrowIfTyped(frag.TypeCondition, inner)
		return applyDirectives(s.Directives, []plan.Query{narrowed})

	case *ast.InlineFragment:
		inner := convertSelectionSet(s.SelectionSet, fragments)
		narrowed := narrowIfTyped(s.TypeCondition, inner)
		return applyDirectives(s.Directives, []plan.Query{narrowed})

	default:
		return nil
	}
}

func narrowIfTyped(typeCondition string, child plan.Query) plan.Query {
	if typeCondition == "" {
		return child
	}
	return plan.UntypedNarrow{TypeName: typeCondition, Child: child}
}

func convertField(f *ast.Field, fragments ast.FragmentDefinitionList) plan.Query {
	var child plan.Query = plan.Empty
	if len(f.SelectionSet) > 0 {
		child = convertSelectionSet(f.SelectionSet, fragments)
	}

	sel := plan.Select{
		FieldName: f.Name,
		Args:      convertArguments(f.Arguments),
		Child:     child,
	}

	var out plan.Query = sel
	if f.Alias != "" && f.Alias != f.Name {
		out = plan.Rename{ResultName: f.Alias, Child: out}
	}

	wrapped := applyDirectives(f.Directives, []plan.Query{out})
	if len(wrapped) == 0 {
		return plan.Empty
	}
	return wrapped[0]
}

// applyDirectives wraps every node in nodes with plan.Skip for @skip/@include,
// per spec.md §4.F: a variable-valued `if` argument survives as
// value.UntypedVariableValue for phase 1 to resolve; a literal boolean is
// embedded directly and folded away by phase 5.
func applyDirectives(dirs ast.DirectiveList, nodes []plan.Query) []plan.Query {
	hasSkip, skipCond := findSkipDirective(dirs, "skip")
	hasInclude, includeCond := findSkipDirective(dirs, "include")

	out := nodes
	if hasInclude {
		out = wrapAll(out, plan.IncludeIf, includeCond)
	}
	if hasSkip {
		out = wrapAll(out, plan.SkipIf, skipCond)
	}
	return out
}

func wrapAll(nodes []plan.Query, sense plan.Sense, cond value.Value) []plan.Query {
	out := make([]plan.Query, len(nodes))
	for i, n := range nodes {
		out[i] = plan.Skip{Sense: sense, Cond: cond, Child: n}
	}
	return out
}

func findSkipDirective(dirs ast.DirectiveList, name string) (bool, value.Value) {
	for _, d := range dirs {
		if d.Name != name {
			continue
		}
		arg := d.Arguments.ForName("if")
		if arg == nil {
			continue
		}
		return true, convertValue(arg.Value)
	}
	return false, nil
}

func convertArguments(args ast.ArgumentList) value.Bindings {
	if len(args) == 0 {
		return nil
	}
	out := make(value.Bindings, len(args))
	for i, a := range args {
		out[i] = value.Binding{Name: a.Name, Value: convertValue(a.Value)}
	}
	return out
}

func convertValue(v *ast.Value) value.Value {
	if v == nil {
		return value.Absent
	}
	switch v.Kind {
	case ast.Variable:
		return value.UntypedVariableValue{Name: v.Raw}
	case ast.IntValue:
		n, _ := strconv.ParseInt(v.Raw, 10, 64)
		return value.Int(n)
	case ast.FloatValue:
		f, _ := strconv.ParseFloat(v.Raw, 64)
		return value.Float(f)
	case ast.StringValue, ast.BlockValue:
		return value.String(v.Raw)
	case ast.BooleanValue:
		return value.Boolean(v.Raw == "true")
	case ast.NullValue:
		return value.Null
	case ast.EnumValue:
		return value.UntypedEnumValue{Name: v.Raw}
	case ast.ListValue:
		elems := make([]value.Value, len(v.Children))
		for i, c := range v.Children {
			elems[i] = convertValue(c.Value)
		}
		return value.List{Elems: elems}
	case ast.ObjectValue:
		fields := make([]value.ObjectField, len(v.Children))
		for i, c := range v.Children {
			fields[i] = value.ObjectField{Name: c.Name, Value: convertValue(c.Value)}
		}
		return value.Object{Fields: fields}
	default:
		return value.String(v.Raw)
	}
}
