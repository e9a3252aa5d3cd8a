package plan

import (
	"strconv"
	"strings"
)

// Render produces the canonical debug string for q (spec.md §6.4). It is
// implemented as a single type switch over every node kind rather than a
// Render method on each node. The compiler does not check the switch for
// exhaustiveness: a node kind missing from it falls through to the
// `default` arm and renders as "<unknown-node>".
func Render(q Query) string {
	switch n := q.(type) {
	case Select:
		if IsEmpty(n.Child) {
			return n.FieldName + n.Args.Render()
		}
		return n.FieldName + n.Args.Render() + "{ " + Render(n.Child) + " }"
	case Group:
		parts := make([]string, len(n.Children))
		for i, c := range n.Children {
			parts[i] = Render(c)
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	case Unique:
		return "<unique: " + Render(n.Child) + ">"
	case Filter:
		return "<filter: " + n.Pred.Render() + " " + Render(n.Child) + ">"
	case Component:
		return "<component: " + n.Target.TargetType() + " " + n.Join.Render() + " " + Render(n.Child) + ">"
	case Effect:
		return "<effect: " + n.Handler.Name() + " " + Render(n.Child) + ">"
	case Introspect:
		return "<introspect: " + Render(n.Child) + ">"
	case EnvironmentNode:
		return "<environment: " + Render(n.Child) + ">"
	case Wrap:
		return "<wrap: " + n.FieldName + " " + Render(n.Child) + ">"
	case Rename:
		return "<rename: " + n.ResultName + " " + Render(n.Child) + ">"
	case UntypedNarrow:
		return "<untyped-narrow: " + n.TypeName + " " + Render(n.Child) + ">"
	case Narrow:
		return "<narrow: " + n.SubType.Name() + " " + Render(n.Child) + ">"
	case Skip:
		sense := "skip"
		if n.Sense == IncludeIf {
			sense = "include"
		}
		return "<" + sense + ": " + n.Cond.Render() + " " + Render(n.Child) + ">"
	case Limit:
		return "<limit: " + strconv.Itoa(n.N) + " " + Render(n.Child) + ">"
	case Offset:
		return "<offset: " + strconv.Itoa(n.N) + " " + Render(n.Child) + ">"
	case OrderBy:
		parts := make([]string, len(n.Selections))
		for i, s := range n.Selections {
			dir := "asc"
			if !s.Ascending {
				dir = "desc"
			}
			parts[i] = strings.Join(s.Path, "/") + " " + dir
		}
		return "<order-by: " + strings.Join(parts, ", ") + " " + Render(n.Child) + ">"
	case Count:
		return "<count: " + n.FieldName + " " + Render(n.Child) + ">"
	case TransformCursor:
		return "<transform-cursor: " + Render(n.Child) + ">"
	case skippedSentinel:
		return "<skipped>"
	case emptySentinel:
		return "<empty>"
	default:
		return "<unknown-node>"
	}
}

