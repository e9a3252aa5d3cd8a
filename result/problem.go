package result

import (
	"fmt"

	"github.com/samsarahq/go/oops"
)

// ProblemKind is the closed error taxonomy from spec.md §7.
type ProblemKind int

const (
	ParseError ProblemKind = iota
	UnknownField
	UnknownArgument
	UnknownType
	UnknownVariable
	TypeMismatch
	MissingRequired
	LeafSubselection
	NonLeafSubselection
	AmbiguousMerge
	InternalInvariant
)

func (k ProblemKind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case UnknownField:
		return "UnknownField"
	case UnknownArgument:
		return "UnknownArgument"
	case UnknownType:
		return "UnknownType"
	case UnknownVariable:
		return "UnknownVariable"
	case TypeMismatch:
		return "TypeMismatch"
	case MissingRequired:
		return "MissingRequired"
	case LeafSubselection:
		return "LeafSubselection"
	case NonLeafSubselection:
		return "NonLeafSubselection"
	case AmbiguousMerge:
		return "AmbiguousMerge"
	case InternalInvariant:
		return "InternalInvariant"
	default:
		return "UnknownProblemKind"
	}
}

// Problem is a single compile-time diagnostic. message is a single line
// for every kind except ParseError, whose message adds the source snippet
// and caret lines (see NewParseError); cause, when
// present, is wrapped with github.com/samsarahq/go/oops so a problem that
// originated from an underlying error (a parse failure, a bug caught by
// an invariant check) keeps its full chain for logs without leaking that
// chain into the user-visible single-line message.
type Problem struct {
	Kind    ProblemKind
	Message string
	Line    int // 1-based; 0 if not applicable
	Column  int // 1-based; 0 if not applicable
	cause   error
}

// Problems is a non-empty-by-convention sequence preserving
// first-occurrence order (spec.md §4.G).
type Problems []*Problem

func (p *Problem) Error() string { return p.Message }

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (p *Problem) Unwrap() error { return p.cause }

func newProblem(kind ProblemKind, cause error, format string, args ...interface{}) *Problem {
	return &Problem{Kind: kind, Message: fmt.Sprintf(format, args...), cause: cause}
}

// NewParseError builds a ParseError problem with position information,
// rendered per spec.md §6.2: "Parse error at line L column C\n<snippet>\n<caret>".
func NewParseError(line, col int, snippet string, cause error) *Problem {
	caret := ""
	for i := 1; i < col; i++ {
		caret += " "
	}
	caret += "^"
	p := newProblem(ParseError, oops.Wrapf(cause, "parse error"),
		"Parse error at line %d column %d\n%s\n%s", line, col, snippet, caret)
	p.Line, p.Column = line, col
	return p
}

func NewUnknownField(parentType, name string) *Problem {
	return newProblem(UnknownField, nil, "unknown field %q on type %q", name, parentType)
}

func NewUnknownArgument(field, argName string) *Problem {
	return newProblem(UnknownArgument, nil, "unknown argument %q on field %q", argName, field)
}

func NewUnknownType(name string) *Problem {
	return newProblem(UnknownType, nil, "unknown type %q", name)
}

func NewUnknownVariable(name string) *Problem {
	return newProblem(UnknownVariable, nil, "unknown variable %q", name)
}

func NewTypeMismatch(expected, actual string) *Problem {
	return newProblem(TypeMismatch, nil, "type mismatch: expected %s, got %s", expected, actual)
}

func NewMissingRequired(argName string) *Problem {
	return newProblem(MissingRequired, nil, "missing required argument %q", argName)
}

func NewLeafSubselection(field, tpe string) *Problem {
	return newProblem(LeafSubselection, nil, "field %q of type %q is a leaf and cannot have a subselection", field, tpe)
}

func NewNonLeafSubselection(field, tpe string) *Problem {
	return newProblem(NonLeafSubselection, nil, "field %q of type %q is not a leaf and requires a subselection", field, tpe)
}

func NewAmbiguousMerge(alias string) *Problem {
	return newProblem(AmbiguousMerge, nil, "cannot merge selections aliased %q: arguments differ", alias)
}

func NewInternalInvariant(cause error, format string, args ...interface{}) *Problem {
	msg := fmt.Sprintf(format, args...)
	return newProblem(InternalInvariant, oops.Wrapf(cause, "internal invariant violated"), "internal invariant violated: %s", msg)
}

// FailureError renders r's problems into a single oops-wrapped error, for
// callers that need to hand a Result off to a plain `error`-returning API
// boundary.
func FailureError[T any](r *Result[T]) error {
	problems := r.Problems()
	if len(problems) == 0 {
		return nil
	}
	err := oops.Errorf("%s", problems[0].Message)
	for _, p := range problems[1:] {
		err = oops.Wrapf(err, "%s", p.Message)
	}
	return err
}
