package predicate

import "github.com/lattice-gql/qcore/schema"

// Path is the Go rendering of the source's `TypeRef / "field"` path
// navigation syntax (spec.md §3): a starting type plus a sequence of field
// names a Term or Predicate may project through. Go has no operator
// overloading, so navigation is built with On(root).Field(name)... instead
// of root/"field".
type Path struct {
	Root     schema.TypeRef
	Segments []string
}

// PathBuilder accumulates Path segments.
type PathBuilder struct {
	path Path
}

// On starts a path rooted at tpe.
func On(tpe schema.TypeRef) PathBuilder {
	return PathBuilder{path: Path{Root: tpe}}
}

// Field extends the path with another segment.
func (b PathBuilder) Field(name string) PathBuilder {
	segs := make([]string, len(b.path.Segments)+1)
	copy(segs, b.path.Segments)
	segs[len(segs)-1] = name
	b.path.Segments = segs
	return b
}

// Path returns the accumulated Path value.
func (b PathBuilder) Path() Path { return b.path }
