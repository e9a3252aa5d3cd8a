package value

import "fmt"

// Binding is a single argument supplied to a field selection: a name paired
// with its (possibly still-untyped) value. Order is not semantically
// meaningful; duplicate names within the same Bindings slice are forbidden
// and rejected by Validate.
type Binding struct {
	Name  string
	Value Value
}

// Bindings is an argument list, in source order (preserved for rendering
// only; lookups are by name).
type Bindings []Binding

// Lookup returns the value bound to name, if any.
func (bs Bindings) Lookup(name string) (Value, bool) {
	for _, b := range bs {
		if b.Name == name {
			return b.Value, true
		}
	}
	return nil, false
}

// Validate rejects duplicate binding names.
func (bs Bindings) Validate() error {
	seen := make(map[string]struct{}, len(bs))
	for _, b := range bs {
		if _, ok := seen[b.Name]; ok {
			return fmt.Errorf("duplicate argument %q", b.Name)
		}
		seen[b.Name] = struct{}{}
	}
	return nil
}

// Equal reports whether two binding lists bind the same names to equal
// values, irrespective of order. Used by the merge algorithm to decide
// whether two selections sharing an alias are compatible.
func (bs Bindings) Equal(other Bindings) bool {
	if len(bs) != len(other) {
		return false
	}
	om := make(map[string]Value, len(other))
	for _, b := range other {
		om[b.Name] = b.Value
	}
	for _, b := range bs {
		ov, ok := om[b.Name]
		if !ok || !Equal(b.Value, ov) {
			return false
		}
	}
	return true
}

// Render renders a binding list in canonical "(a: 1, b: 2)" form, or the
// empty string when there are no bindings.
func (bs Bindings) Render() string {
	if len(bs) == 0 {
		return ""
	}
	out := "("
	for i, b := range bs {
		if i > 0 {
			out += ", "
		}
		out += b.Name + ": " + b.Value.Render()
	}
	return out + ")"
}
