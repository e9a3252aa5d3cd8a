package plan

import "github.com/lattice-gql/qcore/value"

// MkPathQuery builds a minimal query selecting every field-name path in
// paths, sharing common prefixes (spec.md §4.E). Each path is a sequence
// of field names from the root; a one-element path denotes a bare leaf
// selection. Duplicate one-element paths are deduplicated.
func MkPathQuery(paths [][]string) Query {
	root := newPathTrie()
	for _, p := range paths {
		if len(p) == 0 {
			continue
		}
		root.insert(p)
	}
	return root.toQuery()
}

// pathTrie groups paths sharing a prefix so MkPathQuery can synthesize
// nested Selects instead of one flat, duplicate-prefixed selection per
// path.
type pathTrie struct {
	children map[string]*pathTrie
	order    []string
}

func newPathTrie() *pathTrie {
	return &pathTrie{children: make(map[string]*pathTrie)}
}

func (t *pathTrie) insert(path []string) {
	if len(path) == 0 {
		return
	}
	head, rest := path[0], path[1:]
	child, ok := t.children[head]
	if !ok {
		child = newPathTrie()
		t.children[head] = child
		t.order = append(t.order, head)
	}
	if len(rest) > 0 {
		child.insert(rest)
	}
}

func (t *pathTrie) toQuery() Query {
	children := make([]Query, 0, len(t.order))
	for _, name := range t.order {
		child := t.children[name]
		children = append(children, NewSelect(name, value.Bindings{}, child.toQuery()))
	}
	return NewGroup(children...)
}
