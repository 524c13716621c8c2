package apply_test

import "treediff/pkg/treediff"

// node mirrors the fixture type used by the treediff package's own
// tests: an int payload plus an ordered child list.
type node struct {
	value    int
	children []*node
}

func n(value int, children ...*node) *node {
	return &node{value: value, children: children}
}

type nodeAdapter struct{}

func (nodeAdapter) ShallowEquals(a, b *node) bool { return a.value == b.value }
func (nodeAdapter) ShallowHash(x *node) uint64     { return uint64(x.value) }
func (nodeAdapter) Children(x *node) []*node       { return x.children }

var _ treediff.Adapter[*node] = nodeAdapter{}
