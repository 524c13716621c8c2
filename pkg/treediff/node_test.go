package treediff_test

import "treediff/pkg/treediff"

// node is a minimal tree node used across this package's tests: a single
// comparable payload plus an ordered list of children, mirroring the
// shape diff-testing fixtures generally use (a leaf value and a child
// list) without tying the tests to any real document format.
type node struct {
	value    int
	children []*node
}

func n(value int, children ...*node) *node {
	return &node{value: value, children: children}
}

// nodeAdapter is the Adapter[*node] used by this package's tests.
type nodeAdapter struct{}

func (nodeAdapter) ShallowEquals(a, b *node) bool {
	return a.value == b.value
}

func (nodeAdapter) ShallowHash(x *node) uint64 {
	return uint64(x.value)
}

func (nodeAdapter) Children(x *node) []*node {
	return x.children
}

var _ treediff.Adapter[*node] = nodeAdapter{}
