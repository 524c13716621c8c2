package treediff

// TreeMatcher computes an edit script between two trees rooted at
// before and after, observed only through adapter.
type TreeMatcher[T any] struct {
	adapter Adapter[T]
	before  T
	after   T
}

// NewTreeMatcher creates a TreeMatcher for a pair of tree roots. Both
// roots are required; adapter must be non-nil. Passing a nil/zero root
// for a pointer- or interface-shaped T is a caller error: the matcher
// does not special-case it, and the adapter will typically panic the
// first time it dereferences the root.
func NewTreeMatcher[T any](adapter Adapter[T], before, after T) *TreeMatcher[T] {
	if adapter == nil {
		panic("treediff: adapter must not be nil")
	}
	return &TreeMatcher[T]{adapter: adapter, before: before, after: after}
}

// ComputeOperations returns the top-level edit script: always exactly
// one Operation, with ranges (0,1,0,1), over the conceptual parent of
// the two roots. It is a Descend if the roots are shallow-equal,
// otherwise a Replace.
func (m *TreeMatcher[T]) ComputeOperations() []Operation {
	var op Operation
	if shallowEqualsFast(m.adapter, m.before, m.after) {
		sub := matchSequence(m.adapter, m.adapter.Children(m.before), m.adapter.Children(m.after))
		if sub == nil {
			sub = []Operation{}
		}
		op = Operation{Tag: Descend, BeforeStart: 0, BeforeEnd: 1, AfterStart: 0, AfterEnd: 1, Sub: sub}
	} else {
		op = Operation{Tag: Replace, BeforeStart: 0, BeforeEnd: 1, AfterStart: 0, AfterEnd: 1}
	}
	return []Operation{op}
}
