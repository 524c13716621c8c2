package treediff

import "testing"

type intNode struct {
	v int
	c []intNode
}

type intAdapter struct{}

func (intAdapter) ShallowEquals(a, b intNode) bool { return a.v == b.v }
func (intAdapter) ShallowHash(n intNode) uint64     { return uint64(n.v) }
func (intAdapter) Children(n intNode) []intNode     { return n.c }

func leaves(vs ...int) []intNode {
	out := make([]intNode, len(vs))
	for i, v := range vs {
		out[i] = intNode{v: v}
	}
	return out
}

func TestTraceAlignmentPrefersDeleteBeforeInsertOnTie(t *testing.T) {
	bc := leaves(1)
	ac := leaves(2)
	steps := traceAlignment[intNode](intAdapter{}, bc, ac)
	if len(steps) != 2 {
		t.Fatalf("len(steps) = %d, want 2", len(steps))
	}
	if steps[0].kind != stepDeleteOnly || steps[1].kind != stepInsertOnly {
		t.Fatalf("steps = %+v, want [delete, insert]", steps)
	}
}

func TestTraceAlignmentMaximizesEqualRunLength(t *testing.T) {
	// bc = [1,2,3], ac = [1,2,3]: the LCS is the whole sequence, so
	// every step should be a match, in order.
	bc := leaves(1, 2, 3)
	ac := leaves(1, 2, 3)
	steps := traceAlignment[intNode](intAdapter{}, bc, ac)
	if len(steps) != 3 {
		t.Fatalf("len(steps) = %d, want 3", len(steps))
	}
	for i, s := range steps {
		if s.kind != stepMatch || s.bIdx != i || s.aIdx != i {
			t.Fatalf("steps[%d] = %+v, want match(%d,%d)", i, s, i, i)
		}
	}
}

func TestShallowEqualsFastRejectsHashMismatch(t *testing.T) {
	if shallowEqualsFast[intNode](intAdapter{}, intNode{v: 1}, intNode{v: 2}) {
		t.Fatalf("expected shallowEqualsFast to return false for differing hashes")
	}
	if !shallowEqualsFast[intNode](intAdapter{}, intNode{v: 7}, intNode{v: 7}) {
		t.Fatalf("expected shallowEqualsFast to return true for equal nodes")
	}
}
