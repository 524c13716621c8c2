package apply

import (
	"fmt"

	"treediff/pkg/treediff"
)

// Callbacks receives one call per block (run) of an edit script. before
// and after are slices into the caller's own node lists; a callback must
// not retain them past the call if the underlying storage is mutable.
type Callbacks[T any] interface {
	// Replace is called for a REPLACE block: before and after are both
	// non-empty and do not align with each other.
	Replace(before, after []T) error
	// Delete is called for a DELETE block; before is non-empty.
	Delete(before []T) error
	// Insert is called for an INSERT block; after is non-empty.
	Insert(after []T) error
	// Equal is called for an EQUAL block: before and after are
	// shallow-equal, element for element, and the same length.
	Equal(before, after []T) error
	// Descend is called once before a DESCEND block's children are
	// walked. before and after are the single node pair being
	// descended into.
	Descend(before, after T) error
	// Ascend is called once after a DESCEND block's children have all
	// been walked, mirroring the Descend that opened it.
	Ascend() error
}

// frame is one level of the traversal stack: the remaining operations at
// this level, and the before/after sibling lists they index into.
type frame[T any] struct {
	ops []treediff.Operation
	bc  []T
	ac  []T
}

// Driver walks an Operation script produced for a pair of trees and
// dispatches it to a Callbacks[T] implementation. before and after are
// fixed at construction, mirroring the original Apply.__init__(adapter,
// before, after) shape: a Driver is built once per (before, after) pair
// and its Apply method only ever takes the script to walk.
type Driver[T any] struct {
	adapter   treediff.Adapter[T]
	before    T
	after     T
	callbacks Callbacks[T]
}

// NewDriver builds a Driver that will walk scripts over before and
// after, observed through adapter, dispatching to callbacks.
func NewDriver[T any](adapter treediff.Adapter[T], before, after T, callbacks Callbacks[T]) *Driver[T] {
	if adapter == nil {
		panic("apply: adapter must not be nil")
	}
	if callbacks == nil {
		panic("apply: callbacks must not be nil")
	}
	return &Driver[T]{adapter: adapter, before: before, after: after, callbacks: callbacks}
}

// Apply walks ops — the top-level script produced by a TreeMatcher for
// the Driver's before/after pair — dispatching each block to the
// Driver's callbacks in document order. ops must be the top-level
// script: exactly one Operation, ranging (0,1,0,1) over the synthetic
// before/after root pair. A malformed ops argument (wrong length,
// out-of-range indices) is a programmer error and panics rather than
// returning an error; errors returned by the callbacks themselves
// propagate unchanged.
func (d *Driver[T]) Apply(ops []treediff.Operation) error {
	if len(ops) != 1 {
		panic(fmt.Sprintf("apply: top-level script must have exactly one operation, got %d", len(ops)))
	}

	stack := []frame[T]{{ops: ops, bc: []T{d.before}, ac: []T{d.after}}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if len(top.ops) == 0 {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				if err := d.callbacks.Ascend(); err != nil {
					return err
				}
			}
			continue
		}

		op := top.ops[0]
		top.ops = top.ops[1:]

		bSlice := sliceRange(top.bc, op.BeforeStart, op.BeforeEnd, "before")
		aSlice := sliceRange(top.ac, op.AfterStart, op.AfterEnd, "after")

		switch op.Tag {
		case treediff.Equal:
			if err := d.callbacks.Equal(bSlice, aSlice); err != nil {
				return err
			}
		case treediff.Replace:
			if err := d.callbacks.Replace(bSlice, aSlice); err != nil {
				return err
			}
		case treediff.Delete:
			if err := d.callbacks.Delete(bSlice); err != nil {
				return err
			}
		case treediff.Insert:
			if err := d.callbacks.Insert(aSlice); err != nil {
				return err
			}
		case treediff.Descend:
			if len(bSlice) != 1 || len(aSlice) != 1 {
				panic(fmt.Sprintf("apply: DESCEND operation must range over exactly one element on each side, got before=%d after=%d", len(bSlice), len(aSlice)))
			}
			sub := op.Sub
			if sub == nil {
				panic("apply: DESCEND operation carries a nil Sub")
			}
			b, a := bSlice[0], aSlice[0]
			if err := d.callbacks.Descend(b, a); err != nil {
				return err
			}
			stack = append(stack, frame[T]{
				ops: sub,
				bc:  d.adapter.Children(b),
				ac:  d.adapter.Children(a),
			})
		default:
			panic(fmt.Sprintf("apply: unknown operation tag %v", op.Tag))
		}
	}
	return nil
}

// sliceRange validates and slices s[start:end], panicking with a
// descriptive message identifying which side (before/after) was at
// fault if the range is out of bounds.
func sliceRange[T any](s []T, start, end int, side string) []T {
	if start < 0 || end < start || end > len(s) {
		panic(fmt.Sprintf("apply: %s range [%d:%d) out of bounds for length %d", side, start, end, len(s)))
	}
	return s[start:end]
}
