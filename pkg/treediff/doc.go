// Package treediff computes an edit script between two rooted, ordered
// trees of an arbitrary, caller-supplied node type.
//
// Callers implement Adapter for their own node type, hand both tree roots
// to NewTreeMatcher, and call ComputeOperations to get back an Operation
// tree describing how to turn the "before" tree into the "after" tree.
// The matcher never constructs or mutates nodes; it only observes them
// through the Adapter.
//
// Package treediff does not know how to apply the resulting edit script;
// see package treediff/pkg/apply for that.
package treediff
