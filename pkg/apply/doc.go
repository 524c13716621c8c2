// Package apply walks a precomputed treediff edit script against the
// original before/after trees and dispatches typed callbacks to a
// consumer, which builds whatever domain-specific artifact it needs
// (a merged tree, a patch, a rendered diff) out of them.
//
// Two callback dialects are provided: Callbacks, which receives a run
// (slice) of nodes per block, and SingleCallbacks, which receives at
// most one node per call and is invoked once per element of a
// multi-element block. AsCallbacks adapts the latter onto the former;
// a consumer only ever has to implement one of the two interfaces.
package apply
