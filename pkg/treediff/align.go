package treediff

// align.go implements sibling-list alignment as a classic
// dynamic-programming longest-common-subsequence alignment over
// ShallowEquals/ShallowHash: an (n+1)x(m+1) length table is built in
// O(n*m) time, then backtracked from (n,m) to (0,0).
//
// The backtrack prefers a diagonal (matched) step whenever the elements
// are shallow-equal and a diagonal step stays on an optimal path; this
// is what guarantees the emitted script maximizes total Equal run
// length. On a tie between consuming a before-only element and an
// after-only element, the backtrack consumes the after-only element
// first (walking backward), which realizes "Delete before Insert" in
// the forward-emitted block order once the trace is reversed.

type stepKind uint8

const (
	stepMatch stepKind = iota
	stepDeleteOnly
	stepInsertOnly
)

type step struct {
	kind       stepKind
	bIdx, aIdx int
}

// shallowEqualsFast consults ShallowHash before ShallowEquals, per the
// Adapter contract: equal nodes must hash equal, so a hash mismatch is
// a cheap proof of inequality.
func shallowEqualsFast[T any](adapter Adapter[T], a, b T) bool {
	if adapter.ShallowHash(a) != adapter.ShallowHash(b) {
		return false
	}
	return adapter.ShallowEquals(a, b)
}

// traceAlignment computes the LCS backtrace of bc against ac, returned
// in forward order (index 0 consumes the lowest before/after indices).
func traceAlignment[T any](adapter Adapter[T], bc, ac []T) []step {
	n, m := len(bc), len(ac)

	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if shallowEqualsFast(adapter, bc[i-1], ac[j-1]) {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] >= dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}

	steps := make([]step, 0, n+m)
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && dp[i][j] == dp[i-1][j-1]+1 && shallowEqualsFast(adapter, bc[i-1], ac[j-1]):
			steps = append(steps, step{kind: stepMatch, bIdx: i - 1, aIdx: j - 1})
			i--
			j--
		case j > 0 && (i == 0 || dp[i][j-1] >= dp[i-1][j]):
			steps = append(steps, step{kind: stepInsertOnly, aIdx: j - 1})
			j--
		default:
			steps = append(steps, step{kind: stepDeleteOnly, bIdx: i - 1})
			i--
		}
	}
	for l, r := 0, len(steps)-1; l < r; l, r = l+1, r-1 {
		steps[l], steps[r] = steps[r], steps[l]
	}
	return steps
}

// matchSequence aligns two ordered sibling lists and returns the edit
// script for them. A matched (shallow-equal) pair recurses into its own
// children; if that recursion yields only Equal blocks (or no
// sub-operations at all, when both sides are leaves), the two subtrees
// are identical and the pair joins a run of Equal; otherwise it stands
// alone as a width-1 Descend carrying that recursive script. Consecutive
// delete-only/insert-only steps not separated by a match coalesce into
// a single Delete, Insert, or Replace block, matching whichever sides
// are actually non-empty.
func matchSequence[T any](adapter Adapter[T], bc, ac []T) []Operation {
	steps := traceAlignment(adapter, bc, ac)

	var result []Operation
	bPos, aPos := 0, 0
	i := 0
	for i < len(steps) {
		if steps[i].kind != stepMatch {
			startB, startA := bPos, aPos
			for i < len(steps) && steps[i].kind != stepMatch {
				if steps[i].kind == stepDeleteOnly {
					bPos++
				} else {
					aPos++
				}
				i++
			}
			switch {
			case bPos > startB && aPos > startA:
				result = append(result, Operation{Tag: Replace, BeforeStart: startB, BeforeEnd: bPos, AfterStart: startA, AfterEnd: aPos})
			case bPos > startB:
				result = append(result, Operation{Tag: Delete, BeforeStart: startB, BeforeEnd: bPos, AfterStart: startA, AfterEnd: aPos})
			case aPos > startA:
				result = append(result, Operation{Tag: Insert, BeforeStart: startB, BeforeEnd: bPos, AfterStart: startA, AfterEnd: aPos})
			}
			continue
		}

		// A run of trivially-equal matches coalesces into one Equal
		// block; the first non-trivial match (one whose subtrees
		// differ) breaks the run and stands alone as a Descend.
		runStartB, runStartA := bPos, aPos
		var nontrivialSub []Operation
		j := i
		for j < len(steps) && steps[j].kind == stepMatch {
			b, a := bc[steps[j].bIdx], ac[steps[j].aIdx]
			sub := matchSequence(adapter, adapter.Children(b), adapter.Children(a))
			identical := true
			for _, s := range sub {
				if s.Tag != Equal {
					identical = false
					break
				}
			}
			if !identical {
				nontrivialSub = sub
				break
			}
			bPos++
			aPos++
			j++
		}
		if j > i {
			result = append(result, Operation{Tag: Equal, BeforeStart: runStartB, BeforeEnd: bPos, AfterStart: runStartA, AfterEnd: aPos})
			i = j
			continue
		}
		// j == i: the run's first candidate was non-trivial.
		result = append(result, Operation{
			Tag:         Descend,
			BeforeStart: bPos,
			BeforeEnd:   bPos + 1,
			AfterStart:  aPos,
			AfterEnd:    aPos + 1,
			Sub:         nontrivialSub,
		})
		bPos++
		aPos++
		i++
	}
	return result
}
