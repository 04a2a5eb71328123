// Package rank implements the rank schemes of the generalized zip tree:
// geometric, uniform, zip-zip (geometric×uniform and geometric×geometric),
// zig-zag, dynamic lazy-bit, and variable-p geometric. Each scheme supplies a
// fresh-rank sampler and a counted comparator; the tree engine in package
// ziptree never inspects a rank's fields directly, only through Scheme.
package rank

import "github.com/ogurtsovandrei/randztree/counters"

// Scheme is the contract a rank type must satisfy to drive a
// ziptree.Tree[K, V, R]. Compare is the only method allowed to touch the
// tree's tie counters; TieBreak and ZipTieBreak resolve exact ties (as
// reported by a prior Compare call returning 0) and must not mutate either
// rank argument or the counters: they are precedence rules, not fresh
// comparisons.
type Scheme[R any] interface {
	// Fresh draws a new rank value, consuming randomness from the scheme's
	// own source.
	Fresh(c *counters.Counters) R

	// Compare returns <0, 0, or >0 for a<b, a==b, a>b, bumping c.TotalComparisons
	// and the relevant tie counters. It may mutate a and/or b (the dynamic
	// scheme extends bit-length on a tie).
	Compare(a, b *R, c *counters.Counters) int

	// TieBreak resolves an exact tie encountered while descending to find an
	// insertion point: newRank belongs to the node being inserted, curRank to
	// the node currently being visited, and descendingLeft reports whether
	// the new key is less than the current node's key. It returns true when
	// the new node should stop descending and take this position.
	TieBreak(newRank, curRank *R, descendingLeft bool) bool

	// ZipTieBreak resolves an exact tie during zip(x, y), where every key in
	// x's subtree is less than every key in y's subtree. It returns true if y
	// should become the merged subtree's root.
	ZipTieBreak(x, y *R) bool
}

// keyOrderTieBreak is the default tie-break shared by every scheme except
// Zig-Zag: on a rank tie, the smaller key wins, the mechanical form of
// invariant 2's "strict on the left, non-strict on the right" rule.
func keyOrderTieBreak(descendingLeft bool) bool {
	return descendingLeft
}

// keyOrderZipTieBreak is the default zip tie-break shared by every scheme
// except Zig-Zag: on a rank tie, x (the subtree with smaller keys) always
// wins, becoming the merged root with y folded in as its right child.
func keyOrderZipTieBreak() bool {
	return false
}
