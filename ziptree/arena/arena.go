// Package arena implements an insert-only, index-based specialization of
// the zip tree engine: nodes live in a single growable slice addressed by
// uint32 index rather than by pointer. It trades Remove support (never
// needed for the bulk-build workloads this specialization targets) for
// better cache locality and no per-node heap allocation, following the
// structure of original_source/src/GeneralizedZipTree.h's bucket vector and
// other_examples' huesflash-ziptree index-based layout.
package arena

import (
	"cmp"

	"github.com/ogurtsovandrei/randztree/counters"
	"github.com/ogurtsovandrei/randztree/rank"
)

// Index addresses a node within a Tree's arena. NullIndex marks the absence
// of a child or root.
type Index uint32

// NullIndex is the sentinel "no node" index, matching SENTINEL in
// other_examples' huesflash-ziptree implementation.
const NullIndex = ^Index(0)

type entry[K cmp.Ordered, V any, R any] struct {
	key         K
	rank        R
	payload     V
	left, right Index
}

// Tree is an insert-only generalized zip tree backed by a flat arena.
type Tree[K cmp.Ordered, V any, R any] struct {
	entries  []entry[K, V, R]
	root     Index
	counters counters.Counters
	scheme   rank.Scheme[R]
}

// New builds an empty arena tree, pre-sizing its backing slice to
// expectedSize the way GeneralizedZipTree's constructor reserves capacity
// up front.
func New[K cmp.Ordered, V any, R any](scheme rank.Scheme[R], expectedSize int) *Tree[K, V, R] {
	t := &Tree[K, V, R]{root: NullIndex, scheme: scheme}
	if expectedSize > 0 {
		t.entries = make([]entry[K, V, R], 0, expectedSize)
	}
	return t
}

// Size returns the number of keys inserted.
func (t *Tree[K, V, R]) Size() int {
	return len(t.entries)
}

// Counters returns a snapshot of the comparison counters.
func (t *Tree[K, V, R]) Counters() counters.Counters {
	return t.counters
}

// Root returns the index of the tree's root, or NullIndex if empty.
func (t *Tree[K, V, R]) Root() Index {
	return t.root
}

// Key returns the key stored at idx.
func (t *Tree[K, V, R]) Key(idx Index) K {
	return t.entries[idx].key
}

// Left returns the left child of idx, or NullIndex.
func (t *Tree[K, V, R]) Left(idx Index) Index {
	return t.entries[idx].left
}

// Right returns the right child of idx, or NullIndex.
func (t *Tree[K, V, R]) Right(idx Index) Index {
	return t.entries[idx].right
}

// Payload returns a pointer to the value stored at idx.
func (t *Tree[K, V, R]) Payload(idx Index) *V {
	return &t.entries[idx].payload
}

// Rank returns a pointer to the rank stored at idx, exported so callers
// (property tests, augmented variants) can re-run the scheme's comparator
// over the tree without duplicating its rank type.
func (t *Tree[K, V, R]) Rank(idx Index) *R {
	return &t.entries[idx].rank
}

// Find reports whether key is present.
func (t *Tree[K, V, R]) Find(key K) bool {
	cur := t.root
	for cur != NullIndex {
		e := &t.entries[cur]
		switch {
		case key < e.key:
			cur = e.left
		case e.key < key:
			cur = e.right
		default:
			return true
		}
	}
	return false
}

// Insert adds key with the given payload and returns its arena index,
// following the iterative two-pass unzip of
// original_source/src/GeneralizedZipTree.h's insert: a first top-down walk
// descends while the new node's rank loses to the current node's, stopping
// at the first node the new node beats; a second pass re-threads the two
// halves of that node's subtree as the new node's children.
func (t *Tree[K, V, R]) Insert(key K, value V) Index {
	xIdx := Index(len(t.entries))
	x := entry[K, V, R]{key: key, payload: value, rank: t.scheme.Fresh(&t.counters), left: NullIndex, right: NullIndex}

	if xIdx == 0 {
		t.root = xIdx
		t.entries = append(t.entries, x)
		return xIdx
	}

	rootIdx := t.root
	curIdx := t.root
	prevIdx := NullIndex

	for curIdx != NullIndex {
		cur := &t.entries[curIdx]
		descendingLeft := key < cur.key
		if t.newWins(&x.rank, &cur.rank, descendingLeft) {
			break
		}
		prevIdx = curIdx
		if descendingLeft {
			curIdx = cur.left
		} else {
			curIdx = cur.right
		}
	}

	t.entries = append(t.entries, x)

	if curIdx == rootIdx {
		t.root = xIdx
	} else if key < t.entries[prevIdx].key {
		t.entries[prevIdx].left = xIdx
	} else {
		t.entries[prevIdx].right = xIdx
	}

	if curIdx == NullIndex {
		return xIdx
	}

	if key < t.entries[curIdx].key {
		t.entries[xIdx].right = curIdx
	} else {
		t.entries[xIdx].left = curIdx
	}

	prevIdx = xIdx
	for curIdx != NullIndex {
		fixIdx := prevIdx

		if t.entries[curIdx].key < key {
			for curIdx != NullIndex && t.entries[curIdx].key < key {
				prevIdx = curIdx
				curIdx = t.entries[curIdx].right
			}
		} else {
			for curIdx != NullIndex && key < t.entries[curIdx].key {
				prevIdx = curIdx
				curIdx = t.entries[curIdx].left
			}
		}

		fixGoesLeft := key < t.entries[fixIdx].key || (fixIdx == xIdx && key < t.entries[prevIdx].key)
		if fixGoesLeft {
			t.entries[fixIdx].left = curIdx
		} else {
			t.entries[fixIdx].right = curIdx
		}
	}

	return xIdx
}

// Depth returns the number of edges from the root to key, and whether key
// was found at all ((-1, false) on a miss), matching the early-return-before-increment ordering of
// original_source's index-based getDepth (spec.md §9: the root's depth is
// correctly 0 only because the match arm returns before the counter bumps).
func (t *Tree[K, V, R]) Depth(key K) (int, bool) {
	cur := t.root
	depth := 0
	for cur != NullIndex {
		e := &t.entries[cur]
		switch {
		case key < e.key:
			cur = e.left
			depth++
		case e.key < key:
			cur = e.right
			depth++
		default:
			return depth, true
		}
	}
	return -1, false
}

// Height returns the tree's height (-1 for an empty tree, 0 for a single
// node), matching ziptree.Tree.Height's convention.
func (t *Tree[K, V, R]) Height() int {
	return t.height(t.root)
}

func (t *Tree[K, V, R]) height(idx Index) int {
	if idx == NullIndex {
		return -1
	}
	e := &t.entries[idx]
	lh, rh := t.height(e.left), t.height(e.right)
	if lh > rh {
		return lh + 1
	}
	return rh + 1
}

// AverageDepth returns the mean depth over all keys, and false if the tree
// is empty.
func (t *Tree[K, V, R]) AverageDepth() (float64, bool) {
	if len(t.entries) == 0 {
		return 0, false
	}
	total := t.totalDepth(t.root, 0)
	return float64(total) / float64(len(t.entries)), true
}

func (t *Tree[K, V, R]) totalDepth(idx Index, depth uint64) uint64 {
	if idx == NullIndex {
		return 0
	}
	e := &t.entries[idx]
	return depth + t.totalDepth(e.left, depth+1) + t.totalDepth(e.right, depth+1)
}

// newWins mirrors Tree.newWins in package ziptree: strictly-greater rank
// always wins, an exact tie defers to the scheme's TieBreak.
func (t *Tree[K, V, R]) newWins(x, cur *R, descendingLeft bool) bool {
	c := t.scheme.Compare(x, cur, &t.counters)
	if c > 0 {
		return true
	}
	if c < 0 {
		return false
	}
	return t.scheme.TieBreak(x, cur, descendingLeft)
}
