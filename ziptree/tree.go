package ziptree

import (
	"cmp"

	"github.com/ogurtsovandrei/randztree/counters"
	"github.com/ogurtsovandrei/randztree/errutil"
	"github.com/ogurtsovandrei/randztree/rank"
)

// Hook is called on a node immediately after one of its children changed,
// either a new child was attached or an existing child's own Hook ran. It
// is the generalization point augmented trees (firstfit's best-remaining-
// capacity index, for instance) use to recompute an aggregate bottom-up,
// mirroring the updateNode hook in original_source/src/ZipTree.h.
type Hook[K cmp.Ordered, V any, R any] func(n *Node[K, V, R])

// Tree is a generalized zip tree over keys K, payload values V, and a rank
// type R whose sampling and comparison are supplied by a rank.Scheme.
type Tree[K cmp.Ordered, V any, R any] struct {
	root     *Node[K, V, R]
	size     int
	counters counters.Counters
	scheme   rank.Scheme[R]
	hook     Hook[K, V, R]
}

// New builds an empty tree driven by the given rank scheme.
func New[K cmp.Ordered, V any, R any](scheme rank.Scheme[R]) *Tree[K, V, R] {
	return &Tree[K, V, R]{scheme: scheme}
}

// NewWithHook builds an empty tree whose nodes are kept up to date by hook
// after every structural change, for augmented variants like firstfit.Index.
func NewWithHook[K cmp.Ordered, V any, R any](scheme rank.Scheme[R], hook Hook[K, V, R]) *Tree[K, V, R] {
	return &Tree[K, V, R]{scheme: scheme, hook: hook}
}

// Root returns the tree's root node, or nil if the tree is empty.
func (t *Tree[K, V, R]) Root() *Node[K, V, R] {
	return t.root
}

// Size returns the number of keys currently in the tree.
func (t *Tree[K, V, R]) Size() int {
	return t.size
}

// Counters returns a snapshot of the comparison counters accumulated across
// every Insert and Remove call so far. Find, Lookup, and Depth compare keys
// only and leave the counters untouched.
func (t *Tree[K, V, R]) Counters() counters.Counters {
	return t.counters
}

// ApplyHook runs the tree's installed hook on n, if any. Exported so
// packages that build augmented trees directly on top of Node (rather than
// only through Insert/Remove) can recompute aggregates the same way.
func (t *Tree[K, V, R]) ApplyHook(n *Node[K, V, R]) *Node[K, V, R] {
	if t.hook != nil && n != nil {
		t.hook(n)
	}
	return n
}

// Find reports whether key is present.
func (t *Tree[K, V, R]) Find(key K) bool {
	_, ok := t.find(key)
	return ok
}

// Lookup returns the payload stored under key, if present.
func (t *Tree[K, V, R]) Lookup(key K) (V, bool) {
	n, ok := t.find(key)
	if !ok {
		var zero V
		return zero, false
	}
	return n.payload, true
}

func (t *Tree[K, V, R]) find(key K) (*Node[K, V, R], bool) {
	cur := t.root
	for cur != nil {
		switch {
		case key < cur.key:
			cur = cur.left
		case cur.key < key:
			cur = cur.right
		default:
			return cur, true
		}
	}
	return nil, false
}

// Insert adds key with the given payload, drawing a fresh rank from the
// tree's scheme. Inserting a key that already exists is undefined; callers
// wanting upsert semantics should Find first.
func (t *Tree[K, V, R]) Insert(key K, value V) *Node[K, V, R] {
	errutil.BugOn(t.Find(key), "ziptree: duplicate key %v", key)
	x := &Node[K, V, R]{key: key, payload: value, rank: t.scheme.Fresh(&t.counters)}
	t.root = t.insert(x, t.root)
	t.size++
	return x
}

// insert is the recursive unzip: it descends by key to an empty position
// and places x there, then, on the way back up, lifts x above each ancestor
// whose rank x beats, handing that ancestor the part of x's subtree on its
// side of the search path, and stops lifting at the first ancestor x loses
// to. Strict on the left child, non-strict on the right, per
// original_source/src/ZipTree.h's insertRecursive.
func (t *Tree[K, V, R]) insert(x, root *Node[K, V, R]) *Node[K, V, R] {
	if root == nil {
		return x
	}

	if x.key < root.key {
		subroot := t.insert(x, root.left)
		if subroot == x && t.newWins(x, root, true) {
			root.left = x.right
			x.right = t.ApplyHook(root)
			return t.ApplyHook(x)
		}
		root.left = subroot
	} else {
		subroot := t.insert(x, root.right)
		if subroot == x && t.newWins(x, root, false) {
			root.right = x.left
			x.left = t.ApplyHook(root)
			return t.ApplyHook(x)
		}
		root.right = subroot
	}

	return t.ApplyHook(root)
}

// newWins reports whether x's rank beats root's rank strongly enough for x
// to take root's place: strictly greater always wins; an exact tie is
// resolved by the scheme's TieBreak, which defaults to "smaller key wins"
// (descendingLeft true) except for the Zig-Zag scheme.
func (t *Tree[K, V, R]) newWins(x, root *Node[K, V, R], descendingLeft bool) bool {
	c := t.scheme.Compare(&x.rank, &root.rank, &t.counters)
	if c > 0 {
		return true
	}
	if c < 0 {
		return false
	}
	return t.scheme.TieBreak(&x.rank, &root.rank, descendingLeft)
}

// Remove deletes key, reporting whether it was present.
func (t *Tree[K, V, R]) Remove(key K) bool {
	removed := false
	t.root = t.remove(key, t.root, &removed)
	if removed {
		t.size--
	}
	return removed
}

func (t *Tree[K, V, R]) remove(key K, root *Node[K, V, R], removed *bool) *Node[K, V, R] {
	if root == nil {
		return nil
	}

	switch {
	case key < root.key:
		root.left = t.remove(key, root.left, removed)
	case root.key < key:
		root.right = t.remove(key, root.right, removed)
	default:
		*removed = true
		return t.zip(root.left, root.right)
	}

	return t.ApplyHook(root)
}

// zip merges two subtrees x and y, where every key in x is less than every
// key in y, back into one. It is the inverse of the unzip insert performs.
// On an exact rank tie the scheme's ZipTieBreak decides, defaulting to x
// staying on top (every scheme except Zig-Zag).
func (t *Tree[K, V, R]) zip(x, y *Node[K, V, R]) *Node[K, V, R] {
	if x == nil {
		return y
	}
	if y == nil {
		return x
	}

	c := t.scheme.Compare(&x.rank, &y.rank, &t.counters)
	yWins := c < 0
	if c == 0 {
		yWins = t.scheme.ZipTieBreak(&x.rank, &y.rank)
	}

	if yWins {
		y.left = t.zip(x, y.left)
		return t.ApplyHook(y)
	}
	x.right = t.zip(x.right, y)
	return t.ApplyHook(x)
}

// Depth returns the number of edges from the root to key, and whether key
// was found at all; a miss returns (-1, false).
func (t *Tree[K, V, R]) Depth(key K) (int, bool) {
	cur := t.root
	depth := 0
	for cur != nil {
		switch {
		case key < cur.key:
			cur = cur.left
			depth++
		case cur.key < key:
			cur = cur.right
			depth++
		default:
			return depth, true
		}
	}
	return -1, false
}

// Height returns the tree's height (an empty tree has height -1, a
// single-node tree height 0), matching
// original_source/src/GeneralizedZipTree.h's getHeight convention.
func (t *Tree[K, V, R]) Height() int {
	return height(t.root)
}

func height[K cmp.Ordered, V any, R any](n *Node[K, V, R]) int {
	if n == nil {
		return -1
	}
	lh, rh := height(n.left), height(n.right)
	if lh > rh {
		return lh + 1
	}
	return rh + 1
}

// AverageDepth returns the mean depth over all keys, and false if the tree
// is empty (there being no meaningful average of zero samples: callers
// should check the bool rather than special-case a NaN).
func (t *Tree[K, V, R]) AverageDepth() (float64, bool) {
	if t.size == 0 {
		return 0, false
	}
	total := totalDepth(t.root, 0)
	return float64(total) / float64(t.size), true
}

func totalDepth[K cmp.Ordered, V any, R any](n *Node[K, V, R], depth uint64) uint64 {
	if n == nil {
		return 0
	}
	return depth + totalDepth(n.left, depth+1) + totalDepth(n.right, depth+1)
}
