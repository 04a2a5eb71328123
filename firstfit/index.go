package firstfit

import (
	"golang.org/x/exp/rand"

	"github.com/ogurtsovandrei/randztree/rank"
	"github.com/ogurtsovandrei/randztree/ziptree"
)

// Bin is the payload stored at each node of an Index: a bin's remaining
// capacity, and the best (largest) remaining capacity reachable in its
// subtree, maintained by the node hook per the augmentation law
// bestRemainingCapacity = max(remainingCapacity, left.best, right.best).
type Bin struct {
	RemainingCapacity     EpsFloat
	BestRemainingCapacity EpsFloat
}

type ffNode = ziptree.Node[uint32, Bin, rank.ZigZagRank]

// Index is a Zip Tree keyed by bin ID (1-origin, assigned in insertion
// order) augmented to answer "leftmost bin with enough capacity" in
// O(log n), per original_source/src/ZipTreeFF.h. It uses the Zig-Zag rank
// scheme, matching ZipTreeFF's base class.
type Index struct {
	tree *ziptree.Tree[uint32, Bin, rank.ZigZagRank]
}

// NewIndex builds an empty First-Fit index. A nil src seeds a fresh
// Zig-Zag rank source.
func NewIndex(src *rand.Rand) *Index {
	scheme := rank.NewZigZag(src)
	return &Index{tree: ziptree.NewWithHook[uint32, Bin, rank.ZigZagRank](scheme, updateBin)}
}

func bestOf(n *ffNode) EpsFloat {
	if n == nil {
		return 0
	}
	return n.Payload().BestRemainingCapacity
}

// updateBin is the node hook: it recomputes bestRemainingCapacity from the
// node's own remaining capacity and its children's best, per the
// augmentation law (spec property 6) and ZipTreeFF::updateNode.
func updateBin(n *ffNode) {
	p := n.Payload()
	p.BestRemainingCapacity = Max(p.RemainingCapacity, Max(bestOf(n.Left()), bestOf(n.Right())))
}

// Size returns the number of bins opened so far.
func (idx *Index) Size() int {
	return idx.tree.Size()
}

// InsertFirst assigns item weight to the leftmost (oldest) open bin with
// enough remaining capacity, opening a new bin if none qualifies, and
// returns that bin's ID.
func (idx *Index) InsertFirst(weight EpsFloat) uint32 {
	root := idx.tree.Root()
	if bestOf(root).LT(weight) {
		binID := uint32(idx.tree.Size() + 1)
		remaining := BinCapacity.Sub(weight)
		idx.tree.Insert(binID, Bin{RemainingCapacity: remaining, BestRemainingCapacity: remaining})
		return binID
	}
	return idx.insertIntoSubtree(root, weight)
}

// insertIntoSubtree descends to the leftmost bin with enough capacity,
// deducts weight from it, and re-runs the hook on every ancestor on the way
// back up, mirroring ZipTreeFF::insertFirstSubtree.
func (idx *Index) insertIntoSubtree(n *ffNode, weight EpsFloat) uint32 {
	var binID uint32

	switch left := n.Left(); {
	case bestOf(left).GTE(weight):
		binID = idx.insertIntoSubtree(left, weight)
	case n.Payload().RemainingCapacity.GTE(weight):
		n.Payload().RemainingCapacity = n.Payload().RemainingCapacity.Sub(weight)
		binID = n.Key()
	default:
		binID = idx.insertIntoSubtree(n.Right(), weight)
	}

	idx.tree.ApplyHook(n)
	return binID
}
