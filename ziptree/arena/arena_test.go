package arena

import (
	"sort"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/ogurtsovandrei/randztree/counters"
	"github.com/ogurtsovandrei/randztree/rank"
)

func newTree(seed uint64, n int) *Tree[int, int, rank.GeometricRank] {
	scheme := rank.NewGeometric(rand.New(rand.NewSource(seed)))
	return New[int, int, rank.GeometricRank](scheme, n)
}

func inorder(t *Tree[int, int, rank.GeometricRank], idx Index, out *[]int) {
	if idx == NullIndex {
		return
	}
	inorder(t, t.Left(idx), out)
	*out = append(*out, t.Key(idx))
	inorder(t, t.Right(idx), out)
}

func checkArenaRankHeap(t *testing.T, tr *Tree[int, int, rank.GeometricRank], scheme rank.Scheme[rank.GeometricRank], idx Index) {
	if idx == NullIndex {
		return
	}
	var c counters.Counters
	if l := tr.Left(idx); l != NullIndex {
		require.Negative(t, scheme.Compare(tr.Rank(l), tr.Rank(idx), &c), "left child must have strictly smaller rank")
		checkArenaRankHeap(t, tr, scheme, l)
	}
	if r := tr.Right(idx); r != NullIndex {
		require.LessOrEqual(t, scheme.Compare(tr.Rank(r), tr.Rank(idx), &c), 0, "right child must have non-strictly smaller rank")
		checkArenaRankHeap(t, tr, scheme, r)
	}
}

func TestArenaInsertMaintainsRankHeap(t *testing.T) {
	seed := uint64(5)
	scheme := rank.NewGeometric(rand.New(rand.NewSource(seed)))
	tr := New[int, int, rank.GeometricRank](scheme, 500)
	checkScheme := rank.NewGeometric(rand.New(rand.NewSource(seed)))
	for i := 0; i < 500; i++ {
		tr.Insert(i, i)
	}
	checkArenaRankHeap(t, tr, checkScheme, tr.Root())
}

func TestArenaInsertFindSearchOrder(t *testing.T) {
	tr := newTree(1, 10)
	keys := []int{50, 30, 70, 20, 40, 60, 80, 10, 90, 35}
	for _, k := range keys {
		tr.Insert(k, k*10)
	}

	for _, k := range keys {
		require.True(t, tr.Find(k))
	}
	require.False(t, tr.Find(999))

	var got []int
	inorder(tr, tr.Root(), &got)
	want := append([]int(nil), keys...)
	sort.Ints(want)
	require.Equal(t, want, got)
}

func TestArenaSizeTracksInsertions(t *testing.T) {
	tr := newTree(2, 100)
	for i := 0; i < 100; i++ {
		tr.Insert(i, i)
	}
	require.Equal(t, 100, tr.Size())
}

func TestArenaPayloadRoundTrips(t *testing.T) {
	tr := newTree(3, 10)
	idx := tr.Insert(7, 700)
	require.Equal(t, 700, *tr.Payload(idx))
	*tr.Payload(idx) = 999
	require.Equal(t, 999, *tr.Payload(idx))
}

func TestArenaDepthAndHeight(t *testing.T) {
	tr := newTree(4, 0)
	_, ok := tr.Depth(5)
	require.False(t, ok)
	require.Equal(t, -1, tr.Height())
	_, hasAvg := tr.AverageDepth()
	require.False(t, hasAvg)

	keys := []int{50, 30, 70, 20, 40, 60, 80}
	for _, k := range keys {
		tr.Insert(k, k)
	}

	maxDepth := -1
	for _, k := range keys {
		d, found := tr.Depth(k)
		require.True(t, found)
		if d > maxDepth {
			maxDepth = d
		}
	}
	require.Equal(t, maxDepth, tr.Height())

	avg, hasAvg := tr.AverageDepth()
	require.True(t, hasAvg)
	require.GreaterOrEqual(t, avg, 0.0)
}

func TestArenaFindAgreesWithReferenceSet(t *testing.T) {
	f := func(xs []int16) bool {
		tr := newTree(11, len(xs))
		present := map[int]bool{}
		for _, x := range xs {
			k := int(x)
			if present[k] {
				continue
			}
			present[k] = true
			tr.Insert(k, k)
		}
		for k, want := range present {
			if tr.Find(k) != want {
				return false
			}
		}
		return true
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 200}))
}
