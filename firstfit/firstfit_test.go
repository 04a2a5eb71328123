package firstfit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func toEps(xs []float64) []EpsFloat {
	out := make([]EpsFloat, len(xs))
	for i, x := range xs {
		out[i] = EpsFloat(x)
	}
	return out
}

func toU32(xs []int) []uint32 {
	out := make([]uint32, len(xs))
	for i, x := range xs {
		out[i] = uint32(x)
	}
	return out
}

func requireFreeSpaceApprox(t *testing.T, want, got []EpsFloat) {
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, float64(want[i]), float64(got[i]), 1e-9, "freeSpace[%d]", i)
	}
}

func TestFirstFitSample1(t *testing.T) {
	items := toEps([]float64{0.1, 0.8, 0.3, 0.5, 0.7, 0.2, 0.6, 0.4})
	assignment, freeSpace := FirstFit(items)

	require.Equal(t, toU32([]int{1, 1, 2, 2, 3, 2, 4, 4}), assignment)
	requireFreeSpaceApprox(t, toEps([]float64{0.1, 0.0, 0.3, 0.0}), freeSpace)
}

func TestFirstFitDecreasingSample1(t *testing.T) {
	items := toEps([]float64{0.1, 0.8, 0.3, 0.5, 0.7, 0.2, 0.6, 0.4})
	_, assignment, freeSpace := FirstFitDecreasing(items)

	require.Equal(t, toU32([]int{1, 2, 3, 4, 3, 2, 1, 4}), assignment)
	requireFreeSpaceApprox(t, toEps([]float64{0.0, 0.0, 0.0, 0.4}), freeSpace)
}

func TestFirstFitSample2(t *testing.T) {
	items := toEps([]float64{0.79, 0.88, 0.95, 0.12, 0.05, 0.46, 0.53, 0.64, 0.04, 0.38, 0.03, 0.26})
	assignment, freeSpace := FirstFit(items)

	require.Equal(t, toU32([]int{1, 2, 3, 1, 1, 4, 4, 5, 1, 6, 2, 5}), assignment)
	requireFreeSpaceApprox(t, toEps([]float64{0, 0.09, 0.05, 0.01, 0.1, 0.62}), freeSpace)
}

func TestFirstFitSample3(t *testing.T) {
	items := toEps([]float64{0.43, 0.75, 0.25, 0.42, 0.54, 0.03, 0.64})
	assignment, freeSpace := FirstFit(items)

	require.Equal(t, toU32([]int{1, 2, 1, 3, 3, 1, 4}), assignment)
	requireFreeSpaceApprox(t, toEps([]float64{0.29, 0.25, 0.04, 0.36}), freeSpace)
}

func TestFirstFitDecreasingSample3(t *testing.T) {
	items := toEps([]float64{0.43, 0.75, 0.25, 0.42, 0.54, 0.03, 0.64})
	_, assignment, freeSpace := FirstFitDecreasing(items)

	require.Equal(t, toU32([]int{1, 2, 3, 3, 4, 1, 2}), assignment)
	requireFreeSpaceApprox(t, toEps([]float64{0, 0.33, 0.03, 0.58}), freeSpace)
}

// classicalFirstFit is a direct, unaugmented reference implementation
// (linear scan instead of a tree index) used to check the tree-backed
// Index against the textbook algorithm, per spec property 7.
func classicalFirstFit(items []EpsFloat) (assignment []uint32, freeSpace []EpsFloat) {
	assignment = make([]uint32, len(items))
	for i, item := range items {
		placed := false
		for b := range freeSpace {
			if freeSpace[b].GTE(item) {
				freeSpace[b] = freeSpace[b].Sub(item)
				assignment[i] = uint32(b + 1)
				placed = true
				break
			}
		}
		if !placed {
			freeSpace = append(freeSpace, BinCapacity.Sub(item))
			assignment[i] = uint32(len(freeSpace))
		}
	}
	return assignment, freeSpace
}

func TestFirstFitMatchesClassicalReference(t *testing.T) {
	sequences := [][]float64{
		{0.1, 0.8, 0.3, 0.5, 0.7, 0.2, 0.6, 0.4},
		{0.79, 0.88, 0.95, 0.12, 0.05, 0.46, 0.53, 0.64, 0.04, 0.38, 0.03, 0.26},
		{0.43, 0.75, 0.25, 0.42, 0.54, 0.03, 0.64},
		{0.99, 0.01, 0.01, 0.01, 0.97, 0.5, 0.5, 0.5, 0.5},
	}

	for _, seq := range sequences {
		items := toEps(seq)
		wantAssignment, wantFree := classicalFirstFit(items)
		gotAssignment, gotFree := FirstFit(items)

		require.Equal(t, wantAssignment, gotAssignment)
		requireFreeSpaceApprox(t, wantFree, gotFree)
	}
}

func TestAugmentationLawHoldsAfterManyInserts(t *testing.T) {
	idx := NewIndex(nil)
	for i := 0; i < 500; i++ {
		idx.InsertFirst(EpsFloat(0.01 * float64(i%90+1)))
	}

	var check func(n *ffNode)
	check = func(n *ffNode) {
		if n == nil {
			return
		}
		want := Max(n.Payload().RemainingCapacity, Max(bestOf(n.Left()), bestOf(n.Right())))
		require.InDelta(t, float64(want), float64(n.Payload().BestRemainingCapacity), 1e-12)
		check(n.Left())
		check(n.Right())
	}
	check(idx.tree.Root())
}
