package firstfit

import (
	"golang.org/x/exp/slices"
)

// FirstFit assigns each item (in order) to the leftmost bin with enough
// remaining capacity, opening a new bin when none fits, per
// original_source/src/first_fit.cpp. It returns, for each item, the bin ID
// it was assigned to, and the remaining free space of each opened bin.
func FirstFit(items []EpsFloat) (assignment []uint32, freeSpace []EpsFloat) {
	idx := NewIndex(nil)
	assignment = make([]uint32, len(items))

	for i, item := range items {
		binsBefore := idx.Size()
		bin := idx.InsertFirst(item)
		assignment[i] = bin

		if int(bin) == binsBefore+1 {
			freeSpace = append(freeSpace, BinCapacity.Sub(item))
		} else {
			freeSpace[bin-1] = freeSpace[bin-1].Sub(item)
		}
	}

	return assignment, freeSpace
}

// FirstFitDecreasing sorts a copy of items by decreasing weight and runs
// FirstFit over that order, per first_fit_decreasing. The returned
// assignment and freeSpace are relative to the returned sortedItems order,
// not the caller's original order. Callers that need the original index
// must track the permutation themselves.
func FirstFitDecreasing(items []EpsFloat) (sortedItems []EpsFloat, assignment []uint32, freeSpace []EpsFloat) {
	sortedItems = append([]EpsFloat(nil), items...)
	slices.SortFunc(sortedItems, func(a, b EpsFloat) bool { return a > b })
	assignment, freeSpace = FirstFit(sortedItems)
	return sortedItems, assignment, freeSpace
}
