// Package counters holds the tie-counter block threaded through rank
// comparisons.
package counters

// Counters is owned by a single tree and passed by pointer into every rank
// comparison. It is never embedded in a rank value, so rank values stay
// portable across trees.
type Counters struct {
	TotalComparisons uint64
	FirstTies        uint64
	BothTies         uint64
}

// Add folds another counter block into this one, e.g. after merging the
// measurements of several independent runs.
func (c *Counters) Add(other Counters) {
	c.TotalComparisons += other.TotalComparisons
	c.FirstTies += other.FirstTies
	c.BothTies += other.BothTies
}
