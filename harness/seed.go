// Package harness supplies the research-experiment scaffolding spec.md §6
// alludes to (seed derivation and CSV persistence) without pulling it into
// the tree engine itself, in the spirit of
// Thesis/utils/stats_collector.go's file-backed stats logger.
package harness

import "github.com/zeebo/xxh3"

// Seed derives a deterministic 64-bit PRNG seed from a human-readable
// label (e.g. "zipzip-gu/n=100000/trial=3"), so an experiment run can be
// reproduced exactly by re-deriving the same seed from the same label,
// the same way Thesis/bits/*_bit_string.go derives a Hash() from content
// via a streaming xxh3 hasher rather than rolling its own mixing function.
func Seed(label string) uint64 {
	h := xxh3.New()
	h.Write([]byte(label))
	return h.Sum64()
}
