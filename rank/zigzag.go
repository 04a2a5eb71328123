package rank

import (
	"golang.org/x/exp/rand"

	"github.com/ogurtsovandrei/randztree/counters"
)

// ZigZagRank is a single geometric byte; unlike every other scheme, its
// order is not a pure ordering on that byte alone. Ties are broken by the
// direction of descent and the byte's own parity
// (original_source/src/ZigZagZipTree.h, drawn from the 2019 Tarjan et al.
// pseudocode per spec.md §9's design note on the zig-zag parity rule).
type ZigZagRank struct {
	G uint8
}

// ZigZag draws g ~ Geom(1/2) ranks for the Zig-Zag Zip Tree.
type ZigZag struct {
	rng *rand.Rand
}

// NewZigZag builds a Zig-Zag scheme over the given source.
func NewZigZag(src *rand.Rand) *ZigZag {
	if src == nil {
		src = rand.New(rand.NewSource(uint64(rand.Int63())))
	}
	return &ZigZag{rng: src}
}

func (s *ZigZag) Fresh(_ *counters.Counters) ZigZagRank {
	return ZigZagRank{G: sampleGeometricByte(s.rng)}
}

func (s *ZigZag) Compare(a, b *ZigZagRank, c *counters.Counters) int {
	c.TotalComparisons++
	if a.G == b.G {
		c.FirstTies++
		return 0
	}
	if a.G < b.G {
		return -1
	}
	return 1
}

// TieBreak implements: descending left, promote (the new node takes this
// position) when the tied g is even; descending right, promote when it's
// odd.
func (s *ZigZag) TieBreak(newRank, _ *ZigZagRank, descendingLeft bool) bool {
	even := newRank.G%2 == 0
	if descendingLeft {
		return even
	}
	return !even
}

// ZipTieBreak implements the symmetric zip rule: y becomes the merged
// root on an exact tie when the tied g is odd.
func (s *ZigZag) ZipTieBreak(x, _ *ZigZagRank) bool {
	return x.G%2 == 1
}
