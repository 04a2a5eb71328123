package rank

import (
	"golang.org/x/exp/rand"

	"github.com/ogurtsovandrei/randztree/counters"
)

// GeometricRank is a single byte drawn from Geom(1/2): the number of leading
// zero coin flips before the first one.
type GeometricRank struct {
	G uint8
}

// Geometric is the classic zip-tree rank scheme.
type Geometric struct {
	rng *rand.Rand
}

// NewGeometric builds a Geometric scheme over the given source. A nil source
// seeds a fresh one from the process-wide entropy; pass an explicit,
// separately-seeded *rand.Rand when a test needs a deterministic tree.
func NewGeometric(src *rand.Rand) *Geometric {
	if src == nil {
		src = rand.New(rand.NewSource(uint64(rand.Int63())))
	}
	return &Geometric{rng: src}
}

func sampleGeometricByte(rng *rand.Rand) uint8 {
	var g uint8
	for rng.Intn(2) == 0 {
		g++
		if g == 255 {
			break
		}
	}
	return g
}

func (s *Geometric) Fresh(_ *counters.Counters) GeometricRank {
	return GeometricRank{G: sampleGeometricByte(s.rng)}
}

func (s *Geometric) Compare(a, b *GeometricRank, c *counters.Counters) int {
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

func (s *Geometric) TieBreak(_, _ *GeometricRank, descendingLeft bool) bool {
	return keyOrderTieBreak(descendingLeft)
}

func (s *Geometric) ZipTieBreak(_, _ *GeometricRank) bool {
	return keyOrderZipTieBreak()
}
