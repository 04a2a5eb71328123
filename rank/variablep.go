package rank

import (
	"golang.org/x/exp/rand"

	"github.com/ogurtsovandrei/randztree/counters"
)

// variablePBitCap bounds how many failed trials VariableP will sample
// before giving up and returning the cap, keeping a pathologically small p
// from looping effectively forever.
const variablePBitCap = 1 << 20

// VariableRank is a rank drawn from a geometric distribution whose success
// probability is supplied by the caller rather than fixed at 1/2.
type VariableRank struct {
	G uint64
}

// VariableP draws ranks from Geom(p) for a caller-chosen p, per
// original_source/src/ZipTreeVariableP.h. Smaller p stretches the expected
// rank (and so the expected height) of the tree; p=1/2 recovers the
// classical zip tree's distribution.
type VariableP struct {
	rng *rand.Rand
	p   float64
}

// NewVariableP builds a VariableP scheme with success probability p, where
// 0 < p <= 1. A nil source seeds a fresh one.
func NewVariableP(src *rand.Rand, p float64) *VariableP {
	if src == nil {
		src = rand.New(rand.NewSource(uint64(rand.Int63())))
	}
	if p <= 0 || p > 1 {
		panic("rank: VariableP requires 0 < p <= 1")
	}
	return &VariableP{rng: src, p: p}
}

func (s *VariableP) Fresh(_ *counters.Counters) VariableRank {
	var g uint64
	for s.rng.Float64() >= s.p {
		g++
		if g == variablePBitCap {
			break
		}
	}
	return VariableRank{G: g}
}

func (s *VariableP) Compare(a, b *VariableRank, c *counters.Counters) int {
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

func (s *VariableP) TieBreak(_, _ *VariableRank, descendingLeft bool) bool {
	return keyOrderTieBreak(descendingLeft)
}

func (s *VariableP) ZipTieBreak(_, _ *VariableRank) bool {
	return keyOrderZipTieBreak()
}
