package rank

import (
	"golang.org/x/exp/rand"

	"github.com/ogurtsovandrei/randztree/counters"
)

// UniformRank is a single 64-bit value drawn uniformly from {0, ..., max}.
// This is also the rank used for a classical Treap: a Treap is a zip tree
// whose ranks are drawn uniformly rather than geometrically, with no other
// change to the insert/delete algorithm.
type UniformRank struct {
	U uint64
}

// Uniform draws ranks uniformly over {0, ..., Max}. Max should be n^3
// clipped to the uint64 range, per the scheme table in spec.md §4.1; use
// NewUniform to compute that clip from an expected tree size.
type Uniform struct {
	rng *rand.Rand
	max uint64
}

// NewUniform builds a Uniform scheme whose ranks are drawn from
// {0, ..., max}.
func NewUniform(src *rand.Rand, max uint64) *Uniform {
	if src == nil {
		src = rand.New(rand.NewSource(uint64(rand.Int63())))
	}
	return &Uniform{rng: src, max: max}
}

// NewUniformForSize computes max = n^3 clipped at 2^64-1, the bound
// spec.md's table prescribes for a tree expected to hold n keys.
func NewUniformForSize(src *rand.Rand, n uint64) *Uniform {
	return NewUniform(src, cubeClipped(n))
}

func cubeClipped(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	const maxU64 = ^uint64(0)
	if n > 2642245 { // n^3 would already overflow uint64 near this point
		return maxU64
	}
	sq := n * n
	if sq > maxU64/n {
		return maxU64
	}
	return sq * n
}

func (s *Uniform) Fresh(_ *counters.Counters) UniformRank {
	if s.max == ^uint64(0) {
		return UniformRank{U: s.rng.Uint64()}
	}
	if s.max == 0 {
		return UniformRank{U: 0}
	}
	return UniformRank{U: s.rng.Uint64() % (s.max + 1)}
}

func (s *Uniform) Compare(a, b *UniformRank, c *counters.Counters) int {
	c.TotalComparisons++
	if a.U == b.U {
		c.FirstTies++
		return 0
	}
	if a.U < b.U {
		return -1
	}
	return 1
}

func (s *Uniform) TieBreak(_, _ *UniformRank, descendingLeft bool) bool {
	return keyOrderTieBreak(descendingLeft)
}

func (s *Uniform) ZipTieBreak(_, _ *UniformRank) bool {
	return keyOrderZipTieBreak()
}
