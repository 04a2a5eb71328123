package rank

import (
	"math/bits"

	"golang.org/x/exp/rand"

	"github.com/ogurtsovandrei/randztree/counters"
)

// GeometricUniformRank is the (g, u) lexicographic rank used by the
// geometric×uniform Zip-Zip Tree: g ~ Geom(1/2), u ~ Uniform{0, ..., (log2 n)^3}.
type GeometricUniformRank struct {
	G uint8
	U uint64
}

// ZipZipGU draws (g, u) ranks for the geometric×uniform Zip-Zip Tree.
// FreshForSize computes the uniform bound from a caller-supplied size n the
// way original_source/src/ZipZipTree.h computes _maxURank from
// log2(maxSize). Fresh, the method the tree engine calls, does not know the
// tree's size and always uses n=0 (see FreshForSize).
type ZipZipGU struct {
	rng *rand.Rand
}

// NewZipZipGU builds a geometric×uniform Zip-Zip scheme.
func NewZipZipGU(src *rand.Rand) *ZipZipGU {
	if src == nil {
		src = rand.New(rand.NewSource(uint64(rand.Int63())))
	}
	return &ZipZipGU{rng: src}
}

// uBoundForSize returns (log2 n)^3, the uniform rank's upper bound for a
// tree currently holding n keys.
func uBoundForSize(n uint64) uint64 {
	if n < 2 {
		return 0
	}
	logN := uint64(bits.Len64(n) - 1)
	return logN * logN * logN
}

// FreshForSize draws a rank appropriate for a tree currently holding n keys.
// Fresh delegates here with n=0, so every rank drawn through Fresh has
// u = 0: two such ranks with equal g also tie on u, and Compare reports
// them as equal.
func (s *ZipZipGU) FreshForSize(n uint64, _ *counters.Counters) GeometricUniformRank {
	bound := uBoundForSize(n)
	u := uint64(0)
	if bound > 0 {
		u = s.rng.Uint64() % (bound + 1)
	}
	return GeometricUniformRank{G: sampleGeometricByte(s.rng), U: u}
}

func (s *ZipZipGU) Fresh(c *counters.Counters) GeometricUniformRank {
	return s.FreshForSize(0, c)
}

func (s *ZipZipGU) Compare(a, b *GeometricUniformRank, c *counters.Counters) int {
	c.TotalComparisons++
	if a.G != b.G {
		if a.G < b.G {
			return -1
		}
		return 1
	}
	c.FirstTies++
	if a.U != b.U {
		if a.U < b.U {
			return -1
		}
		return 1
	}
	c.BothTies++
	return 0
}

func (s *ZipZipGU) TieBreak(_, _ *GeometricUniformRank, descendingLeft bool) bool {
	return keyOrderTieBreak(descendingLeft)
}

func (s *ZipZipGU) ZipTieBreak(_, _ *GeometricUniformRank) bool {
	return keyOrderZipTieBreak()
}

// GeometricGeometricRank is the (g1, g2) lexicographic rank used by the
// geometric×geometric Zip-Zip Tree.
type GeometricGeometricRank struct {
	G1, G2 uint8
}

// ZipZipGG draws (g1, g2) ranks for the geometric×geometric Zip-Zip Tree.
type ZipZipGG struct {
	rng *rand.Rand
}

// NewZipZipGG builds a geometric×geometric Zip-Zip scheme.
func NewZipZipGG(src *rand.Rand) *ZipZipGG {
	if src == nil {
		src = rand.New(rand.NewSource(uint64(rand.Int63())))
	}
	return &ZipZipGG{rng: src}
}

func (s *ZipZipGG) Fresh(_ *counters.Counters) GeometricGeometricRank {
	return GeometricGeometricRank{G1: sampleGeometricByte(s.rng), G2: sampleGeometricByte(s.rng)}
}

func (s *ZipZipGG) Compare(a, b *GeometricGeometricRank, c *counters.Counters) int {
	c.TotalComparisons++
	if a.G1 != b.G1 {
		if a.G1 < b.G1 {
			return -1
		}
		return 1
	}
	c.FirstTies++
	if a.G2 != b.G2 {
		if a.G2 < b.G2 {
			return -1
		}
		return 1
	}
	c.BothTies++
	return 0
}

func (s *ZipZipGG) TieBreak(_, _ *GeometricGeometricRank, descendingLeft bool) bool {
	return keyOrderTieBreak(descendingLeft)
}

func (s *ZipZipGG) ZipTieBreak(_, _ *GeometricGeometricRank) bool {
	return keyOrderZipTieBreak()
}
