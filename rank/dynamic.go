package rank

import (
	"golang.org/x/exp/rand"

	"github.com/ogurtsovandrei/randztree/counters"
)

// DynamicRank is (g, u-so-far): a full geometric byte sampled once at
// Fresh, plus a secondary uniform-flavored bit string u that starts empty
// and is extended only as far as Compare actually needs it to break a tie
// on g, MSB first. Per original_source/src/DynamicZipTree3.h's
// GeometricDynamicUniformRank, each rank's u only ever grows; it is never
// regenerated from scratch, so the same rank compared against two
// different siblings at different tree depths reuses whatever prefix it
// already committed to.
type DynamicRank struct {
	G     uint8
	UBits []bool
}

// Dynamic draws DynamicRank values and tracks how many random bits were
// actually spent, the measurements spec.md's dynamic-variant extras ask
// for: MaxGeometricBits/TotalGeometricBits (coin flips spent sampling g)
// and MaxUniformBits/TotalUniformBits (bits appended to some rank's u).
type Dynamic struct {
	rng *rand.Rand

	maxGeometricBits   uint64
	totalGeometricBits uint64
	maxUniformBits     uint64
	totalUniformBits   uint64
}

// NewDynamic builds a Dynamic scheme over the given source. The scheme
// holds no per-tree state, so its rank values can move between trees, but
// the *rand.Rand it draws from is not safe for concurrent use by two trees
// at once.
func NewDynamic(src *rand.Rand) *Dynamic {
	if src == nil {
		src = rand.New(rand.NewSource(uint64(rand.Int63())))
	}
	return &Dynamic{rng: src}
}

// DynamicMetrics snapshots the bit-usage measurements accumulated so far.
type DynamicMetrics struct {
	MaxGeometricBits   uint64
	TotalGeometricBits uint64
	MaxUniformBits     uint64
	TotalUniformBits   uint64
}

// Metrics returns the scheme's accumulated bit-usage measurements.
func (s *Dynamic) Metrics() DynamicMetrics {
	return DynamicMetrics{
		MaxGeometricBits:   s.maxGeometricBits,
		TotalGeometricBits: s.totalGeometricBits,
		MaxUniformBits:     s.maxUniformBits,
		TotalUniformBits:   s.totalUniformBits,
	}
}

// Fresh draws g by counting the coin flips it took (a geometric sample of
// g itself costs g+1 fair-coin draws) and starts u empty.
func (s *Dynamic) Fresh(_ *counters.Counters) DynamicRank {
	var g uint8
	flips := uint64(1)
	for s.rng.Intn(2) == 0 {
		g++
		flips++
		if g == 255 {
			break
		}
	}
	s.totalGeometricBits += flips
	if flips > s.maxGeometricBits {
		s.maxGeometricBits = flips
	}
	return DynamicRank{G: g}
}

func (s *Dynamic) nextUBit() bool {
	return s.rng.Intn(2) == 1
}

func (s *Dynamic) touchUniform(r *DynamicRank) {
	n := uint64(len(r.UBits))
	if n > s.maxUniformBits {
		s.maxUniformBits = n
	}
}

// Compare returns by g if it differs. Otherwise it compares a and b's
// already-committed u prefixes; if those already disagree, no randomness
// is spent. Only once the shared prefix is exhausted does it draw fresh
// bits, first to catch the shorter rank's u up to the longer one's
// length (checking for an early decision at each new bit), then, if both
// are still tied once equal length, extending both by one bit at a time
// until one differs.
func (s *Dynamic) Compare(a, b *DynamicRank, c *counters.Counters) int {
	c.TotalComparisons++

	if a.G != b.G {
		if a.G < b.G {
			return -1
		}
		return 1
	}
	c.FirstTies++

	minLen := len(a.UBits)
	if len(b.UBits) < minLen {
		minLen = len(b.UBits)
	}
	for i := 0; i < minLen; i++ {
		if a.UBits[i] != b.UBits[i] {
			return boolCmp(a.UBits[i], b.UBits[i])
		}
	}

	for len(a.UBits) < len(b.UBits) {
		bit := s.nextUBit()
		a.UBits = append(a.UBits, bit)
		i := len(a.UBits) - 1
		s.totalUniformBits++
		if bit != b.UBits[i] {
			s.touchUniform(a)
			return boolCmp(bit, b.UBits[i])
		}
	}
	for len(b.UBits) < len(a.UBits) {
		bit := s.nextUBit()
		b.UBits = append(b.UBits, bit)
		i := len(b.UBits) - 1
		s.totalUniformBits++
		if a.UBits[i] != bit {
			s.touchUniform(b)
			return boolCmp(a.UBits[i], bit)
		}
	}
	s.touchUniform(a)
	s.touchUniform(b)

	for {
		c.BothTies++
		ba, bb := s.nextUBit(), s.nextUBit()
		a.UBits = append(a.UBits, ba)
		b.UBits = append(b.UBits, bb)
		s.totalUniformBits += 2
		s.touchUniform(a)
		s.touchUniform(b)
		if ba != bb {
			return boolCmp(ba, bb)
		}
	}
}

func boolCmp(a, b bool) int {
	if a == b {
		return 0
	}
	if !a && b {
		return -1
	}
	return 1
}

func (s *Dynamic) TieBreak(_, _ *DynamicRank, descendingLeft bool) bool {
	return keyOrderTieBreak(descendingLeft)
}

func (s *Dynamic) ZipTieBreak(_, _ *DynamicRank) bool {
	return keyOrderZipTieBreak()
}
