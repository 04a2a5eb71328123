// Package firstfit implements the augmented Zip Tree bin-packing index and
// the first-fit / first-fit-decreasing drivers built on top of it, grounded
// on original_source/src/ZipTreeFF.{h,cpp}, first_fit.{h,cpp}, and cdouble.{h,cpp}.
package firstfit

import "math"

// epsilonThreshold is the tolerance used for every capacity comparison,
// matching CDouble::EQ_THRESHOLD = numeric_limits<double>::epsilon().
const epsilonThreshold = 2.220446049250313e-16

// BinCapacity is the fixed capacity of every bin.
const BinCapacity EpsFloat = 1.0

// EpsFloat is an epsilon-tolerant float64: comparisons accept a residue of
// up to epsilonThreshold so floating-point noise can't spuriously open a
// new bin or spuriously fail to.
type EpsFloat float64

// GTE reports a >= b, tolerating a shortfall of up to epsilonThreshold.
func (a EpsFloat) GTE(b EpsFloat) bool {
	return float64(a) >= float64(b)-epsilonThreshold
}

// LT reports a < b, requiring a shortfall beyond epsilonThreshold.
func (a EpsFloat) LT(b EpsFloat) bool {
	return float64(a) < float64(b)-epsilonThreshold
}

// Eq reports whether a and b are within epsilonThreshold of each other.
func (a EpsFloat) Eq(b EpsFloat) bool {
	return math.Abs(float64(a)-float64(b)) <= epsilonThreshold
}

// Sub returns a-b, clamped at zero. original_source's CDouble::operator-
// does not clamp, which the design notes flag as a bug: a bin reaching
// exactly zero free space can go microscopically negative, which would
// make bestRemainingCapacity non-monotone under the augmentation law. We
// clamp here instead.
func (a EpsFloat) Sub(b EpsFloat) EpsFloat {
	r := a - b
	if r < 0 {
		return 0
	}
	return r
}

// Max returns the larger of a and b.
func Max(a, b EpsFloat) EpsFloat {
	if a > b {
		return a
	}
	return b
}
