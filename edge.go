package fusionrate

import "math"

// zeroSlope is the derivative reported at an exactly zero input: the
// smallest positive float64. The true one-sided limit is positive but
// below any representable normal number; reporting an exact zero would
// tell a gradient-based caller that the origin is stationary, which it
// is not.
const zeroSlope = math.SmallestNonzeroFloat64

// numClass buckets a numeric input under the edge-case policy.
type numClass int

const (
	numInvalid numClass = iota // negative, infinite, or NaN
	numZero
	numPositive // positive and finite
)

func classify(v float64) numClass {
	switch {
	case v > 0 && !math.IsInf(v, 1):
		return numPositive
	case v == 0:
		return numZero
	default:
		return numInvalid
	}
}

// pairClassify merges the classes of a temperature pair: any invalid
// component poisons the pair, then any zero component zeroes it.
func pairClassify(a, b float64) numClass {
	ca, cb := classify(a), classify(b)
	switch {
	case ca == numInvalid || cb == numInvalid:
		return numInvalid
	case ca == numZero || cb == numZero:
		return numZero
	default:
		return numPositive
	}
}
