// Package generic holds the pure Go range kernels: a sequential scalar
// fold and lane-array folds shaped for compiler auto-vectorization.
package generic

import "math"

var (
	posInf = float32(math.Inf(1))
	negInf = float32(math.Inf(-1))
)

// Identity returns the fold identities (+Inf, -Inf). They are also the
// result for an empty input.
func Identity() (minVal, maxVal float32) {
	return posInf, negInf
}

// Scalar returns the minimum and maximum of x with a single accumulator
// pair. NaN values never compare less or greater and are skipped.
func Scalar(x []float32) (minVal, maxVal float32) {
	minVal, maxVal = Fold(x, posInf, negInf)
	return CanonicalZeros(minVal, maxVal)
}

// Fold continues a scalar min/max fold over x from the given accumulators.
// Vector kernels use it for their head and tail remainders.
func Fold(x []float32, minVal, maxVal float32) (float32, float32) {
	for _, v := range x {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal
}

// CanonicalZeros returns a zero extreme as +0. Ordered comparison treats -0
// and +0 as equal, so which zero a fold keeps depends on its traversal
// order; settling the sign makes every kernel return the same bits.
// Every kernel passes its final result through here.
func CanonicalZeros(minVal, maxVal float32) (float32, float32) {
	if minVal == 0 {
		minVal = 0
	}
	if maxVal == 0 {
		maxVal = 0
	}
	return minVal, maxVal
}

func rangeScalar(x []float32, _ int) (float32, float32) {
	return Scalar(x)
}
