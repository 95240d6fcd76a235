package minmax

import (
	"github.com/cwbudde/algo-range/minmax/internal/arch/generic"
	"github.com/cwbudde/algo-range/minmax/internal/arch/portable"
)

// Func is the shared signature of every range strategy.
type Func func(x []float32) (minVal, maxVal float32)

// Range returns the minimum and maximum of x using the best strategy
// available on this CPU.
func Range(x []float32) (minVal, maxVal float32) {
	rangeInitOnce.Do(initRangeKernel)
	return rangeImpl(x, rangeWidth)
}

// RangeScalar returns the minimum and maximum of x with a sequential fold.
func RangeScalar(x []float32) (minVal, maxVal float32) {
	return generic.Scalar(x)
}

// RangeLanes returns the minimum and maximum of x with LaneWidth()
// independent accumulator lanes.
func RangeLanes(x []float32) (minVal, maxVal float32) {
	return generic.Lanes(x, LaneWidth())
}

// RangePortable returns the minimum and maximum of x with the vector target
// chosen at startup: AVX-512, AVX2 or NEON, or a scalar fallback.
func RangePortable(x []float32) (minVal, maxVal float32) {
	return portable.Range(x)
}

// RangeIntrinsic returns the minimum and maximum of x with explicit AVX2
// instructions.
//
// When the AVX2 kernel is not compiled in or the CPU lacks AVX2, it falls
// back to Range and logs a warning once.
func RangeIntrinsic(x []float32) (minVal, maxVal float32) {
	intrinsicInitOnce.Do(initIntrinsicKernel)
	if intrinsicImpl == nil {
		return Range(x)
	}
	return intrinsicImpl(x, intrinsicWidth)
}
