//go:build amd64 && goexperiment.simd && !purego

package avx2

import (
	"simd/archsimd"

	"github.com/cwbudde/algo-range/minmax/internal/arch/generic"
)

// Range returns the minimum and maximum of x using 8-wide float32 vectors
// over exact chunks, finishing the remainder with the scalar fold.
//
// Lanes update through compare-and-merge rather than VMINPS/VMAXPS, which
// return their second operand when either input is NaN. A NaN sample then
// leaves the lane unchanged, the same as the scalar fold.
//
// The caller must ensure the CPU supports AVX2. Nothing in this package
// touches a vector register before Range is called.
func Range(x []float32) (minVal, maxVal float32) {
	lo, hi := generic.Identity()
	vMin := archsimd.BroadcastFloat32x8(lo)
	vMax := archsimd.BroadcastFloat32x8(hi)

	n := len(x) - len(x)%Width
	for i := 0; i < n; i += Width {
		v := archsimd.LoadFloat32x8Slice(x[i : i+Width])
		vMin = v.Merge(vMin, v.Less(vMin))
		vMax = v.Merge(vMax, v.Greater(vMax))
	}

	var mins, maxs [Width]float32
	vMin.StoreSlice(mins[:])
	vMax.StoreSlice(maxs[:])

	minVal, maxVal = generic.ReduceLanes(mins[:], maxs[:])
	minVal, maxVal = generic.Fold(x[n:], minVal, maxVal)

	return generic.CanonicalZeros(minVal, maxVal)
}

func rangeAVX2(x []float32, _ int) (float32, float32) {
	return Range(x)
}
