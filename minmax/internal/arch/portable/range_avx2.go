//go:build amd64 && goexperiment.simd && !purego

package portable

import (
	"simd/archsimd"

	"github.com/cwbudde/algo-range/minmax/internal/arch/generic"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var avx2Target = target{
	name:     "avx2",
	lanes:    8,
	level:    cpu.SIMDAVX2,
	priority: 15,
	body:     rangeAVX2,
}

// rangeAVX2 folds x eight lanes at a time. A lane only moves when the new
// value compares less (greater), so NaN lanes are skipped.
func rangeAVX2(x []float32) (minVal, maxVal float32) {
	lo, hi := generic.Identity()
	vMin := archsimd.BroadcastFloat32x8(lo)
	vMax := archsimd.BroadcastFloat32x8(hi)

	for i := 0; i+8 <= len(x); i += 8 {
		v := archsimd.LoadFloat32x8Slice(x[i : i+8])
		vMin = v.Merge(vMin, v.Less(vMin))
		vMax = v.Merge(vMax, v.Greater(vMax))
	}

	var mins, maxs [8]float32
	vMin.StoreSlice(mins[:])
	vMax.StoreSlice(maxs[:])

	return generic.ReduceLanes(mins[:], maxs[:])
}
