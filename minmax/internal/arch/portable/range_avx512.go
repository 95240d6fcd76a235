//go:build amd64 && goexperiment.simd && !purego

package portable

import (
	"simd/archsimd"

	"github.com/cwbudde/algo-range/minmax/internal/arch/generic"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var avx512Target = target{
	name:     "avx512",
	lanes:    16,
	level:    cpu.SIMDAVX512,
	priority: 15,
	body:     rangeAVX512,
}

func rangeAVX512(x []float32) (minVal, maxVal float32) {
	lo, hi := generic.Identity()
	vMin := archsimd.BroadcastFloat32x16(lo)
	vMax := archsimd.BroadcastFloat32x16(hi)

	for i := 0; i+16 <= len(x); i += 16 {
		v := archsimd.LoadFloat32x16Slice(x[i : i+16])
		vMin = v.Merge(vMin, v.Less(vMin))
		vMax = v.Merge(vMax, v.Greater(vMax))
	}

	var mins, maxs [16]float32
	vMin.StoreSlice(mins[:])
	vMax.StoreSlice(maxs[:])

	return generic.ReduceLanes(mins[:], maxs[:])
}
