//go:build arm64 && !noasm && !purego

package portable

import (
	"github.com/ajroetker/go-highway/hwy/asm"

	"github.com/cwbudde/algo-range/minmax/internal/arch/generic"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var neonTarget = target{
	name:     "neon",
	lanes:    4,
	level:    cpu.SIMDNEON,
	priority: 15,
	body:     rangeNEON,
}

// rangeNEON folds x four lanes at a time with compare and select. FMIN and
// FMAX would propagate NaN.
func rangeNEON(x []float32) (minVal, maxVal float32) {
	lo, hi := generic.Identity()
	vMin := asm.BroadcastFloat32x4(lo)
	vMax := asm.BroadcastFloat32x4(hi)

	for i := 0; i+4 <= len(x); i += 4 {
		v := asm.LoadFloat32x4Slice(x[i : i+4])
		vMin = v.Merge(vMin, v.Less(vMin))
		vMax = v.Merge(vMax, v.Greater(vMax))
	}

	var mins, maxs [4]float32
	vMin.StoreSlice(mins[:])
	vMax.StoreSlice(maxs[:])

	return generic.ReduceLanes(mins[:], maxs[:])
}
