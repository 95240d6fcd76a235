package minmax

import (
	"sync"

	"github.com/cwbudde/algo-range/minmax/internal/arch/amd64/avx2"
	"github.com/cwbudde/algo-range/minmax/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// intrinsicName is the registry name of the hardware intrinsic kernel.
const intrinsicName = "avx2"

// intrinsicWidth is the fixed register width of the intrinsic kernel.
const intrinsicWidth = avx2.Width

// defaultLaneWidth is used when the probe names no vector unit.
const defaultLaneWidth = 8

var (
	rangeImpl     registry.RangeFn
	rangeName     string
	rangeWidth    int
	rangeInitOnce sync.Once

	intrinsicImpl     registry.RangeFn
	intrinsicInitOnce sync.Once
)

// Implementation returns the name of the strategy Range dispatches to.
func Implementation() string {
	rangeInitOnce.Do(initRangeKernel)
	return rangeName
}

// LaneWidth returns the accumulator count RangeLanes uses on this CPU:
// 16 with AVX-512, 8 with AVX2, 4 with SSE2 or NEON and 8 otherwise.
func LaneWidth() int {
	rangeInitOnce.Do(initRangeKernel)
	return rangeWidth
}

// IntrinsicAvailable reports whether RangeIntrinsic runs the AVX2 kernel
// rather than falling back.
func IntrinsicAvailable() bool {
	intrinsicInitOnce.Do(initIntrinsicKernel)
	return intrinsicImpl != nil
}

func initRangeKernel() {
	features := cpu.DetectFeatures()

	entry := registry.Global.Lookup(features)
	if entry == nil {
		panic("minmax: no range kernel registered (missing generic fallback?)")
	}

	if entry.Range == nil {
		panic("minmax: selected kernel missing Range")
	}

	rangeImpl = entry.Range
	rangeName = entry.Name
	rangeWidth = laneWidth(features)

	Logger().Debug("minmax: range kernel selected",
		"kernel", rangeName,
		"lanes", rangeWidth,
		"arch", features.Architecture,
	)
}

func initIntrinsicKernel() {
	features := cpu.DetectFeatures()

	entry := registry.Global.LookupName(intrinsicName)
	switch {
	case entry == nil:
		Logger().Warn("minmax: intrinsic kernel not compiled in, using dispatched range",
			"kernel", intrinsicName)
	case !cpu.Supports(features, entry.SIMDLevel):
		Logger().Warn("minmax: CPU lacks the intrinsic kernel's instruction set, using dispatched range",
			"kernel", intrinsicName,
			"requires", entry.SIMDLevel,
		)
	default:
		intrinsicImpl = entry.Range
	}
}

func laneWidth(features cpu.Features) int {
	switch {
	case features.ForceGeneric:
		return defaultLaneWidth
	case features.HasAVX512:
		return 16
	case features.HasAVX2:
		return 8
	case features.HasSSE2, features.HasNEON:
		return 4
	default:
		return defaultLaneWidth
	}
}
