// Package portable implements the range reduction on go-highway's vector
// targets. One body kernel per instruction set (AVX-512, AVX2, NEON) folds
// the vector-aligned middle of the slice; the target is chosen once at
// package initialization, the way go-highway dispatches its own kernels,
// and HWY_NO_SIMD forces the scalar fallback.
package portable

import (
	"unsafe"

	"github.com/cwbudde/algo-range/minmax/internal/arch/generic"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// target is one body kernel with what the registry needs to gate it.
type target struct {
	name     string
	lanes    int
	level    cpu.SIMDLevel
	priority int

	// body folds x, whose length is a multiple of lanes. It returns the
	// identities for an empty x.
	body func(x []float32) (minVal, maxVal float32)
}

// fallbackTarget is a single-lane target. Range never calls its body and
// folds everything with the scalar rule instead.
var fallbackTarget = target{
	name:     "fallback",
	lanes:    1,
	level:    cpu.SIMDNone,
	priority: 5,
	body:     generic.Scalar,
}

var active = selectTarget()

// Target returns the name of the vector target Range runs on.
func Target() string {
	return active.name
}

// Lanes returns the float32 lane count of the active target.
func Lanes() int {
	return active.lanes
}

// Range returns the minimum and maximum of x.
//
// x is split into an unaligned head, a vector-aligned middle reduced
// Lanes() at a time and a short tail. Head and tail go through the scalar
// fold.
func Range(x []float32) (minVal, maxVal float32) {
	lanes := active.lanes
	if lanes < 2 || len(x) < lanes {
		return generic.Scalar(x)
	}

	head := alignedOffset(x, lanes)
	n := head + (len(x)-head)/lanes*lanes

	minVal, maxVal = active.body(x[head:n])
	minVal, maxVal = generic.Fold(x[:head], minVal, maxVal)
	minVal, maxVal = generic.Fold(x[n:], minVal, maxVal)

	return generic.CanonicalZeros(minVal, maxVal)
}

// alignedOffset returns how many leading elements of x sit before the first
// address aligned to a full vector of lanes float32 values, capped at len(x).
func alignedOffset(x []float32, lanes int) int {
	const elemSize = int(unsafe.Sizeof(float32(0)))

	align := uintptr(lanes * elemSize)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(x)))

	mis := addr % align
	if mis == 0 {
		return 0
	}

	head := int(align-mis) / elemSize
	return min(head, len(x))
}

func rangePortable(x []float32, _ int) (float32, float32) {
	return Range(x)
}
