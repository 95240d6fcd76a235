//go:build amd64 && goexperiment.simd && !purego

package portable

import (
	"simd/archsimd"

	"github.com/ajroetker/go-highway/hwy"
)

func selectTarget() target {
	switch {
	case hwy.NoSimdEnv():
		return fallbackTarget
	case archsimd.X86.AVX512():
		return avx512Target
	case archsimd.X86.AVX2():
		return avx2Target
	default:
		return fallbackTarget
	}
}
