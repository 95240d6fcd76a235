//go:build amd64 && goexperiment.simd && !purego

package avx2

import (
	"github.com/cwbudde/algo-range/minmax/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the AVX2 kernel.
//
// Priority: 20 (preferred over the pure Go kernels when the CPU has AVX2)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		Range:     rangeAVX2,
	})
}
