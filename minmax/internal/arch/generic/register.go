package generic

import (
	"github.com/cwbudde/algo-range/minmax/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the pure Go kernels. They run everywhere and serve as the
// fallback when no SIMD kernel is usable or ForceGeneric is set.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "scalar",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Range:     rangeScalar,
	})
	registry.Global.Register(registry.OpEntry{
		Name:      "lanes",
		SIMDLevel: cpu.SIMDNone,
		Priority:  10,
		Range:     Lanes,
	})
}
