package portable

import (
	"github.com/cwbudde/algo-range/minmax/internal/arch/registry"
)

// init registers the active target under one name. A vector target is
// gated on its instruction set and outranks the pure Go lane fold; the
// fallback ranks below it.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "portable",
		SIMDLevel: active.level,
		Priority:  active.priority,
		Range:     rangePortable,
	})
}
