package minmax

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-range/minmax/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	// ErrUnknownStrategy is returned by Lookup for a name no kernel is
	// registered under.
	ErrUnknownStrategy = errors.New("minmax: unknown strategy")

	// ErrUnsupported is returned by Lookup for a kernel the running CPU
	// cannot execute.
	ErrUnsupported = errors.New("minmax: strategy not supported on this CPU")
)

// Strategies returns the names of the compiled-in strategies, most
// preferred first.
func Strategies() []string {
	entries := registry.Global.ListEntries()

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the strategy registered under name, bound to the lane
// width of this CPU. Unlike RangeIntrinsic it never falls back.
func Lookup(name string) (Func, error) {
	entry := registry.Global.LookupName(name)
	if entry == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}

	if !cpu.Supports(cpu.DetectFeatures(), entry.SIMDLevel) {
		return nil, fmt.Errorf("%w: %s requires %v", ErrUnsupported, name, entry.SIMDLevel)
	}

	fn, width := entry.Range, LaneWidth()
	return func(x []float32) (float32, float32) {
		return fn(x, width)
	}, nil
}
