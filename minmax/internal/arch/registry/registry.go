// Package registry holds the min/max reduction kernels compiled into this
// binary and picks the best one for the running CPU.
//
// Architecture packages register themselves from init(). The minmax package
// looks up a kernel once, on first use.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// RangeFn reduces x to its minimum and maximum.
//
// width is the preferred lane count for kernels whose accumulator width is
// chosen at run time. Kernels with a fixed register width ignore it.
type RangeFn func(x []float32, width int) (minVal, maxVal float32)

// OpEntry is one registered range kernel.
type OpEntry struct {
	// Name identifies the kernel ("scalar", "lanes", "portable", "avx2").
	Name string

	// SIMDLevel is the instruction set the kernel needs.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible kernels, higher wins. In use:
	//   - scalar:   0
	//   - portable: 5
	//   - lanes:    10
	//   - avx2:     20
	Priority int

	Range RangeFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default range kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry. An entry with the same name
// replaces the earlier one.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].Name == entry.Name {
			r.entries[i] = entry
			r.sorted = false

			return
		}
	}

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features,
// or nil if none is.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// LookupName returns the entry registered under name regardless of CPU
// support, or nil. Callers gate on cpu.Supports themselves.
func (r *OpRegistry) LookupName(name string) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			entry := r.entries[i]
			return &entry
		}
	}

	return nil
}

func (r *OpRegistry) ensureSorted() {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()
}

// sortByPriority sorts entries by descending priority. Must be called with
// r.mu held.
func (r *OpRegistry) sortByPriority() {
	// Insertion sort, the registry holds a handful of entries.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of the entries, highest priority first.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
