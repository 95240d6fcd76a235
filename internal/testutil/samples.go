package testutil

import (
	"math"
	"math/rand"
)

// UniformIntensities draws length samples uniformly from the integers
// [0, levels) and widens them to float32, like 12-bit pixel data for
// levels = 4095. The seed makes the result reproducible.
func UniformIntensities(seed int64, levels, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32(rng.Intn(levels))
	}
	return out
}

// DeterministicNoise generates signed white noise in [-amplitude, amplitude)
// with a fixed seed.
func DeterministicNoise(seed int64, amplitude float32, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float32()*2 - 1) * amplitude
	}
	return out
}

// Ramp returns start, start+step, ... with length elements.
func Ramp(start, step float32, length int) []float32 {
	out := make([]float32, length)
	for i := range out {
		out[i] = start + step*float32(i)
	}
	return out
}

// Constant returns a slice of length n filled with value.
func Constant(value float32, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// WithNaN returns a copy of x with NaN written at the given positions.
// Positions outside x are ignored.
func WithNaN(x []float32, positions ...int) []float32 {
	out := append([]float32(nil), x...)
	nan := float32(math.NaN())
	for _, p := range positions {
		if p >= 0 && p < len(out) {
			out[p] = nan
		}
	}
	return out
}

// ZeroTies returns length copies of fill with a zero at index 1 and zeros
// of the opposite sign at every multiple of 8 from index 8. The zero at
// index 1 is negative when firstNegative is set.
//
// A sequential fold meets the index-1 zero first, while lane 0 of a 4, 8 or
// 16 lane fold meets the opposite-signed zero at index 8 first, so a kernel
// without a fixed rule for signed zeros returns a different sign.
func ZeroTies(fill float32, firstNegative bool, length int) []float32 {
	first, other := float32(0), float32(math.Copysign(0, -1))
	if firstNegative {
		first, other = other, first
	}

	out := Constant(fill, length)
	if length > 1 {
		out[1] = first
	}
	for i := 8; i < length; i += 8 {
		out[i] = other
	}
	return out
}

// Shifted copies x into a fresh buffer starting offset elements in and
// returns the view over the copy. Varying offset moves the slice start
// across vector alignment boundaries.
func Shifted(x []float32, offset int) []float32 {
	buf := make([]float32, offset+len(x))
	copy(buf[offset:], x)
	return buf[offset:]
}
