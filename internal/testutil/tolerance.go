package testutil

import (
	"fmt"
	"math"
	"slices"
	"testing"
)

// ReferenceRange computes the range of x with the standard library, with
// NaN values removed first. Empty or all-NaN input gives (+Inf, -Inf), and a
// zero extreme is reported as +0.
func ReferenceRange(x []float32) (minVal, maxVal float32) {
	finite := make([]float32, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(float64(v)) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return float32(math.Inf(1)), float32(math.Inf(-1))
	}
	minVal, maxVal = slices.Min(finite), slices.Max(finite)
	if minVal == 0 {
		minVal = 0
	}
	if maxVal == 0 {
		maxVal = 0
	}
	return minVal, maxVal
}

// RequireRange fails t unless (gotMin, gotMax) matches (wantMin, wantMax)
// bit for bit, so -0 and +0 differ.
func RequireRange(t *testing.T, name string, gotMin, gotMax, wantMin, wantMax float32) {
	t.Helper()
	if !SameBits(gotMin, wantMin) {
		t.Fatalf("%s: min = %v (%#08x), want %v (%#08x)", name,
			gotMin, math.Float32bits(gotMin), wantMin, math.Float32bits(wantMin))
	}
	if !SameBits(gotMax, wantMax) {
		t.Fatalf("%s: max = %v (%#08x), want %v (%#08x)", name,
			gotMax, math.Float32bits(gotMax), wantMax, math.Float32bits(wantMax))
	}
}

// SameBits reports whether a and b have the same IEEE 754 encoding.
func SameBits(a, b float32) bool {
	return math.Float32bits(a) == math.Float32bits(b)
}

// CheckRangeInvariant reports whether (minVal, maxVal) bounds every
// non-NaN element of x and both values occur in x. x must hold at least one
// non-NaN element.
func CheckRangeInvariant(x []float32, minVal, maxVal float32) error {
	var seenMin, seenMax bool
	for i, v := range x {
		if math.IsNaN(float64(v)) {
			continue
		}
		if v < minVal || v > maxVal {
			return fmt.Errorf("element %d = %v outside [%v, %v]", i, v, minVal, maxVal)
		}
		seenMin = seenMin || v == minVal
		seenMax = seenMax || v == maxVal
	}
	if !seenMin {
		return fmt.Errorf("min %v is not an element of the input", minVal)
	}
	if !seenMax {
		return fmt.Errorf("max %v is not an element of the input", maxVal)
	}
	return nil
}
