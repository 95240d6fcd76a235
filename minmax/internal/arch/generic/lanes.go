package generic

// Lanes returns the minimum and maximum of x using width independent
// accumulator lanes. Supported widths are 4, 8 and 16; any other value
// falls back to 8.
func Lanes(x []float32, width int) (minVal, maxVal float32) {
	switch width {
	case 4:
		return Lanes4(x)
	case 16:
		return Lanes16(x)
	default:
		return Lanes8(x)
	}
}

// Lanes4 is the 4-lane fold, matching 128-bit SSE2 and NEON registers.
func Lanes4(x []float32) (minVal, maxVal float32) {
	const w = 4

	var mins, maxs [w]float32
	resetLanes(mins[:], maxs[:])

	n := len(x) - len(x)%w
	for i := 0; i < n; i += w {
		chunk := (*[w]float32)(x[i : i+w])
		for j := range chunk {
			step(&mins[j], &maxs[j], chunk[j])
		}
	}

	return finishLanes(x, n, mins[:], maxs[:])
}

// Lanes8 is the 8-lane fold, matching one 256-bit AVX register of float32.
func Lanes8(x []float32) (minVal, maxVal float32) {
	const w = 8

	var mins, maxs [w]float32
	resetLanes(mins[:], maxs[:])

	n := len(x) - len(x)%w
	for i := 0; i < n; i += w {
		chunk := (*[w]float32)(x[i : i+w])
		for j := range chunk {
			step(&mins[j], &maxs[j], chunk[j])
		}
	}

	return finishLanes(x, n, mins[:], maxs[:])
}

// Lanes16 is the 16-lane fold, matching one 512-bit AVX-512 register.
func Lanes16(x []float32) (minVal, maxVal float32) {
	const w = 16

	var mins, maxs [w]float32
	resetLanes(mins[:], maxs[:])

	n := len(x) - len(x)%w
	for i := 0; i < n; i += w {
		chunk := (*[w]float32)(x[i : i+w])
		for j := range chunk {
			step(&mins[j], &maxs[j], chunk[j])
		}
	}

	return finishLanes(x, n, mins[:], maxs[:])
}

func step(lo, hi *float32, v float32) {
	if v < *lo {
		*lo = v
	}
	if v > *hi {
		*hi = v
	}
}

func resetLanes(mins, maxs []float32) {
	for i := range mins {
		mins[i], maxs[i] = posInf, negInf
	}
}

// finishLanes folds the partial chunk x[n:] into its lanes, collapses the
// lanes with the scalar rule and settles signed zeros. Only the populated
// lanes of the partial chunk move.
func finishLanes(x []float32, n int, mins, maxs []float32) (minVal, maxVal float32) {
	for j, v := range x[n:] {
		step(&mins[j], &maxs[j], v)
	}

	minVal, maxVal = ReduceLanes(mins, maxs)
	return CanonicalZeros(minVal, maxVal)
}

// ReduceLanes collapses per-lane accumulators with the scalar rule.
func ReduceLanes(mins, maxs []float32) (minVal, maxVal float32) {
	minVal, _ = Fold(mins, posInf, negInf)
	_, maxVal = Fold(maxs, posInf, negInf)
	return minVal, maxVal
}
