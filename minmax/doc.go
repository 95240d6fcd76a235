// Package minmax computes the minimum and maximum of a []float32, for
// example the intensity range of an image.
//
// Four strategies implement the same contract:
//
//   - RangeScalar: one accumulator pair, sequential.
//   - RangeLanes: W independent accumulators in fixed-size arrays, shaped
//     for compiler auto-vectorization. W comes from LaneWidth.
//   - RangePortable: vectors over the aligned middle of the slice, scalar
//     head and tail. The vector target (AVX-512, AVX2 or NEON through
//     go-highway's asm package) is picked at startup; HWY_NO_SIMD or a
//     purego build selects a scalar fallback.
//   - RangeIntrinsic: 256-bit AVX2 vectors through simd/archsimd (built
//     with GOEXPERIMENT=simd on amd64).
//
// Range picks the best registered strategy for the running CPU once, on
// first use, and is what most callers want.
//
// # Edge cases
//
// An empty slice yields (+Inf, -Inf), the identities of the fold. Callers
// must not assume the result lies within the input's value range in that
// case. NaN elements are skipped: a NaN never compares less or greater
// than anything, so it never becomes the minimum or maximum, and an
// all-NaN slice also yields (+Inf, -Inf).
//
// All strategies return bit-identical results for the same input. A zero
// minimum or maximum is always returned as +0, whichever zeros occur.
//
// All functions are safe for concurrent use.
package minmax
