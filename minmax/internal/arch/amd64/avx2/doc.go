// Package avx2 holds the 256-bit range kernel written against
// simd/archsimd. It is compiled only with GOEXPERIMENT=simd on amd64 and
// registers itself at cpu.SIMDAVX2, so the dispatcher never selects it on
// a CPU without AVX2.
package avx2

// Width is the number of float32 lanes in one 256-bit register.
const Width = 8
