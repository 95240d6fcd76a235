//go:build arm64 && !noasm && !purego

package portable

import "github.com/ajroetker/go-highway/hwy"

// NEON is part of the arm64 baseline.
func selectTarget() target {
	if hwy.NoSimdEnv() {
		return fallbackTarget
	}
	return neonTarget
}
