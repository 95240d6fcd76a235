//go:build !(amd64 && goexperiment.simd) && !(arm64 && !noasm) || purego

package portable

func selectTarget() target {
	return fallbackTarget
}
