package minmax_test

import (
	"fmt"

	"github.com/cwbudde/algo-range/minmax"
)

func ExampleRange() {
	pixels := []float32{812, 14, 4094, 2048, 7, 3333, 96, 1500, 640}

	lo, hi := minmax.Range(pixels)
	fmt.Println(lo, hi)
	// Output: 7 4094
}

func ExampleRangeScalar_empty() {
	lo, hi := minmax.RangeScalar(nil)
	fmt.Println(lo, hi)
	// Output: +Inf -Inf
}
