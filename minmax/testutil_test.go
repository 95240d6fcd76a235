package minmax

import (
	"strconv"
	"sync"
)

// strategies lists every public entry point sharing the Range contract.
var strategies = []struct {
	name string
	fn   Func
}{
	{"scalar", RangeScalar},
	{"lanes", RangeLanes},
	{"portable", RangePortable},
	{"intrinsic", RangeIntrinsic},
	{"dispatch", Range},
}

// Benchmark sizes shared across benchmark files.
var benchSizes = []struct {
	name string
	size int
}{
	{"64", 64},
	{"1K", 1024},
	{"16K", 16384},
	{"256K", 512 * 512},
}

func resetDispatchForTest() {
	rangeImpl = nil
	rangeName = ""
	rangeWidth = 0
	rangeInitOnce = sync.Once{}

	intrinsicImpl = nil
	intrinsicInitOnce = sync.Once{}
}

func sizeStr(n int) string {
	return "n=" + strconv.Itoa(n)
}
