package portable

import (
	"math"
	"strconv"
	"testing"
	"unsafe"

	"github.com/cwbudde/algo-range/internal/testutil"
	"github.com/cwbudde/algo-range/minmax/internal/arch/generic"
)

func TestRangeBasic(t *testing.T) {
	cases := []struct {
		name    string
		x       []float32
		wantMin float32
		wantMax float32
	}{
		{name: "rising", x: []float32{1, 2, 3, 4, 5, 6, 7, 8}, wantMin: 1, wantMax: 8},
		{name: "falling", x: []float32{8, 7, 6, 5, 4, 3, 2, 1}, wantMin: 1, wantMax: 8},
		{name: "partial chunk", x: []float32{8, 7, 6, 5, 4, 3, 2, 1, 4, 7, 10}, wantMin: 1, wantMax: 10},
		{name: "single", x: []float32{42}, wantMin: 42, wantMax: 42},
		{name: "nan in body", x: testutil.WithNaN(testutil.Ramp(-10, 1, 40), 5, 17, 30), wantMin: -10, wantMax: 29},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotMin, gotMax := Range(tc.x)
			testutil.RequireRange(t, "portable", gotMin, gotMax, tc.wantMin, tc.wantMax)
		})
	}
}

func TestRangeSignedZeros(t *testing.T) {
	for _, first := range []bool{true, false} {
		for offset := 0; offset < 8; offset++ {
			x := testutil.Shifted(testutil.ZeroTies(1, first, 65), offset)
			gotMin, gotMax := Range(x)
			testutil.RequireRange(t, "portable min", gotMin, gotMax, 0, 1)

			x = testutil.Shifted(testutil.ZeroTies(-1, first, 65), offset)
			gotMin, gotMax = Range(x)
			testutil.RequireRange(t, "portable max", gotMin, gotMax, -1, 0)
		}
	}
}

func TestRangeDoesNotAllocate(t *testing.T) {
	x := testutil.UniformIntensities(3, 4095, 4096+3)[3:]

	allocs := testing.AllocsPerRun(100, func() {
		Range(x)
	})
	if allocs != 0 {
		t.Fatalf("Range allocated %v times per call on target %s, want 0", allocs, Target())
	}
}

func TestTargetBodiesMatchScalar(t *testing.T) {
	bodies := []target{fallbackTarget, active}

	for _, tgt := range bodies {
		for _, chunks := range []int{0, 1, 2, 7, 64} {
			t.Run(tgt.name+"/chunks="+strconv.Itoa(chunks), func(t *testing.T) {
				x := testutil.WithNaN(testutil.DeterministicNoise(int64(chunks), 10, chunks*tgt.lanes), 0, 5)
				lo, hi := generic.Identity()
				wantMin, wantMax := generic.Fold(x, lo, hi)
				gotMin, gotMax := tgt.body(x)
				if gotMin != wantMin || gotMax != wantMax {
					t.Fatalf("body = (%v, %v), want (%v, %v)", gotMin, gotMax, wantMin, wantMax)
				}
			})
		}
	}
}

func TestActiveTargetShape(t *testing.T) {
	switch Target() {
	case "fallback":
		if Lanes() != 1 || active.priority >= 10 {
			t.Fatalf("fallback target: lanes %d priority %d", Lanes(), active.priority)
		}
	case "avx2", "avx512", "neon":
		if Lanes() < 4 || active.priority <= 10 {
			t.Fatalf("%s target: lanes %d priority %d", Target(), Lanes(), active.priority)
		}
	default:
		t.Fatalf("unknown target %q", Target())
	}
}

func TestRangeEmpty(t *testing.T) {
	gotMin, gotMax := Range(nil)
	if !math.IsInf(float64(gotMin), 1) || !math.IsInf(float64(gotMax), -1) {
		t.Fatalf("Range(nil) = (%v, %v), want (+Inf, -Inf)", gotMin, gotMax)
	}
}

func TestRangeAlignmentParity(t *testing.T) {
	t.Logf("target %s, %d float32 lanes", Target(), Lanes())

	for n := 0; n <= 70; n++ {
		x := testutil.DeterministicNoise(int64(n), 50, n)
		wantMin, wantMax := testutil.ReferenceRange(x)

		for offset := 0; offset < 8; offset++ {
			t.Run("n="+strconv.Itoa(n)+"/off="+strconv.Itoa(offset), func(t *testing.T) {
				gotMin, gotMax := Range(testutil.Shifted(x, offset))
				testutil.RequireRange(t, "portable", gotMin, gotMax, wantMin, wantMax)
			})
		}
	}
}

func TestAlignedOffset(t *testing.T) {
	buf := make([]float32, 64)

	for _, lanes := range []int{4, 8, 16} {
		for start := 0; start < lanes; start++ {
			x := buf[start:]
			head := alignedOffset(x, lanes)
			if head < 0 || head >= lanes {
				t.Fatalf("lanes=%d start=%d: head %d outside [0, %d)", lanes, start, head, lanes)
			}

			addr := uintptr(unsafe.Pointer(&x[head]))
			if addr%uintptr(lanes*4) != 0 {
				t.Fatalf("lanes=%d start=%d: &x[%d] = %#x not aligned", lanes, start, head, addr)
			}
		}
	}
}

func TestAlignedOffsetShortSlice(t *testing.T) {
	buf := make([]float32, 16)
	for start := 0; start < 8; start++ {
		x := buf[start : start+1]
		if head := alignedOffset(x, 8); head > len(x) {
			t.Fatalf("start=%d: head %d exceeds len %d", start, head, len(x))
		}
	}
}
