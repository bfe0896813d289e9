package bits

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

// TestFastRange64Monotonicity verifies that for a fixed n,
// h1 < h2 implies FastRange64(h1,n) <= FastRange64(h2,n).
func TestFastRange64Monotonicity(t *testing.T) {
	rng := newTestRNG(t)
	const iterations = 10000

	for i := 0; i < iterations; i++ {
		n := rng.Uint64N(math.MaxUint64) + 1
		h1 := rng.Uint64()
		h2 := rng.Uint64()
		if h1 > h2 {
			h1, h2 = h2, h1
		}

		r1 := FastRange64(h1, n)
		r2 := FastRange64(h2, n)
		if r1 > r2 {
			t.Fatalf("iter %d: monotonicity violated: FastRange64(0x%X, %d)=%d > FastRange64(0x%X, %d)=%d",
				i, h1, n, r1, h2, n, r2)
		}
	}
}

// TestFastRange64Range verifies that the result is always in [0, n).
func TestFastRange64Range(t *testing.T) {
	rng := newTestRNG(t)
	const iterations = 10000

	for i := 0; i < iterations; i++ {
		n := rng.Uint64N(1<<40) + 1
		h := rng.Uint64()

		if got := FastRange64(h, n); got >= n {
			t.Fatalf("iter %d: FastRange64(0x%X, %d) = %d, want < %d", i, h, n, got, n)
		}
	}
}

func TestFastRange64Zero(t *testing.T) {
	if got := FastRange64(math.MaxUint64, 0); got != 0 {
		t.Errorf("FastRange64(max, 0) = %d, want 0", got)
	}
}

func TestUnitFloat64Bounds(t *testing.T) {
	tests := []struct {
		hash uint64
		want float64
	}{
		{0, 0},
		{1 << 11, 1.0 / (1 << 53)},
		{1 << 63, 0.5},
	}
	for _, tc := range tests {
		if got := UnitFloat64(tc.hash); got != tc.want {
			t.Errorf("UnitFloat64(0x%X) = %v, want %v", tc.hash, got, tc.want)
		}
	}
	if got := UnitFloat64(math.MaxUint64); got >= 1 {
		t.Errorf("UnitFloat64(max) = %v, want < 1", got)
	}
}

func TestLerpRange(t *testing.T) {
	rng := newTestRNG(t)
	for i := 0; i < 10000; i++ {
		lo := rng.Float64()*200 - 100
		hi := lo + rng.Float64()*50 + 1e-9
		v := Lerp(rng.Uint64(), lo, hi)
		if v < lo || v >= hi {
			t.Fatalf("iter %d: Lerp = %v, want in [%v, %v)", i, v, lo, hi)
		}
	}
}

func TestLerpEmptyInterval(t *testing.T) {
	if got := Lerp(12345, 3, 3); got != 3 {
		t.Errorf("Lerp on empty interval = %v, want 3", got)
	}
	if got := Lerp(12345, 5, 1); got != 5 {
		t.Errorf("Lerp on inverted interval = %v, want 5", got)
	}
}
