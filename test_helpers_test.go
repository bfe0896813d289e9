package scanfilter

import (
	"encoding/binary"
	"hash/fnv"
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

// referenceFilter is the obvious sequential selection, used as the oracle.
func referenceFilter[T Number](values []T, threshold T) []T {
	out := []T{}
	for _, v := range values {
		if v >= threshold {
			out = append(out, v)
		}
	}
	return out
}

// randomFloats returns n values in [0, 100) with many duplicates so that
// thresholds land exactly on elements.
func randomFloats(rng *rand.Rand, n int) []float32 {
	values := make([]float32, n)
	for i := range values {
		values[i] = float32(rng.IntN(400)) / 4
	}
	return values
}

func randomInts(rng *rand.Rand, n int) []int64 {
	values := make([]int64, n)
	for i := range values {
		values[i] = rng.Int64N(2001) - 1000
	}
	return values
}

// mustFilter calls Filter and fails the test on error.
func mustFilter[T Number](t *testing.T, values []T, threshold T, workers int, opts ...FilterOption) ([]T, int) {
	t.Helper()
	m, total, err := Filter(values, threshold, workers, opts...)
	if err != nil {
		t.Fatalf("Filter(len=%d, threshold=%v, workers=%d) failed: %v", len(values), threshold, workers, err)
	}
	if len(m) != total {
		t.Fatalf("len(matches) = %d, total = %d", len(m), total)
	}
	return m, total
}
