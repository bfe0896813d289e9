// Package bits maps 64-bit hashes onto value ranges for dataset generation.
package bits

import "math/bits"

// FastRange64 maps a 64-bit hash uniformly to [0, n).
// Multiply and take the high word; avoids the modulo bias of hash % n.
func FastRange64(hash, n uint64) uint64 {
	if n == 0 {
		return 0
	}
	hi, _ := bits.Mul64(hash, n)
	return hi
}

// UnitFloat64 maps a 64-bit hash to a float64 in [0, 1) using its top 53 bits.
func UnitFloat64(hash uint64) float64 {
	return float64(hash>>11) * (1.0 / (1 << 53))
}

// Lerp maps a hash into the half-open interval [lo, hi).
// Returns lo when hi <= lo.
func Lerp(hash uint64, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	v := lo + UnitFloat64(hash)*(hi-lo)
	if v >= hi {
		// Rounding in the multiply-add can land exactly on hi.
		return lo
	}
	return v
}
