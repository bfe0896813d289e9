// Package prefix converts per-partition match counts into output offsets.
package prefix

// ExclusiveSum writes the exclusive prefix sum of counts into offsets and
// returns the sum of all counts.
//
//	offsets[0] = 0
//	offsets[i] = offsets[i-1] + counts[i-1]
//
// offsets must be at least as long as counts. Both may be empty.
func ExclusiveSum(counts, offsets []int) int {
	total := 0
	for i, c := range counts {
		offsets[i] = total
		total += c
	}
	return total
}
