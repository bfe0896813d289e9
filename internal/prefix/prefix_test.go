package prefix

import (
	"slices"
	"testing"
)

func TestExclusiveSum(t *testing.T) {
	tests := []struct {
		name    string
		counts  []int
		want    []int
		wantSum int
	}{
		{"empty", nil, []int{}, 0},
		{"single", []int{7}, []int{0}, 7},
		{"zeros", []int{0, 0, 0}, []int{0, 0, 0}, 0},
		{"mixed", []int{3, 0, 2, 5}, []int{0, 3, 3, 5}, 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			offsets := make([]int, len(tc.counts))
			sum := ExclusiveSum(tc.counts, offsets)
			if sum != tc.wantSum {
				t.Errorf("sum = %d, want %d", sum, tc.wantSum)
			}
			if !slices.Equal(offsets, tc.want) {
				t.Errorf("offsets = %v, want %v", offsets, tc.want)
			}
		})
	}
}

// TestExclusiveSumLastPlusCount checks total == offsets[T-1] + counts[T-1].
func TestExclusiveSumLastPlusCount(t *testing.T) {
	counts := []int{4, 1, 0, 9, 2, 2}
	offsets := make([]int, len(counts))
	sum := ExclusiveSum(counts, offsets)
	last := len(counts) - 1
	if sum != offsets[last]+counts[last] {
		t.Errorf("sum = %d, want %d", sum, offsets[last]+counts[last])
	}
}
