package scanfilter

import (
	"fmt"
	"unsafe"

	scanerrors "github.com/tamirms/scanfilter/errors"
	"github.com/tamirms/scanfilter/internal/partition"
	"github.com/tamirms/scanfilter/internal/prefix"
)

// Number is the set of element types Filter accepts.
type Number interface {
	int | int32 | int64 | uint32 | uint64 | float32 | float64
}

// Result holds the outcome of a filter call.
type Result[T Number] struct {
	Matches []T // len(Matches) == Total
	Total   int
}

// Empty reports whether no element matched.
func (r Result[T]) Empty() bool { return r.Total == 0 }

// Filter returns the elements of values with value >= threshold, in their
// original order, and their count.
//
// workers = 0 runs sequentially on the calling goroutine. workers >= 1 splits
// the input into that many partitions processed in parallel. The result does
// not depend on workers.
//
// values must not be modified until Filter returns. On error the returned
// slice is nil.
func Filter[T Number](values []T, threshold T, workers int, opts ...FilterOption) ([]T, int, error) {
	// Validate before allocating an output as large as the input.
	plan, err := newPlan(values, threshold, workers, opts)
	if err != nil {
		return nil, 0, err
	}
	out := make([]T, len(values))
	total, err := filterInto(out, values, threshold, plan)
	if err != nil {
		return nil, 0, err
	}
	return out[:total:total], total, nil
}

// FilterResult is Filter returning a Result.
func FilterResult[T Number](values []T, threshold T, workers int, opts ...FilterOption) (Result[T], error) {
	m, total, err := Filter(values, threshold, workers, opts...)
	if err != nil {
		return Result[T]{}, err
	}
	return Result[T]{Matches: m, Total: total}, nil
}

// FilterInto writes the matches to dst[:total] and returns total.
// len(dst) must be at least len(values), and dst[:len(values)] must not
// share memory with values; in-place filtering is rejected with
// ErrOverlappingOutput. On error the contents of dst are unspecified and
// must not be used.
func FilterInto[T Number](dst, values []T, threshold T, workers int, opts ...FilterOption) (int, error) {
	plan, err := newPlan(values, threshold, workers, opts)
	if err != nil {
		return 0, err
	}
	if len(dst) < len(values) {
		return 0, fmt.Errorf("%w: %d < %d", scanerrors.ErrOutputTooSmall, len(dst), len(values))
	}
	if overlaps(dst[:len(values)], values) {
		return 0, scanerrors.ErrOverlappingOutput
	}
	return filterInto(dst, values, threshold, plan)
}

func newPlan[T Number](values []T, threshold T, workers int, opts []FilterOption) (partition.Plan, error) {
	cfg := defaultFilterConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if isNaN(threshold) {
		return partition.Plan{}, scanerrors.ErrInvalidThreshold
	}
	return partition.New(len(values), workers, cfg.chunkWidth)
}

// isNaN is only ever true for float element types.
func isNaN[T Number](v T) bool {
	return v != v
}

// overlaps reports whether a and b share any element of memory.
func overlaps[T Number](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	size := unsafe.Sizeof(a[0])
	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	aEnd := aStart + uintptr(len(a))*size
	bEnd := bStart + uintptr(len(b))*size
	return aStart < bEnd && bStart < aEnd
}

// filterInto runs count, prefix sum, scatter and residue over plan.
//
// Partition i writes only counts[i] and out[offsets[i] : offsets[i]+counts[i]],
// so neither pass needs locking. The residue is appended after every
// partition's output. out must not overlap values.
func filterInto[T Number](out, values []T, threshold T, plan partition.Plan) (int, error) {
	parts := plan.Partitions()
	if plan.ChunksPerPartition() == 0 {
		// Every partition is empty; skip spawning tasks that would do nothing.
		parts = 0
	}

	counts, err := countPass(values, threshold, plan, parts)
	if err != nil {
		return 0, err
	}

	offsets := make([]int, parts)
	total := prefix.ExclusiveSum(counts, offsets)

	if err := scatterPass(out, values, threshold, plan, counts, offsets); err != nil {
		return 0, err
	}

	lo, hi := plan.Residue()
	total += scatterRange(values, threshold, lo, hi, 1, out[total:])
	return total, nil
}

// countPass returns the match count of each of the first parts partitions.
func countPass[T Number](values []T, threshold T, plan partition.Plan, parts int) ([]int, error) {
	c := plan.ChunkWidth()
	counts := make([]int, parts)
	err := runPartitions(parts, plan.Bounds, func(i, lo, hi int) error {
		counts[i] = countRange(values, threshold, lo, hi, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("count pass: %w", err)
	}
	return counts, nil
}

// scatterPass writes partition i's matches to out[offsets[i]:][:counts[i]].
// A partition finding more or fewer matches than counts[i] fails the pass.
func scatterPass[T Number](out, values []T, threshold T, plan partition.Plan, counts, offsets []int) error {
	c := plan.ChunkWidth()
	err := runPartitions(len(counts), plan.Bounds, func(i, lo, hi int) error {
		start, end := offsets[i], offsets[i]+counts[i]
		// The capped slice turns any write past this partition's region into a panic.
		if n := scatterRange(values, threshold, lo, hi, c, out[start:end:end]); n != counts[i] {
			return fmt.Errorf("%w: partition %d scattered %d of %d counted matches",
				scanerrors.ErrWorkerFailed, i, n, counts[i])
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scatter pass: %w", err)
	}
	return nil
}
