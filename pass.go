package scanfilter

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	scanerrors "github.com/tamirms/scanfilter/errors"
)

// satisfies is the selection predicate shared by every pass.
func satisfies[T Number](v, threshold T) bool {
	return v >= threshold
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// countRange returns the number of matches in values[lo:hi], stepping in
// chunks of width c. hi-lo must be a multiple of c.
func countRange[T Number](values []T, threshold T, lo, hi, c int) int {
	if c == 4 {
		// Branchless 4-wide step for the default chunk width.
		n := 0
		for base := lo; base < hi; base += 4 {
			chunk := values[base : base+4 : base+4]
			n += b2i(satisfies(chunk[0], threshold)) +
				b2i(satisfies(chunk[1], threshold)) +
				b2i(satisfies(chunk[2], threshold)) +
				b2i(satisfies(chunk[3], threshold))
		}
		return n
	}
	return scanRange(values, threshold, lo, hi, c, nil)
}

// scatterRange writes the matches in values[lo:hi] to dst in index order and
// returns how many were written. A match beyond len(dst) panics.
func scatterRange[T Number](values []T, threshold T, lo, hi, c int, dst []T) int {
	return scanRange(values, threshold, lo, hi, c, dst)
}

// scanRange is the kernel behind both passes. With dst == nil it only counts.
func scanRange[T Number](values []T, threshold T, lo, hi, c int, dst []T) int {
	n := 0
	for base := lo; base < hi; base += c {
		for _, v := range values[base : base+c : base+c] {
			if satisfies(v, threshold) {
				if dst != nil {
					dst[n] = v
				}
				n++
			}
		}
	}
	return n
}

// partitionTask processes partition i, which owns elements [lo, hi).
type partitionTask func(i, lo, hi int) error

// runPartitions runs task once per partition on its own goroutine and waits
// for all of them. A panicking task is recovered and reported as
// ErrWorkerFailed; the first error wins.
func runPartitions(parts int, bounds func(i int) (lo, hi int), task partitionTask) error {
	if parts == 0 {
		return nil
	}
	var g errgroup.Group
	for i := range parts {
		lo, hi := bounds(i)
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: partition %d [%d, %d): %v", scanerrors.ErrWorkerFailed, i, lo, hi, r)
				}
			}()
			return task(i, lo, hi)
		})
	}
	return g.Wait()
}
