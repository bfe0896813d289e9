// Package scanfilter implements a parallel selection operator: given a
// numeric slice, a threshold and a worker count, it returns the elements
// satisfying value >= threshold in their original order, plus the match count.
//
// # Basic Usage
//
// Filtering a slice:
//
//	matches, total, err := scanfilter.Filter(values, float32(5), runtime.NumCPU())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d matches\n", total)
//
// Loading newline-delimited values from a file and reporting:
//
//	values, err := scanfilter.LoadFile[float32]("data.txt", n)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	matches, _, err := scanfilter.Filter(values, threshold, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = scanfilter.WriteReport(os.Stdout, matches)
//
// # Algorithm
//
// The input is split into T partitions of whole chunks (ChunkWidth elements
// each) plus a residue tail shorter than ChunkWidth*T. Filtering runs in
// four phases separated by full barriers:
//
//  1. Count: each partition counts its matches in parallel.
//  2. Prefix sum: counts become output offsets (sequential, O(T)).
//  3. Scatter: each partition re-scans and writes its matches to its own
//     disjoint output region in parallel.
//  4. Residue: the tail is scanned sequentially and appended.
//
// Output order depends only on element indices, never on scheduling, so the
// result is identical for every worker count. T = 0 runs phase 4 alone,
// inline on the calling goroutine.
//
// # Package Structure
//
//   - Public API: filter.go (Filter, FilterInto, FilterResult), options.go
//   - Passes: pass.go (count/scatter kernel, partition runner)
//   - Input/output: source.go (Load, LoadFile), writer.go (WriteFile),
//     report.go (WriteReport), checksum.go (Checksum)
//   - Partitioning: internal/partition/, internal/prefix/
//   - Text codec: internal/encoding/
//   - Platform: fadvise_*.go, prefault_*.go, fallocate_*.go
package scanfilter
