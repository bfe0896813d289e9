// Bench measures scanfilter throughput and memory across worker counts and
// checks that every worker count produces the same output.
//
// Usage:
//
//	go run ./cmd/bench -n 50000000 -selectivity 0.3 -workers 0,1,2,4,8,16
//
// Flags:
//
//	-n            Number of float32 values (default: 50,000,000)
//	-selectivity  Fraction of values that match (default: 0.5)
//	-workers      Comma-separated worker counts (default: 0,1,2,4,8)
//	-chunk        Chunk width (default: 4)
//	-runs         Timed runs per worker count; the fastest is reported (default: 5)
//	-io           Also time WriteFile and LoadFile through a temp file
//	-cpuprofile   Write a CPU profile of the timed runs to file
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/zeebo/xxh3"

	"github.com/tamirms/scanfilter"
	"github.com/tamirms/scanfilter/internal/bits"
	"github.com/tamirms/scanfilter/internal/partition"
)

// getMaxRSS returns the maximum resident set size in bytes.
// Uses getrusage(RUSAGE_SELF) which tracks peak RSS since process start.
func getMaxRSS() uint64 {
	var rusage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &rusage); err != nil {
		return 0
	}
	// MaxRss is bytes on macOS, kilobytes on Linux.
	maxRSS := uint64(rusage.Maxrss)
	if runtime.GOOS == "linux" {
		maxRSS *= 1024
	}
	return maxRSS
}

type row struct {
	workers  int
	best     time.Duration
	total    int
	checksum uint64
}

func main() {
	nFlag := flag.Int("n", 50_000_000, "number of values")
	selFlag := flag.Float64("selectivity", 0.5, "fraction of values that match")
	workersFlag := flag.String("workers", "0,1,2,4,8", "comma-separated worker counts")
	chunkFlag := flag.Int("chunk", partition.DefaultChunkWidth, "chunk width")
	runsFlag := flag.Int("runs", 5, "timed runs per worker count")
	ioFlag := flag.Bool("io", false, "also benchmark WriteFile/LoadFile")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file (timed runs only)")
	flag.Parse()

	workerCounts, err := parseWorkers(*workersFlag)
	if err != nil {
		fmt.Printf("Invalid -workers: %v\n", err)
		return
	}
	if *runsFlag < 1 {
		fmt.Printf("Invalid -runs %d: must be at least 1\n", *runsFlag)
		return
	}
	if *selFlag < 0 || *selFlag > 1 {
		fmt.Printf("Invalid -selectivity %v: must be in [0, 1]\n", *selFlag)
		return
	}

	fmt.Println("Generating values...")
	values := make([]float32, *nFlag)
	var key [8]byte
	for i := range values {
		binary.LittleEndian.PutUint64(key[:], uint64(i))
		values[i] = float32(bits.UnitFloat64(xxh3.Hash(key[:])))
	}
	// value >= threshold for a fraction selectivity of a uniform [0, 1) input.
	threshold := float32(1 - *selFlag)

	if *ioFlag {
		if err := benchIO(values); err != nil {
			fmt.Printf("I/O benchmark failed: %v\n", err)
			return
		}
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Printf("could not create CPU profile: %v\n", err)
			return
		}
		defer func() { _ = f.Close() }()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("could not start CPU profile: %v\n", err)
			return
		}
		defer pprof.StopCPUProfile()
	}

	dst := make([]float32, len(values))
	opt := scanfilter.WithChunkWidth(*chunkFlag)
	baselineRSS := getMaxRSS()

	rows := make([]row, 0, len(workerCounts))
	for _, w := range workerCounts {
		fmt.Printf("Benchmarking workers=%d...\n", w)
		r := row{workers: w}
		for run := 0; run < *runsFlag; run++ {
			start := time.Now()
			total, err := scanfilter.FilterInto(dst, values, threshold, w, opt)
			elapsed := time.Since(start)
			if err != nil {
				fmt.Printf("FilterInto failed: %v\n", err)
				return
			}
			if run == 0 || elapsed < r.best {
				r.best = elapsed
			}
			r.total = total
		}
		r.checksum = scanfilter.Checksum(dst[:r.total])
		rows = append(rows, r)
	}
	peakRSS := getMaxRSS() - baselineRSS

	consistent := true
	for _, r := range rows[1:] {
		if r.total != rows[0].total || r.checksum != rows[0].checksum {
			consistent = false
		}
	}

	fmt.Printf("\n")
	fmt.Printf("╔═════════╦════════════╦══════════════╦════════════╦══════════════════╗\n")
	fmt.Printf("║ Workers ║ Best time  ║ Throughput   ║ Matches    ║ Checksum         ║\n")
	fmt.Printf("╠═════════╬════════════╬══════════════╬════════════╬══════════════════╣\n")
	for _, r := range rows {
		throughput := float64(len(values)) / r.best.Seconds() / 1_000_000
		fmt.Printf("║ %7d ║ %7.2f ms ║ %7.1f M/s  ║ %10d ║ %016x ║\n",
			r.workers, float64(r.best.Microseconds())/1000, throughput, r.total, r.checksum)
	}
	fmt.Printf("╚═════════╩════════════╩══════════════╩════════════╩══════════════════╝\n")
	fmt.Printf("Peak RSS growth during runs: %.1f MB\n", float64(peakRSS)/1_000_000)
	if !consistent {
		fmt.Println("ERROR: worker counts disagree on the output")
		os.Exit(1)
	}
}

// benchIO writes values to a temp file and reads them back.
func benchIO(values []float32) error {
	tmpDir, err := os.MkdirTemp("", "scanfilter-bench-")
	if err != nil {
		return err
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()
	path := filepath.Join(tmpDir, "values.txt")

	fmt.Println("Writing value file...")
	start := time.Now()
	if err := scanfilter.WriteFile(path, values); err != nil {
		return err
	}
	writeDuration := time.Since(start)
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	fmt.Println("Loading value file...")
	start = time.Now()
	loaded, err := scanfilter.LoadFile[float32](path, len(values))
	if err != nil {
		return err
	}
	loadDuration := time.Since(start)
	if scanfilter.Checksum(loaded) != scanfilter.Checksum(values) {
		return fmt.Errorf("loaded values differ from written values")
	}

	mb := float64(info.Size()) / 1_000_000
	fmt.Printf("WriteFile: %.1f MB in %v (%.1f MB/s)\n", mb, writeDuration.Round(time.Millisecond), mb/writeDuration.Seconds())
	fmt.Printf("LoadFile:  %.1f MB in %v (%.1f MB/s)\n", mb, loadDuration.Round(time.Millisecond), mb/loadDuration.Seconds())
	return nil
}

func parseWorkers(s string) ([]int, error) {
	var counts []int
	for _, field := range strings.Split(s, ",") {
		w, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		if w < 0 {
			return nil, fmt.Errorf("negative worker count %d", w)
		}
		counts = append(counts, w)
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("no worker counts")
	}
	return counts, nil
}
