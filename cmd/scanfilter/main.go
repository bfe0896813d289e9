// Scanfilter selects the values >= a threshold from a newline-delimited file
// and prints them in their original order.
//
// Usage:
//
//	go run ./cmd/scanfilter [flags] filename numberOfTuples compareValue numThreads
//
// numThreads = 0 runs the sequential variant. The first numberOfTuples lines
// of filename are read; a shorter file is an error.
//
// Flags:
//
//	-type        Element type: float32, float64 or int64 (default: float32)
//	-chunk       Chunk width per partition step (default: 4)
//	-checksum    Print the xxHash64 of the matches after the listing
//	-quiet       Print only the match count, not the listing
//	-cpuprofile  Write a CPU profile of the filter call to file
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/tamirms/scanfilter"
	"github.com/tamirms/scanfilter/internal/encoding"
	"github.com/tamirms/scanfilter/internal/partition"
)

const usage = "Usage: scanfilter [flags] filename numberOfTuples compareValue numThreads"

type options struct {
	path       string
	n          int
	threshold  string
	workers    int
	chunkWidth int
	checksum   bool
	quiet      bool
	cpuprofile string
}

func main() {
	typeFlag := flag.String("type", "float32", "element type: float32, float64 or int64")
	chunkFlag := flag.Int("chunk", partition.DefaultChunkWidth, "chunk width per partition step")
	checksumFlag := flag.Bool("checksum", false, "print the xxHash64 of the matches")
	quietFlag := flag.Bool("quiet", false, "print only the match count")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file (filter call only)")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), usage)
		fmt.Fprintln(flag.CommandLine.Output(), "If the operator is not parallelized, pass numThreads=0.")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 4 {
		fmt.Fprintln(os.Stderr, "Missing arguments.", usage)
		os.Exit(2)
	}
	args := flag.Args()

	n, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid numberOfTuples %q: %v\n", args[1], err)
		os.Exit(2)
	}
	workers, err := strconv.Atoi(args[3])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid numThreads %q: %v\n", args[3], err)
		os.Exit(2)
	}

	opts := options{
		path:       args[0],
		n:          n,
		threshold:  args[2],
		workers:    workers,
		chunkWidth: *chunkFlag,
		checksum:   *checksumFlag,
		quiet:      *quietFlag,
		cpuprofile: *cpuprofile,
	}

	switch *typeFlag {
	case "float32":
		err = run[float32](opts)
	case "float64":
		err = run[float64](opts)
	case "int64":
		err = run[int64](opts)
	default:
		err = fmt.Errorf("unknown type %q (use float32, float64 or int64)", *typeFlag)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run[T scanfilter.Number](opts options) error {
	threshold, err := encoding.ParseValue[T]([]byte(opts.threshold))
	if err != nil {
		return fmt.Errorf("invalid compareValue %q: %w", opts.threshold, err)
	}

	loadStart := time.Now()
	values, err := scanfilter.LoadFile[T](opts.path, opts.n)
	if err != nil {
		return err
	}
	loadDuration := time.Since(loadStart)

	if opts.cpuprofile != "" {
		f, err := os.Create(opts.cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer func() { _ = f.Close() }()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
	}

	filterStart := time.Now()
	result, err := scanfilter.FilterResult(values, threshold, opts.workers,
		scanfilter.WithChunkWidth(opts.chunkWidth))
	filterDuration := time.Since(filterStart)

	if opts.cpuprofile != "" {
		pprof.StopCPUProfile()
	}
	if err != nil {
		return err
	}

	if opts.quiet {
		if result.Empty() {
			fmt.Println("No results found.")
		} else {
			fmt.Printf("%d matches\n", result.Total)
		}
	} else if err := scanfilter.WriteReport(os.Stdout, result.Matches); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if opts.checksum {
		fmt.Printf("checksum: %016x\n", scanfilter.Checksum(result.Matches))
	}

	fmt.Fprintf(os.Stderr, "load %v, filter %v (%d values, %d matches, %d workers)\n",
		loadDuration.Round(time.Microsecond), filterDuration.Round(time.Microsecond),
		len(values), result.Total, opts.workers)
	return nil
}
