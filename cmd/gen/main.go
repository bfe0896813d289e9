// Gen writes a reproducible newline-delimited dataset for scanfilter.
//
// Value i is derived from xxh3(i, seed), so the same flags always produce the
// same file and any slice of it can be regenerated independently.
//
// Usage:
//
//	go run ./cmd/gen -n 10000000 -min 0 -max 100 -out data.txt
//
// Flags:
//
//	-n     Number of values (default: 1,000,000)
//	-min   Lower bound, inclusive (default: 0)
//	-max   Upper bound, exclusive (default: 100)
//	-seed  Hash seed (default: 1)
//	-type  Element type: float32, float64 or int64 (default: float32)
//	-out   Output path (required)
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/zeebo/xxh3"

	"github.com/tamirms/scanfilter"
	"github.com/tamirms/scanfilter/internal/bits"
)

func main() {
	nFlag := flag.Int("n", 1_000_000, "number of values")
	minFlag := flag.Float64("min", 0, "lower bound (inclusive)")
	maxFlag := flag.Float64("max", 100, "upper bound (exclusive)")
	seedFlag := flag.Uint64("seed", 1, "hash seed")
	typeFlag := flag.String("type", "float32", "element type: float32, float64 or int64")
	outFlag := flag.String("out", "", "output path")
	flag.Parse()

	if *outFlag == "" {
		fmt.Fprintln(os.Stderr, "-out is required")
		os.Exit(2)
	}
	if *nFlag < 0 || *maxFlag <= *minFlag {
		fmt.Fprintln(os.Stderr, "need -n >= 0 and -max > -min")
		os.Exit(2)
	}

	start := time.Now()
	var err error
	switch *typeFlag {
	case "float32":
		err = scanfilter.WriteFile(*outFlag, generate(*nFlag, *seedFlag, func(h uint64) float32 {
			return float32(bits.Lerp(h, *minFlag, *maxFlag))
		}))
	case "float64":
		err = scanfilter.WriteFile(*outFlag, generate(*nFlag, *seedFlag, func(h uint64) float64 {
			return bits.Lerp(h, *minFlag, *maxFlag)
		}))
	case "int64":
		lo, hi := int64(math.Ceil(*minFlag)), int64(math.Ceil(*maxFlag))
		if hi <= lo {
			fmt.Fprintln(os.Stderr, "[-min, -max) contains no integers")
			os.Exit(2)
		}
		span := uint64(hi - lo)
		err = scanfilter.WriteFile(*outFlag, generate(*nFlag, *seedFlag, func(h uint64) int64 {
			return lo + int64(bits.FastRange64(h, span))
		}))
	default:
		err = fmt.Errorf("unknown type %q (use float32, float64 or int64)", *typeFlag)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d values to %s in %v\n", *nFlag, *outFlag, time.Since(start).Round(time.Millisecond))
}

// generate returns n values where value i = conv(xxh3(i, seed)).
func generate[T scanfilter.Number](n int, seed uint64, conv func(h uint64) T) []T {
	values := make([]T, n)
	var key [8]byte
	for i := range values {
		binary.LittleEndian.PutUint64(key[:], uint64(i))
		values[i] = conv(xxh3.HashSeed(key[:], seed))
	}
	return values
}
