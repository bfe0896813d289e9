// Package partition divides an input index range into per-worker partitions
// of fixed-width chunks plus a residue tail.
//
// Layout for N elements, T workers and chunk width C:
//
//	P = N / (C*T)                      chunks per partition
//	partition i = [C*i*P, C*(i+1)*P)   elements
//	residue     = [C*T*P, N)           handled sequentially, always < C*T elements
//
// T = 0 yields zero partitions; every element is residue.
package partition

import (
	"fmt"
	"math"

	scanerrors "github.com/tamirms/scanfilter/errors"
)

// DefaultChunkWidth is the number of consecutive elements a pass examines per
// unrolled step.
const DefaultChunkWidth = 4

// Plan is an immutable partitioning of [0, N). It is computed once per call
// and shared by every pass, so all passes agree on the same bounds.
type Plan struct {
	n                  int
	workers            int
	chunkWidth         int
	chunksPerPartition int
}

// New validates its inputs and computes the plan.
func New(n, workers, chunkWidth int) (Plan, error) {
	if n < 0 {
		return Plan{}, fmt.Errorf("%w: %d", scanerrors.ErrNegativeLength, n)
	}
	if workers < 0 {
		return Plan{}, fmt.Errorf("%w: %d", scanerrors.ErrNegativeWorkers, workers)
	}
	if chunkWidth < 1 {
		return Plan{}, fmt.Errorf("%w: %d", scanerrors.ErrInvalidChunkWidth, chunkWidth)
	}

	p := Plan{n: n, workers: workers, chunkWidth: chunkWidth}
	if workers > 0 && chunkWidth <= math.MaxInt/workers {
		p.chunksPerPartition = n / (chunkWidth * workers)
	}
	return p, nil
}

// Partitions returns the number of partitions (T).
func (p Plan) Partitions() int { return p.workers }

// ChunkWidth returns C.
func (p Plan) ChunkWidth() int { return p.chunkWidth }

// ChunksPerPartition returns P. Zero when N < C*T.
func (p Plan) ChunksPerPartition() int { return p.chunksPerPartition }

// Bounds returns the half-open element range [lo, hi) owned by partition i.
// hi-lo is always a multiple of ChunkWidth.
func (p Plan) Bounds(i int) (lo, hi int) {
	span := p.chunkWidth * p.chunksPerPartition
	return i * span, (i + 1) * span
}

// Residue returns the half-open element range [lo, N) not covered by any
// partition.
func (p Plan) Residue() (lo, hi int) {
	return p.workers * p.chunkWidth * p.chunksPerPartition, p.n
}
