package partition

import (
	"errors"
	"fmt"
	"testing"

	scanerrors "github.com/tamirms/scanfilter/errors"
)

func TestNewRejectsInvalid(t *testing.T) {
	tests := []struct {
		name       string
		n, w, c    int
		wantTarget error
	}{
		{"negative length", -1, 2, 4, scanerrors.ErrNegativeLength},
		{"negative workers", 10, -1, 4, scanerrors.ErrNegativeWorkers},
		{"zero chunk width", 10, 2, 0, scanerrors.ErrInvalidChunkWidth},
		{"negative chunk width", 10, 2, -3, scanerrors.ErrInvalidChunkWidth},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.n, tc.w, tc.c)
			if !errors.Is(err, tc.wantTarget) {
				t.Fatalf("New(%d, %d, %d) error = %v, want %v", tc.n, tc.w, tc.c, err, tc.wantTarget)
			}
			if !errors.Is(err, scanerrors.ErrConfiguration) {
				t.Errorf("error %v does not match ErrConfiguration", err)
			}
		})
	}
}

func TestZeroWorkersAllResidue(t *testing.T) {
	p, err := New(13, 0, DefaultChunkWidth)
	if err != nil {
		t.Fatal(err)
	}
	if p.Partitions() != 0 {
		t.Errorf("Partitions() = %d, want 0", p.Partitions())
	}
	lo, hi := p.Residue()
	if lo != 0 || hi != 13 {
		t.Errorf("Residue() = [%d, %d), want [0, 13)", lo, hi)
	}
}

func TestShortInputAllResidue(t *testing.T) {
	// 13 < 4*4 so every partition is empty.
	p, err := New(13, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if p.ChunksPerPartition() != 0 {
		t.Fatalf("ChunksPerPartition() = %d, want 0", p.ChunksPerPartition())
	}
	for i := range p.Partitions() {
		lo, hi := p.Bounds(i)
		if lo != hi {
			t.Errorf("partition %d = [%d, %d), want empty", i, lo, hi)
		}
	}
	lo, hi := p.Residue()
	if lo != 0 || hi != 13 {
		t.Errorf("Residue() = [%d, %d), want [0, 13)", lo, hi)
	}
}

func TestHugeChunkWidthDoesNotOverflow(t *testing.T) {
	p, err := New(100, 1<<40, 1<<40)
	if err != nil {
		t.Fatal(err)
	}
	if p.ChunksPerPartition() != 0 {
		t.Errorf("ChunksPerPartition() = %d, want 0", p.ChunksPerPartition())
	}
	if lo, hi := p.Residue(); lo != 0 || hi != 100 {
		t.Errorf("Residue() = [%d, %d), want [0, 100)", lo, hi)
	}
}

// TestCoverage verifies partitions are disjoint, contiguous, in order, and
// together with the residue cover [0, N) exactly once.
func TestCoverage(t *testing.T) {
	for _, c := range []int{1, 3, 4, 8} {
		for n := 0; n <= 70; n++ {
			for w := 0; w <= 9; w++ {
				t.Run(fmt.Sprintf("C=%d/N=%d/T=%d", c, n, w), func(t *testing.T) {
					p, err := New(n, w, c)
					if err != nil {
						t.Fatal(err)
					}
					next := 0
					for i := range p.Partitions() {
						lo, hi := p.Bounds(i)
						if lo != next {
							t.Fatalf("partition %d starts at %d, want %d", i, lo, next)
						}
						if (hi-lo)%c != 0 {
							t.Fatalf("partition %d width %d not a multiple of %d", i, hi-lo, c)
						}
						next = hi
					}
					lo, hi := p.Residue()
					if lo != next || hi != n {
						t.Fatalf("Residue() = [%d, %d), want [%d, %d)", lo, hi, next, n)
					}
					if w > 0 && hi-lo >= c*w {
						t.Fatalf("residue size %d not < C*T = %d", hi-lo, c*w)
					}
				})
			}
		}
	}
}
