package scanfilter

import (
	"errors"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/tamirms/scanfilter/internal/encoding"
)

// WriteFile writes values to path, one per line, in a form LoadFile reads
// back exactly. An existing file is truncated.
//
// The file is sized up front, memory-mapped read-write and formatted in
// place; no intermediate buffer holds the whole text.
func WriteFile[T Number](path string, values []T) error {
	size := 0
	var scratch [32]byte
	for _, v := range values {
		size += len(encoding.AppendValue(scratch[:0], v)) + 1
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create value file: %w", err)
	}
	if size == 0 {
		return file.Close()
	}

	// Pre-allocate disk blocks so a full disk fails here rather than as
	// SIGBUS during the mapped writes.
	if err := fallocateFile(file, int64(size)); err != nil {
		primaryErr := fmt.Errorf("allocate value file: %w", err)
		return errors.Join(primaryErr, file.Close())
	}

	mm, err := mmap.MapRegion(file, size, mmap.RDWR, 0, 0)
	if err != nil {
		primaryErr := fmt.Errorf("mmap value file: %w", err)
		return errors.Join(primaryErr, file.Close())
	}
	prefaultRegion(mm)

	// Appending within capacity writes straight into the mapping.
	dst := []byte(mm)[:0]
	for _, v := range values {
		dst = encoding.AppendValue(dst, v)
		dst = append(dst, '\n')
	}
	if len(dst) != size {
		primaryErr := fmt.Errorf("value file: formatted %d bytes, sized for %d", len(dst), size)
		return errors.Join(primaryErr, mm.Unmap(), file.Close())
	}

	if err := mm.Flush(); err != nil {
		primaryErr := fmt.Errorf("flush value file: %w", err)
		return errors.Join(primaryErr, mm.Unmap(), file.Close())
	}
	if err := mm.Unmap(); err != nil {
		return errors.Join(fmt.Errorf("unmap value file: %w", err), file.Close())
	}
	return file.Close()
}
