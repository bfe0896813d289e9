package scanfilter

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"

	scanerrors "github.com/tamirms/scanfilter/errors"
	"github.com/tamirms/scanfilter/internal/encoding"
)

// LoadFile reads the first n newline-delimited values from the file at path.
// The file is memory-mapped read-only and unmapped before LoadFile returns.
// Lines after the n-th are ignored; fewer than n lines is ErrSourceExhausted.
func LoadFile[T Number](path string, n int, opts ...LoadOption) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", scanerrors.ErrNegativeLength, n)
	}
	cfg := defaultLoadConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source file: %w", err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat source file: %w", err)
	}
	if stat.Size() == 0 {
		// Zero-length mappings are rejected by mmap(2).
		return Load[T](nil, n)
	}

	if cfg.sequentialHint {
		fadviseSequential(int(file.Fd()), 0, stat.Size())
	}
	mm, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap source file: %w", err)
	}
	if cfg.sequentialHint {
		madviseSequential(mm)
	}

	values, err := Load[T]([]byte(mm), n)
	if uerr := mm.Unmap(); uerr != nil {
		err = errors.Join(err, fmt.Errorf("unmap source file: %w", uerr))
	}
	if err != nil {
		return nil, err
	}
	return values, nil
}

// Load parses the first n newline-delimited values from data.
// Surrounding whitespace on each line, including a CR before the LF, is
// ignored. The last line need not end in a newline. Blank lines are malformed.
func Load[T Number](data []byte, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", scanerrors.ErrNegativeLength, n)
	}

	// Every line but the last takes at least two bytes, which bounds the
	// allocation when n is larger than the source.
	values := make([]T, 0, min(n, (len(data)+1)/2))
	for line := 1; len(values) < n && len(data) > 0; line++ {
		var raw []byte
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			raw, data = data[:i], data[i+1:]
		} else {
			raw, data = data, nil
		}
		v, err := encoding.ParseValue[T](encoding.TrimLine(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", scanerrors.ErrMalformedValue, line, raw)
		}
		values = append(values, v)
	}
	if len(values) < n {
		return nil, fmt.Errorf("%w: read %d of %d", scanerrors.ErrSourceExhausted, len(values), n)
	}
	return values, nil
}
