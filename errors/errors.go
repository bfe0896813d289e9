// Package errors defines all exported error sentinels for the scanfilter library.
//
// This is the single source of truth for error values. Both the top-level
// scanfilter package and its internal packages import from here,
// ensuring errors.Is checks work across package boundaries.
package errors

import "errors"

// ErrConfiguration is matched by every configuration sentinel below, so
// callers can test for the whole family with a single errors.Is.
var ErrConfiguration = errors.New("scanfilter: invalid configuration")

// Configuration errors. Detected before any worker starts.
var (
	ErrNegativeWorkers   = configError("scanfilter: worker count is negative")
	ErrNegativeLength    = configError("scanfilter: value count is negative")
	ErrInvalidChunkWidth = configError("scanfilter: chunk width must be at least 1")
	ErrInvalidThreshold  = configError("scanfilter: threshold is NaN")
	ErrOutputTooSmall    = configError("scanfilter: output buffer shorter than input")
	ErrOverlappingOutput = configError("scanfilter: output buffer overlaps input")
	ErrMalformedValue    = configError("scanfilter: line is not a numeric literal")
)

// Source errors
var (
	ErrSourceExhausted = errors.New("scanfilter: source contains fewer values than specified")
)

// Execution errors
var (
	ErrWorkerFailed = errors.New("scanfilter: partition worker failed")
)

type sentinel struct{ msg string }

func configError(msg string) error { return &sentinel{msg: msg} }

func (s *sentinel) Error() string { return s.msg }

func (s *sentinel) Is(target error) bool { return target == ErrConfiguration }
