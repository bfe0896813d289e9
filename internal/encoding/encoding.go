// Package encoding implements the newline-delimited numeric text codec used
// for input files and reports.
//
// Each value is one ASCII numeric literal. Floats are written in their
// shortest round-trip form so a written file reloads bit-identically.
package encoding

import (
	"strconv"
	"unsafe"
)

// Number is the set of element types the codec understands.
type Number interface {
	int | int32 | int64 | uint32 | uint64 | float32 | float64
}

// ParseValue parses one literal. b must already be trimmed.
func ParseValue[T Number](b []byte) (T, error) {
	// strconv does not retain its argument, so aliasing b is safe.
	s := unsafe.String(unsafe.SliceData(b), len(b))

	var zero T
	switch any(zero).(type) {
	case float32:
		f, err := strconv.ParseFloat(s, 32)
		return T(f), err
	case float64:
		f, err := strconv.ParseFloat(s, 64)
		return T(f), err
	case int32:
		i, err := strconv.ParseInt(s, 10, 32)
		return T(i), err
	case int, int64:
		i, err := strconv.ParseInt(s, 10, 64)
		return T(i), err
	case uint32:
		u, err := strconv.ParseUint(s, 10, 32)
		return T(u), err
	case uint64:
		u, err := strconv.ParseUint(s, 10, 64)
		return T(u), err
	}
	panic("encoding: ParseValue: unsupported type")
}

// AppendValue appends the shortest literal that parses back to v.
func AppendValue[T Number](dst []byte, v T) []byte {
	switch x := any(v).(type) {
	case float32:
		return strconv.AppendFloat(dst, float64(x), 'g', -1, 32)
	case float64:
		return strconv.AppendFloat(dst, x, 'g', -1, 64)
	}
	return appendInteger(dst, v)
}

// AppendFixed appends v for human-readable reports: floats with six
// fractional digits (the C "%f" form), integers in decimal.
func AppendFixed[T Number](dst []byte, v T) []byte {
	switch x := any(v).(type) {
	case float32:
		return strconv.AppendFloat(dst, float64(x), 'f', 6, 32)
	case float64:
		return strconv.AppendFloat(dst, x, 'f', 6, 64)
	}
	return appendInteger(dst, v)
}

func appendInteger[T Number](dst []byte, v T) []byte {
	switch x := any(v).(type) {
	case int:
		return strconv.AppendInt(dst, int64(x), 10)
	case int32:
		return strconv.AppendInt(dst, int64(x), 10)
	case int64:
		return strconv.AppendInt(dst, x, 10)
	case uint32:
		return strconv.AppendUint(dst, uint64(x), 10)
	case uint64:
		return strconv.AppendUint(dst, x, 10)
	}
	panic("encoding: unsupported type")
}

// TrimLine strips leading and trailing ASCII whitespace, including the '\r'
// of CRLF line endings.
func TrimLine(b []byte) []byte {
	for len(b) > 0 && isSpace(b[0]) {
		b = b[1:]
	}
	for len(b) > 0 && isSpace(b[len(b)-1]) {
		b = b[:len(b)-1]
	}
	return b
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\v' || c == '\f'
}
