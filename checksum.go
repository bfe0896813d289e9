package scanfilter

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// checksumBatch is the number of values encoded per Digest.Write.
const checksumBatch = 512

// Checksum returns the xxHash64 of values encoded little-endian in order.
// Equal slices of the same element type give equal checksums, so two filter
// runs over the same input can be compared without keeping both outputs.
func Checksum[T Number](values []T) uint64 {
	h := xxhash.New()
	buf := make([]byte, 0, checksumBatch*8)
	for len(values) > 0 {
		n := min(len(values), checksumBatch)
		buf = buf[:0]
		for _, v := range values[:n] {
			buf = appendBinary(buf, v)
		}
		_, _ = h.Write(buf) // Digest.Write never fails
		values = values[n:]
	}
	return h.Sum64()
}

func appendBinary[T Number](dst []byte, v T) []byte {
	switch x := any(v).(type) {
	case float32:
		return binary.LittleEndian.AppendUint32(dst, math.Float32bits(x))
	case float64:
		return binary.LittleEndian.AppendUint64(dst, math.Float64bits(x))
	case int32:
		return binary.LittleEndian.AppendUint32(dst, uint32(x))
	case uint32:
		return binary.LittleEndian.AppendUint32(dst, x)
	case int:
		return binary.LittleEndian.AppendUint64(dst, uint64(x))
	case int64:
		return binary.LittleEndian.AppendUint64(dst, uint64(x))
	case uint64:
		return binary.LittleEndian.AppendUint64(dst, x)
	}
	panic("scanfilter: unsupported element type")
}
