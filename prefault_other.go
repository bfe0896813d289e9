//go:build !linux

package scanfilter

// prefaultRegion is a no-op off Linux.
func prefaultRegion(data []byte) {}
