//go:build !linux

package scanfilter

// fadviseSequential is a no-op off Linux.
func fadviseSequential(fd int, offset, length int64) {}

// madviseSequential is a no-op off Linux.
func madviseSequential(data []byte) {}
