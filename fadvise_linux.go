//go:build linux

package scanfilter

import "golang.org/x/sys/unix"

// fadviseSequential tells the kernel the source file is read front to back,
// enlarging readahead for the parse. Best-effort: errors are ignored.
func fadviseSequential(fd int, offset, length int64) {
	_ = unix.Fadvise(fd, offset, length, unix.FADV_SEQUENTIAL)
}

// madviseSequential applies the same hint to a read-only mapping of the file.
func madviseSequential(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
}
