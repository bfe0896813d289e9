//go:build linux

package scanfilter

import (
	"os"

	"golang.org/x/sys/unix"
)

// fallocateFile reserves size bytes for file and sets its length.
// Filesystems without fallocate support (NFS, some FUSE mounts) fall back to
// a plain ftruncate.
func fallocateFile(file *os.File, size int64) error {
	fd := int(file.Fd())
	if err := unix.Fallocate(fd, 0, 0, size); err != nil {
		return unix.Ftruncate(fd, size)
	}
	// Mode 0 already extends the file, but ftruncate keeps the length exact
	// if the file existed and was longer.
	return unix.Ftruncate(fd, size)
}
