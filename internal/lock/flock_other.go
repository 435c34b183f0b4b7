//go:build !unix

package lock

import "os"

// Without flock the file is only opened; serialization falls back to the
// in-process table.
func acquire(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
}

func releaseFile(f *os.File) {
	if f == nil {
		return
	}
	_ = f.Close()
}
