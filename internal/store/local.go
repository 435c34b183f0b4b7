package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/aweris/filestore/internal/ioerr"
)

// DefaultFileMode is the permission given to newly written content files.
const DefaultFileMode fs.FileMode = 0644

// Local persists content on the local filesystem.
//
// Local holds no state besides the file mode; every call goes to disk.
type Local struct {
	mode fs.FileMode
}

// NewLocal returns a Local that creates files with the given mode.
// A zero mode selects DefaultFileMode.
func NewLocal(mode fs.FileMode) *Local {
	if mode == 0 {
		mode = DefaultFileMode
	}
	return &Local{mode: mode}
}

// Put writes src to dst, creating or truncating dst.
func (l *Local) Put(src Source, dst string) error {
	switch src.Kind() {
	case KindBuffer:
		return l.writeBuffer(src.Data(), dst)
	case KindFileRef:
		return l.copyFile(src.Path(), dst)
	default:
		return fmt.Errorf("store: invalid source kind %d", src.Kind())
	}
}

func (l *Local) writeBuffer(data []byte, dst string) (err error) {
	f, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, l.mode)
	if err != nil {
		return ioerr.Wrap(err, "unable to open/create new file", dst)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioerr.Wrap(cerr, "unable to write new file", dst)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return ioerr.Wrap(err, "unable to write new file", dst)
	}
	return nil
}

// copyFile makes a real copy: the source may live on another device and must
// be left as it was.
func (l *Local) copyFile(srcPath, dst string) (err error) {
	in, err := os.Open(srcPath)
	if err != nil {
		return ioerr.Wrap(err, "unable to open source file", srcPath)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, l.mode)
	if err != nil {
		return ioerr.Wrap(err, "unable to open/create new file", dst)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = ioerr.Wrap(cerr, "unable to copy file", dst)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return ioerr.Wrap(err, "unable to copy file", dst)
	}
	return nil
}

// ReadAll loads the content at dst into memory.
func (l *Local) ReadAll(dst string) ([]byte, error) {
	f, err := os.Open(dst)
	if err != nil {
		return nil, ioerr.Wrap(err, "unable to open file for reading", dst)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, ioerr.Wrap(err, "unable to read to end of file", dst)
	}
	return data, nil
}

// Reference returns dst itself. Callers must treat the path as read-only.
func (l *Local) Reference(dst string) string {
	return dst
}

// Exists reports whether dst is present. Errors other than not-exist are
// returned to the caller.
func (l *Local) Exists(dst string) (bool, error) {
	_, err := os.Stat(dst)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, ioerr.Wrap(err, "unable to stat file", dst)
}

// Remove deletes the content at dst.
func (l *Local) Remove(dst string) error {
	return ioerr.Wrap(os.Remove(dst), "unable to remove file", dst)
}
