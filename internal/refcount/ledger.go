// Package refcount persists per-key reference counts.
//
// A record is a 4-byte big-endian unsigned integer stored next to the content
// file. A missing record means zero. The ledger does no locking; callers
// serialize read-modify-write sequences themselves.
package refcount

import (
	"encoding/binary"
	"errors"
	"io"
	"io/fs"
	"math"
	"os"

	"github.com/aweris/filestore/internal/ioerr"
	"github.com/aweris/filestore/internal/layout"
)

// RecordSize is the on-disk size of a refcount record.
const RecordSize = 4

// ErrOverflow is returned when an increment would exceed math.MaxUint32.
var ErrOverflow = errors.New("refcount: overflow")

// Ledger reads and writes refcount records under a root directory.
type Ledger struct {
	root string
	mode fs.FileMode
}

// New returns a Ledger for root writing records with mode.
func New(root string, mode fs.FileMode) *Ledger {
	if mode == 0 {
		mode = 0644
	}
	return &Ledger{root: root, mode: mode}
}

// Get returns the count for key. A missing record, or one cut short before
// all four bytes were written, counts as zero.
func (l *Ledger) Get(key string) (uint32, error) {
	path := layout.RefcountPath(l.root, key)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, ioerr.Wrap(err, "unable to open refcount file", path)
	}
	defer f.Close()

	var buf [RecordSize]byte
	if _, err := io.ReadFull(f, buf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, nil
		}
		return 0, ioerr.Wrap(err, "unable to read refcount file", path)
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// Set stores n for key. Zero removes the record.
func (l *Ledger) Set(key string, n uint32) (err error) {
	path := layout.RefcountPath(l.root, key)
	if n == 0 {
		return ioerr.Wrap(os.Remove(path), "unable to remove refcount file", path)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, l.mode)
	if err != nil {
		return ioerr.Wrap(err, "unable to open/create new refcount file", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioerr.Wrap(cerr, "unable to write refcount file", path)
		}
	}()

	var buf [RecordSize]byte
	binary.BigEndian.PutUint32(buf[:], n)
	if _, err := f.Write(buf[:]); err != nil {
		return ioerr.Wrap(err, "unable to write refcount file", path)
	}
	return nil
}

// Increment adds one to the count for key and returns the new value.
func (l *Ledger) Increment(key string) (uint32, error) {
	n, err := l.Get(key)
	if err != nil {
		return 0, err
	}
	if n == math.MaxUint32 {
		return n, ErrOverflow
	}
	n++
	if err := l.Set(key, n); err != nil {
		return 0, err
	}
	return n, nil
}

// Decrement subtracts one from the count for key and returns the new value.
// A count that is already zero is left alone and reported as zero with
// changed false.
func (l *Ledger) Decrement(key string) (n uint32, changed bool, err error) {
	n, err = l.Get(key)
	if err != nil || n == 0 {
		return 0, false, err
	}
	n--
	if err := l.Set(key, n); err != nil {
		return 0, false, err
	}
	return n, true, nil
}
