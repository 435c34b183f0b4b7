package lock

import (
	"github.com/aweris/filestore/internal/ioerr"
	"github.com/aweris/filestore/internal/layout"
)

// File serializes a key across processes with an advisory lock on the lock
// file of the key's shard. The shard directory must already exist.
//
// Goroutines in this process are queued on the in-process table first, so
// at most one file lock per key is requested at a time from here.
type File struct {
	root  string
	table *Table
}

func NewFile(root string) *File {
	return &File{root: root, table: NewTable()}
}

func (f *File) Lock(key string) (func(), error) {
	release, _ := f.table.Lock(key)

	path := layout.LockPath(f.root, key)
	fl, err := acquire(path)
	if err != nil {
		release()
		return nil, ioerr.Wrap(err, "unable to lock shard", path)
	}

	return func() {
		releaseFile(fl)
		release()
	}, nil
}
