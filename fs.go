package filestore

import (
	"context"
	"iter"
)

// FS is a deduplicating content-addressed file store.
type FS interface {
	Put(src Source) (FileKey, error)
	StoreData(data []byte) (FileKey, error)
	StoreFile(path string) (FileKey, error)

	RetrieveData(key FileKey) ([]byte, error) // ErrNotFound when absent
	RetrieveFile(key FileKey) (string, error) // read-only path into the store
	Delete(key FileKey) error                 // drops one reference

	Refcount(key FileKey) (uint32, error)
	Keys() iter.Seq2[FileKey, error]
	Stats(ctx context.Context) (Stats, error)
	Check(ctx context.Context) ([]Problem, error)

	Root() string
}

var _ FS = (*Store)(nil)
