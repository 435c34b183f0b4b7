package filestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/aweris/filestore/internal/hasher"
	"github.com/aweris/filestore/internal/ioerr"
	"github.com/aweris/filestore/internal/layout"
	"github.com/aweris/filestore/internal/lock"
	"github.com/aweris/filestore/internal/refcount"
	"github.com/aweris/filestore/internal/store"
)

var errInvalidSource = errors.New("filestore: invalid source")

// Store is a content-addressed file store rooted at a directory.
//
// A Store is safe for concurrent use. Separate Stores may share a root when
// they use LockFile.
type Store struct {
	root    string
	opts    *Options
	content *store.Local
	ledger  *refcount.Ledger
	locker  lock.Locker
}

// Open returns a store rooted at root, creating the directory if needed.
func Open(root string, opts ...Option) (*Store, error) {
	if root == "" {
		return nil, ErrInvalidRoot
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	if err := os.MkdirAll(root, options.DirMode); err != nil {
		return nil, ioerr.Wrap(err, "unable to create root directory", root)
	}

	locker, err := lock.New(options.LockMode, root)
	if err != nil {
		return nil, err
	}

	return &Store{
		root:    root,
		opts:    options,
		content: store.NewLocal(options.FileMode),
		ledger:  refcount.New(root, options.FileMode),
		locker:  locker,
	}, nil
}

func (s *Store) Root() string { return s.root }

// StoreData stores a copy of data.
func (s *Store) StoreData(data []byte) (FileKey, error) {
	return s.Put(Buffer(data))
}

// StoreFile stores a copy of the file at path. The copy is made even when
// path is on the same filesystem; the original is left untouched.
func (s *Store) StoreFile(path string) (FileKey, error) {
	return s.Put(FileRef(path))
}

// Put stores src and returns its key. Storing content that is already
// present adds a reference instead of a second copy.
//
// Steps that completed before a failure are not rolled back.
func (s *Store) Put(src Source) (FileKey, error) {
	if !src.Valid() {
		return "", errInvalidSource
	}

	sum, err := hasher.Sum(src)
	if err != nil {
		return "", err
	}
	key := FileKey(sum)

	shard := layout.ShardDir(s.root, sum)
	if err := os.Mkdir(shard, s.opts.DirMode); err != nil && !errors.Is(err, fs.ErrExist) {
		return "", ioerr.Wrap(err, "unable to create shard directory", shard)
	}

	unlock, err := s.locker.Lock(sum)
	if err != nil {
		return "", err
	}
	defer unlock()

	path := layout.ContentPath(s.root, sum)
	exists, err := s.content.Exists(path)
	if err != nil {
		return "", err
	}
	// Same key means same content; the bytes are not compared.
	if !exists {
		if err := s.content.Put(src, path); err != nil {
			return "", err
		}
	}

	if _, err := s.ledger.Increment(sum); err != nil {
		return "", err
	}
	return key, nil
}

// RetrieveData returns the content stored under key, or ErrNotFound.
func (s *Store) RetrieveData(key FileKey) ([]byte, error) {
	path, err := s.lookup(key)
	if err != nil {
		return nil, err
	}

	data, err := s.content.ReadAll(path)
	if err != nil {
		// Deleted between the lookup and the read.
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, err
	}
	return data, nil
}

// RetrieveFile returns the path of the stored copy for key, or ErrNotFound.
//
// The path points at the only copy. Do not modify or remove it; use Delete
// so the refcount stays correct.
func (s *Store) RetrieveFile(key FileKey) (string, error) {
	path, err := s.lookup(key)
	if err != nil {
		return "", err
	}
	return s.content.Reference(path), nil
}

func (s *Store) lookup(key FileKey) (string, error) {
	if err := key.Validate(); err != nil {
		return "", err
	}
	path := layout.ContentPath(s.root, string(key))
	exists, err := s.content.Exists(path)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return path, nil
}

// Delete drops one reference to key and removes the content when none are
// left. Deleting a key with no references is a no-op.
//
// The refcount is written before the content is removed; if the removal fails
// the content stays behind with a refcount of zero and Check reports it.
func (s *Store) Delete(key FileKey) error {
	if err := key.Validate(); err != nil {
		return err
	}
	sum := string(key)

	unlock, err := s.locker.Lock(sum)
	if err != nil {
		// No shard means nothing was ever stored under this key.
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	defer unlock()

	n, changed, err := s.ledger.Decrement(sum)
	if err != nil {
		return err
	}
	if !changed || n > 0 {
		return nil
	}
	return s.content.Remove(layout.ContentPath(s.root, sum))
}

// Refcount returns the number of references currently held on key.
func (s *Store) Refcount(key FileKey) (uint32, error) {
	if err := key.Validate(); err != nil {
		return 0, err
	}
	return s.ledger.Get(string(key))
}
