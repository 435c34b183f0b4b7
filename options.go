package filestore

import (
	"io/fs"
	"runtime"

	"github.com/aweris/filestore/internal/lock"
)

// LockMode selects how concurrent operations on the same key are serialized.
type LockMode = lock.Mode

const (
	// LockProcess serializes operations on a key within this process.
	LockProcess = lock.ModeProcess
	// LockFile additionally takes an advisory lock on the key's shard so
	// separate processes sharing a root are serialized too.
	LockFile = lock.ModeFile
	// LockNone disables serialization. Concurrent stores and deletes of the
	// same content can then lose refcount updates.
	LockNone = lock.ModeNone
)

// ParseLockMode parses "process", "file" or "none".
func ParseLockMode(s string) (LockMode, error) {
	return lock.ParseMode(s)
}

// Options configures a Store.
type Options struct {
	LockMode    LockMode
	FileMode    fs.FileMode
	DirMode     fs.FileMode
	Concurrency int
}

// Option is a functional option for configuring Open.
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		LockMode:    LockProcess,
		FileMode:    0644,
		DirMode:     0755,
		Concurrency: runtime.GOMAXPROCS(0),
	}
}

// WithLockMode sets the locking strategy.
func WithLockMode(mode LockMode) Option {
	return func(o *Options) { o.LockMode = mode }
}

// WithFileMode sets the permission of content and refcount files.
func WithFileMode(mode fs.FileMode) Option {
	return func(o *Options) {
		if mode != 0 {
			o.FileMode = mode
		}
	}
}

// WithDirMode sets the permission of the root and shard directories.
func WithDirMode(mode fs.FileMode) Option {
	return func(o *Options) {
		if mode != 0 {
			o.DirMode = mode
		}
	}
}

// WithConcurrency sets the number of shards scanned in parallel by Stats and
// Check.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Concurrency = n
		}
	}
}
