// Package layout maps keys to paths under a store root.
//
// Git-style sharding: the first two hex characters of a key name the shard
// directory and the rest name the file inside it.
//
//	root/
//	  ab/
//	    cd123...           content
//	    cd123....refcount  reference count
//	    .lock              advisory lock (file locking only)
package layout

import "path/filepath"

const (
	// ShardLen is the number of key characters used for the shard directory.
	ShardLen = 2

	// RefcountExt is appended to the content file name for the refcount record.
	RefcountExt = ".refcount"

	// LockName is the per-shard advisory lock file.
	LockName = ".lock"
)

func ShardDir(root, key string) string {
	return filepath.Join(root, key[:ShardLen])
}

func ContentPath(root, key string) string {
	return filepath.Join(ShardDir(root, key), key[ShardLen:])
}

func RefcountPath(root, key string) string {
	return filepath.Join(ShardDir(root, key), key[ShardLen:]+RefcountExt)
}

func LockPath(root, key string) string {
	return filepath.Join(ShardDir(root, key), LockName)
}

// KeyFromPath rebuilds a key from a shard directory name and a file name
// inside it. It reports false for anything that is not a content file of a
// key with the given length.
func KeyFromPath(shard, name string, keyLen int) (string, bool) {
	if len(shard) != ShardLen || len(shard)+len(name) != keyLen {
		return "", false
	}
	key := shard + name
	if !IsHex(key) {
		return "", false
	}
	return key, true
}

// IsHex reports whether s is non-empty lowercase hex.
func IsHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
