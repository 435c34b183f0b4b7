// Package filestore provides a deduplicating content-addressed file store.
//
// Content is stored under a key derived from the content itself: the
// lowercase hex SHA-224 digest. Storing the same bytes twice returns the same
// key, keeps one copy on disk and records two references. Content is removed
// when the last reference is deleted.
//
// Basic usage:
//
//	fs, _ := filestore.Open("/var/lib/filestore")
//
//	// Store bytes or a copy of a file
//	key, _ := fs.StoreData([]byte("hello"))
//	key2, _ := fs.StoreFile("/tmp/report.pdf")
//
//	// Read back into memory, or get the path of the managed copy
//	data, _ := fs.RetrieveData(key)
//	path, _ := fs.RetrieveFile(key2)
//
//	// Missing content is reported with ErrNotFound
//	if _, err := fs.RetrieveData(key); errors.Is(err, filestore.ErrNotFound) { ... }
//
//	// Drop a reference; content goes away with the last one
//	fs.Delete(key)
//
// On disk, keys are sharded by their first two characters:
//
//	root/
//	  ab/
//	    cdef0123...           content
//	    cdef0123....refcount  4-byte big-endian reference count
//
// Operations on the same key are serialized within a process by default.
// Use WithLockMode(LockFile) when several processes share one root.
//
// Keys round-trip through text, JSON, YAML, CBOR and SQL columns, so a host
// application can persist them as opaque strings.
package filestore
