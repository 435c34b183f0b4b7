package filestore

import "github.com/aweris/filestore/internal/store"

// Source is content submitted to Put: either a Buffer or a FileRef.
// Re-exported from internal/store for convenience.
type Source = store.Source

// Buffer returns a Source for in-memory content.
func Buffer(data []byte) Source { return store.Buffer(data) }

// FileRef returns a Source for the file at path. Storing it copies the file;
// the original is never moved or modified.
func FileRef(path string) Source { return store.FileRef(path) }
