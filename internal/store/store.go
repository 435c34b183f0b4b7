// Package store implements the content repository: the layer that moves raw
// bytes between a caller's source and the managed copy under the store root.
//
// Sources come in two kinds:
//   - Buffer: bytes held in memory, written to and read back from disk whole
//   - FileRef: a path to an external file, copied byte for byte into the store
//     and handed back as a path to the managed copy
package store

// Kind identifies the variant held by a Source.
type Kind uint8

const (
	KindBuffer Kind = iota + 1
	KindFileRef
)

func (k Kind) String() string {
	switch k {
	case KindBuffer:
		return "buffer"
	case KindFileRef:
		return "file"
	default:
		return "unknown"
	}
}

// Source is content submitted for storage. The zero value is invalid; build
// one with Buffer or FileRef.
type Source struct {
	kind Kind
	data []byte
	path string
}

// Buffer returns a Source for in-memory content.
func Buffer(data []byte) Source {
	return Source{kind: KindBuffer, data: data}
}

// FileRef returns a Source for the file at path. The file is read when the
// source is stored, not when the Source is created.
func FileRef(path string) Source {
	return Source{kind: KindFileRef, path: path}
}

func (s Source) Kind() Kind   { return s.kind }
func (s Source) Data() []byte { return s.data }
func (s Source) Path() string { return s.path }
func (s Source) Valid() bool  { return s.kind == KindBuffer || s.kind == KindFileRef }
