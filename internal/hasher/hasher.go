// Package hasher derives content keys: lowercase hex SHA-224 digests.
package hasher

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/aweris/filestore/internal/ioerr"
	"github.com/aweris/filestore/internal/store"
)

// ChunkSize is the read size used when streaming a file through the hash.
const ChunkSize = 4096

// Size is the digest length in bytes; keys are twice as long in hex.
const Size = sha256.Size224

// Bytes hashes data in one pass.
func Bytes(data []byte) string {
	sum := sha256.Sum224(data)
	return hex.EncodeToString(sum[:])
}

// File hashes the file at path without loading it whole.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", ioerr.Wrap(err, "cannot open content file for hashing", path)
	}
	defer f.Close()

	sum, err := Reader(f)
	if err != nil {
		return "", ioerr.Wrap(err, "unable to read file to hash", path)
	}
	return sum, nil
}

// Reader hashes r in ChunkSize reads until a read returns no data.
func Reader(r io.Reader) (string, error) {
	h := sha256.New224()
	buf := make([]byte, ChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF || (n == 0 && err == nil) {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Sum hashes a store source.
func Sum(src store.Source) (string, error) {
	switch src.Kind() {
	case store.KindBuffer:
		return Bytes(src.Data()), nil
	case store.KindFileRef:
		return File(src.Path())
	default:
		return "", fmt.Errorf("hasher: invalid source kind %d", src.Kind())
	}
}
