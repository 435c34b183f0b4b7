package hasher

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aweris/filestore/internal/store"
)

// SHA-224 test vectors from FIPS 180-2.
func TestBytes_Vectors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "d14a028c2a3a2bc9476102bb288234c415a2b01f828ea62ac5b3e42f"},
		{"abc", "abc", "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bytes([]byte(tt.in))
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, 2*Size)
		})
	}
}

func TestFile_MatchesBytes(t *testing.T) {
	// Larger than one chunk and not a multiple of it.
	data := bytes.Repeat([]byte("0123456789abcdef"), ChunkSize/4+3)
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, data, 0600))

	got, err := File(path)
	require.NoError(t, err)
	assert.Equal(t, Bytes(data), got)
}

func TestFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	got, err := File(path)
	require.NoError(t, err)
	assert.Equal(t, Bytes(nil), got)
}

func TestFile_Missing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "cannot open content file for hashing")
}

func TestReader_OneByteReads(t *testing.T) {
	data := []byte(strings.Repeat("x", 10000))
	got, err := Reader(iotest.OneByteReader(bytes.NewReader(data)))
	require.NoError(t, err)
	assert.Equal(t, Bytes(data), got)
}

func TestReader_DataWithEOF(t *testing.T) {
	data := []byte("tail data")
	got, err := Reader(iotest.DataErrReader(bytes.NewReader(data)))
	require.NoError(t, err)
	assert.Equal(t, Bytes(data), got)
}

func TestReader_Error(t *testing.T) {
	boom := errors.New("boom")
	_, err := Reader(iotest.ErrReader(boom))
	assert.ErrorIs(t, err, boom)
}

func TestSum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.bin")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0600))

	fromBuf, err := Sum(store.Buffer([]byte("abc")))
	require.NoError(t, err)
	fromFile, err := Sum(store.FileRef(path))
	require.NoError(t, err)
	assert.Equal(t, fromBuf, fromFile)

	_, err = Sum(store.Source{})
	assert.Error(t, err)
}
