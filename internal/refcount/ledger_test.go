package refcount

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aweris/filestore/internal/layout"
)

const key = "abcdef0123456789abcdef0123456789abcdef0123456789abcdef01"

func newTestLedger(t *testing.T) (*Ledger, string) {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(layout.ShardDir(root, key), 0755))
	return New(root, 0), root
}

func TestGet_Missing(t *testing.T) {
	l, _ := newTestLedger(t)
	n, err := l.Get(key)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSetGet(t *testing.T) {
	l, root := newTestLedger(t)

	require.NoError(t, l.Set(key, 0x01020304))

	raw, err := os.ReadFile(layout.RefcountPath(root, key))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, raw)

	n, err := l.Get(key)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), n)
}

func TestSet_Truncates(t *testing.T) {
	l, root := newTestLedger(t)
	path := layout.RefcountPath(root, key)
	require.NoError(t, os.WriteFile(path, []byte{9, 9, 9, 9, 9, 9, 9, 9}, 0644))

	require.NoError(t, l.Set(key, 7))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 7}, raw)
}

func TestSet_ZeroRemoves(t *testing.T) {
	l, root := newTestLedger(t)
	require.NoError(t, l.Set(key, 3))
	require.NoError(t, l.Set(key, 0))

	_, err := os.Stat(layout.RefcountPath(root, key))
	assert.True(t, os.IsNotExist(err))
}

func TestSet_ZeroMissingFails(t *testing.T) {
	l, _ := newTestLedger(t)
	err := l.Set(key, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "unable to remove refcount file")
}

func TestGet_Truncated(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"empty", []byte{}},
		{"one byte", []byte{0x01}},
		{"three bytes", []byte{0x00, 0x00, 0x05}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, root := newTestLedger(t)
			require.NoError(t, os.WriteFile(layout.RefcountPath(root, key), tt.raw, 0644))

			n, err := l.Get(key)
			require.NoError(t, err)
			assert.Zero(t, n)
		})
	}
}

func TestGet_OpenError(t *testing.T) {
	l, root := newTestLedger(t)
	// A directory in place of the record cannot be read as one.
	require.NoError(t, os.Mkdir(layout.RefcountPath(root, key), 0755))

	_, err := l.Get(key)
	assert.Error(t, err)
}

func TestIncrementDecrement(t *testing.T) {
	l, _ := newTestLedger(t)

	for want := uint32(1); want <= 3; want++ {
		n, err := l.Increment(key)
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}

	n, changed, err := l.Decrement(key)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, uint32(2), n)
}

func TestDecrement_Floor(t *testing.T) {
	l, root := newTestLedger(t)

	n, changed, err := l.Decrement(key)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Zero(t, n)

	_, statErr := os.Stat(filepath.Join(layout.ShardDir(root, key)))
	assert.NoError(t, statErr)
}

func TestDecrement_ToZeroRemoves(t *testing.T) {
	l, root := newTestLedger(t)
	_, err := l.Increment(key)
	require.NoError(t, err)

	n, changed, err := l.Decrement(key)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Zero(t, n)

	_, err = os.Stat(layout.RefcountPath(root, key))
	assert.True(t, os.IsNotExist(err))
}

func TestIncrement_Overflow(t *testing.T) {
	l, _ := newTestLedger(t)
	require.NoError(t, l.Set(key, math.MaxUint32))

	_, err := l.Increment(key)
	assert.ErrorIs(t, err, ErrOverflow)

	n, err := l.Get(key)
	require.NoError(t, err)
	assert.Equal(t, uint32(math.MaxUint32), n)
}
