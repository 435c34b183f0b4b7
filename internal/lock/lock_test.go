package lock

import (
	"os"
	"testing"
	"time"

	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aweris/filestore/internal/layout"
)

const key = "abcdef0123456789abcdef0123456789abcdef0123456789abcdef01"

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeProcess, false},
		{"process", ModeProcess, false},
		{"FILE", ModeFile, false},
		{" none ", ModeNone, false},
		{"global", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	l, err := New(ModeNone, "")
	require.NoError(t, err)
	assert.IsType(t, None{}, l)

	l, err = New(ModeProcess, "")
	require.NoError(t, err)
	assert.IsType(t, &Table{}, l)

	l, err = New(ModeFile, t.TempDir())
	require.NoError(t, err)
	assert.IsType(t, &File{}, l)

	_, err = New(Mode("bogus"), "")
	assert.Error(t, err)
}

// counterTest increments a shared counter with a deliberate gap between the
// read and the write; only a working lock keeps every increment.
func counterTest(t *testing.T, l Locker, n int) int {
	t.Helper()
	counter := 0
	var wg conc.WaitGroup
	for i := 0; i < n; i++ {
		wg.Go(func() {
			unlock, err := l.Lock(key)
			if !assert.NoError(t, err) {
				return
			}
			v := counter
			time.Sleep(time.Millisecond)
			counter = v + 1
			unlock()
		})
	}
	wg.Wait()
	return counter
}

func TestTable_Serializes(t *testing.T) {
	table := NewTable()
	assert.Equal(t, 20, counterTest(t, table, 20))
	assert.Zero(t, table.Len())
}

func TestTable_IndependentKeys(t *testing.T) {
	table := NewTable()
	unlockA, _ := table.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB, _ := table.Lock("b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("lock on b blocked behind a")
	}
	assert.Equal(t, 1, table.Len())
}

func TestFile_Serializes(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(layout.ShardDir(root, key), 0755))

	assert.Equal(t, 20, counterTest(t, NewFile(root), 20))

	_, err := os.Stat(layout.LockPath(root, key))
	assert.NoError(t, err)
}

func TestFile_MissingShard(t *testing.T) {
	l := NewFile(t.TempDir())
	_, err := l.Lock(key)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
