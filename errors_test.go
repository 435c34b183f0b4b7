package filestore

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aweris/filestore/internal/ioerr"
)

func TestSeverityOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Severity
	}{
		{"not found", fmt.Errorf("%w: abc", ErrNotFound), SeverityLow},
		{"os not exist", ioerr.Wrap(fs.ErrNotExist, "unable to open file for reading", "/x"), SeverityLow},
		{"permission", ioerr.Wrap(fs.ErrPermission, "unable to copy file", "/x"), SeverityWarning},
		{"other", errors.New("boom"), SeverityWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SeverityOf(tt.err))
		})
	}
}

func TestSeverity_Level(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, SeverityLow.Level())
	assert.Equal(t, slog.LevelWarn, SeverityWarning.Level())
	assert.Equal(t, "low", SeverityLow.String())
	assert.Equal(t, "warning", SeverityWarning.String())
}

func TestUserMessage(t *testing.T) {
	assert.Empty(t, UserMessage(nil))
	assert.Equal(t, "The file requested was not found.", UserMessage(fmt.Errorf("%w: abc", ErrNotFound)))

	err := ioerr.Wrap(fs.ErrPermission, "unable to copy file", "/store/ab/cd")
	assert.Equal(t, "unable to copy file /store/ab/cd: permission denied", UserMessage(err))
}
