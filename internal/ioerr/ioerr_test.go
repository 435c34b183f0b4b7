package ioerr

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "unable to copy file", "/x"))
}

func TestWrap(t *testing.T) {
	err := Wrap(fs.ErrNotExist, "unable to open file for reading", "/store/ab/cd")
	require.Error(t, err)
	assert.Equal(t, "unable to open file for reading /store/ab/cd: file does not exist", err.Error())
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var ioe *Error
	require.True(t, errors.As(err, &ioe))
	assert.Equal(t, "unable to open file for reading", ioe.Msg)
	assert.Equal(t, "/store/ab/cd", ioe.Path)
}

func TestWrap_NoPath(t *testing.T) {
	err := Wrap(fs.ErrPermission, "unable to write new file", "")
	assert.Equal(t, "unable to write new file: permission denied", err.Error())
}
