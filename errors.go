package filestore

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/aweris/filestore/internal/ioerr"
	"github.com/aweris/filestore/internal/refcount"
)

var (
	ErrNotFound    = errors.New("filestore: not found")
	ErrInvalidKey  = errors.New("filestore: invalid key")
	ErrInvalidRoot = errors.New("filestore: invalid root directory")
	ErrOverflow    = refcount.ErrOverflow
)

// IOError is a filesystem failure with a short description of the action
// that failed. Use errors.As to inspect it.
type IOError = ioerr.Error

// notFoundMessage is shown to end users instead of OS error text.
const notFoundMessage = "The file requested was not found."

// Severity classifies an error for whoever logs it. The store itself never
// logs.
type Severity int

const (
	// SeverityLow marks expected outcomes such as a missing key.
	SeverityLow Severity = iota
	// SeverityWarning marks genuine filesystem faults.
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Level maps the severity onto a slog level.
func (s Severity) Level() slog.Level {
	if s == SeverityLow {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// IsNotFound reports whether err means the content does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}

// SeverityOf classifies err. Not-found errors are low severity, everything
// else is a warning.
func SeverityOf(err error) Severity {
	if IsNotFound(err) {
		return SeverityLow
	}
	return SeverityWarning
}

// UserMessage returns text suitable for an end user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if IsNotFound(err) {
		return notFoundMessage
	}
	return err.Error()
}
