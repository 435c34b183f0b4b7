// Package ioerr defines the error used for every filesystem fault in the store.
package ioerr

import "fmt"

// Error is a filesystem failure annotated with a short description of the
// action that failed.
type Error struct {
	Msg  string
	Path string
	Err  error
}

// Wrap annotates err. It returns nil when err is nil.
func Wrap(err error, msg, path string) error {
	if err == nil {
		return nil
	}
	return &Error{Msg: msg, Path: path, Err: err}
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Msg, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
