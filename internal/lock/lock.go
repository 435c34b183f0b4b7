// Package lock serializes read-modify-write sequences on a single key.
//
// Three strategies are provided:
//   - ModeProcess: an in-process table of mutexes keyed by key
//   - ModeFile: the same table plus an exclusive advisory lock on the
//     shard's lock file, for stores shared between processes
//   - ModeNone: no serialization at all
package lock

import (
	"fmt"
	"strings"
	"sync"
)

// Mode selects a locking strategy.
type Mode string

const (
	ModeNone    Mode = "none"
	ModeProcess Mode = "process"
	ModeFile    Mode = "file"
)

// ParseMode parses a mode name. The empty string selects ModeProcess.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeProcess, nil
	case ModeNone, ModeProcess, ModeFile:
		return m, nil
	default:
		return "", fmt.Errorf("lock: unknown mode %q", s)
	}
}

// Locker hands out exclusive access to a key. The returned function releases
// it and must be called exactly once.
type Locker interface {
	Lock(key string) (unlock func(), err error)
}

// New returns the Locker for mode. root is only used by ModeFile.
func New(mode Mode, root string) (Locker, error) {
	switch mode {
	case ModeNone:
		return None{}, nil
	case ModeProcess, "":
		return NewTable(), nil
	case ModeFile:
		return NewFile(root), nil
	default:
		return nil, fmt.Errorf("lock: unknown mode %q", mode)
	}
}

// None does not lock.
type None struct{}

func (None) Lock(string) (func(), error) { return func() {}, nil }

// Table is an in-process lock table. Entries exist only while held or
// awaited, so the table does not grow with the number of keys ever seen.
type Table struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func NewTable() *Table {
	return &Table{entries: make(map[string]*entry)}
}

// Lock blocks until key is free. It never fails.
func (t *Table) Lock(key string) (func(), error) {
	t.mu.Lock()
	e, ok := t.entries[key]
	if !ok {
		e = &entry{}
		t.entries[key] = e
	}
	e.refs++
	t.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()

		t.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(t.entries, key)
		}
		t.mu.Unlock()
	}, nil
}

// Len returns the number of keys currently held or awaited.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
