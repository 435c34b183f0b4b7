package filestore

import (
	"database/sql/driver"
	"fmt"

	"github.com/aweris/filestore/internal/hasher"
	"github.com/aweris/filestore/internal/layout"
)

// KeyLen is the length of a FileKey: hex SHA-224.
const KeyLen = 2 * hasher.Size

// FileKey identifies stored content. It is the lowercase hex SHA-224 of the
// content and the only handle a caller needs to keep.
type FileKey string

// ParseKey validates s as a FileKey.
func ParseKey(s string) (FileKey, error) {
	k := FileKey(s)
	if err := k.Validate(); err != nil {
		return "", err
	}
	return k, nil
}

// Validate reports whether k is well formed.
func (k FileKey) Validate() error {
	if len(k) != KeyLen || !layout.IsHex(string(k)) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, string(k))
	}
	return nil
}

func (k FileKey) String() string { return string(k) }

// Shard returns the name of the directory holding k.
func (k FileKey) Shard() string { return string(k[:layout.ShardLen]) }

func (k FileKey) MarshalText() ([]byte, error) {
	return []byte(k), nil
}

func (k *FileKey) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Value stores k as a text column.
func (k FileKey) Value() (driver.Value, error) {
	return string(k), nil
}

// Scan reads a key from a text or blob column.
func (k *FileKey) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return k.UnmarshalText([]byte(v))
	case []byte:
		return k.UnmarshalText(v)
	case nil:
		return fmt.Errorf("%w: NULL", ErrInvalidKey)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidKey, src)
	}
}
