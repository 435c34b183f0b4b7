package filestore

import (
	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// MarshalCBOR encodes k as a CBOR text string.
func (k FileKey) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(string(k))
}

func (k *FileKey) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	return k.UnmarshalText([]byte(s))
}

// MarshalYAML encodes k as a plain scalar.
func (k FileKey) MarshalYAML() (any, error) {
	return string(k), nil
}

func (k *FileKey) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return k.UnmarshalText([]byte(s))
}
