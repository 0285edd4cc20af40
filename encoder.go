package hxattr

import (
	"github.com/pthm/hxattr/lib/attrspec"
	"github.com/pthm/hxattr/lib/encoding"
)

// Encoder is an alias for encoding.Encoder for convenience.
type Encoder = encoding.Encoder

// Manifest is an alias for encoding.Manifest for convenience.
type Manifest = encoding.Manifest

// NewEncoder creates a manifest encoder with the given signing key.
func NewEncoder(key []byte) (*Encoder, error) {
	return encoding.NewEncoder(key)
}

// CompileManifest compiles an attribute list for tag into a manifest.
func CompileManifest(tag, filename string, src []byte, custom bool) (*Manifest, error) {
	attrs, err := CompileAttributes(filename, src, custom)
	if err != nil {
		return nil, err
	}
	return encoding.FromAttributes(tag, custom, attrs), nil
}

// LoadManifest decodes a signed manifest, parses each attribute again and
// validates the list, so a manifest edited and re-signed with a valid key
// still yields only attributes the compiler would have produced.
func LoadManifest(enc *Encoder, encoded string) (*Manifest, []attrspec.ElementAttribute, error) {
	m, err := enc.Decode(encoded)
	if err != nil {
		return nil, nil, wrapEncodingError(err)
	}
	attrs, err := m.Attributes()
	if err != nil {
		return nil, nil, wrapEncodingError(err)
	}
	if err := attrspec.ValidateAll(attrs, m.Custom); err != nil {
		return nil, nil, err
	}
	return m, attrs, nil
}
