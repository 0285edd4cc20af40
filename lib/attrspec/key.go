package attrspec

import (
	"go/token"
	"strings"
)

// Key is the dash-joined name of an attribute, split into its segments.
// Equality is segment-wise; Pos does not take part in it.
type Key struct {
	Segments []string
	Pos      token.Position
}

// NewKey returns a key made of the given segments.
func NewKey(segments ...string) Key {
	return Key{Segments: segments}
}

// Len returns the number of segments.
func (k Key) Len() int { return len(k.Segments) }

// String returns the rendered form, e.g. "data-foo".
func (k Key) String() string { return strings.Join(k.Segments, "-") }

// Ident returns the segments joined with underscores, e.g. "data_foo".
func (k Key) Ident() string { return strings.Join(k.Segments, "_") }

// ID returns a string usable as a map key. Segments never contain a dash, so
// the dash-joined form is unambiguous.
func (k Key) ID() string { return k.String() }

// Equal reports whether both keys have the same segments in the same order.
func (k Key) Equal(other Key) bool {
	if len(k.Segments) != len(other.Segments) {
		return false
	}
	for i := range k.Segments {
		if k.Segments[i] != other.Segments[i] {
			return false
		}
	}
	return true
}
