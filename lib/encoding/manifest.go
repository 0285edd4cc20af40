package encoding

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pthm/hxattr/lib/attrspec"
)

// Manifest is the compiled form of one element declaration: its tag, the
// element kind and the validated attributes. Source positions are not kept.
type Manifest struct {
	Tag    string  `msgpack:"t"`
	Custom bool    `msgpack:"c,omitempty"`
	Attrs  []Entry `msgpack:"a"`
}

// Entry is one attribute. Punned attributes have no block.
type Entry struct {
	Key   []string `msgpack:"k"`
	Block string   `msgpack:"b,omitempty"`
	Stmts []Stmt   `msgpack:"s,omitempty"`
}

// Stmt mirrors attrspec.Stmt.
type Stmt struct {
	Source string `msgpack:"src"`
	Expr   bool   `msgpack:"e,omitempty"`
}

// FromAttributes builds a manifest from parsed attributes.
func FromAttributes(tag string, custom bool, attrs []attrspec.ElementAttribute) *Manifest {
	m := &Manifest{Tag: tag, Custom: custom, Attrs: make([]Entry, 0, len(attrs))}
	for _, attr := range attrs {
		entry := Entry{Key: attr.AttrKey().Segments}
		if v, ok := attr.(attrspec.WithValue); ok {
			entry.Block = v.Value.Block
			for _, s := range v.Value.Stmts {
				entry.Stmts = append(entry.Stmts, Stmt{Source: s.Source, Expr: s.Expr})
			}
		}
		m.Attrs = append(m.Attrs, entry)
	}
	return m
}

// Attributes converts the manifest entries back to attributes. Each entry is
// parsed again from declaration syntax, so a manifest edited by hand yields
// either well-formed attributes or an error wrapping ErrInvalidFormat.
func (m *Manifest) Attributes() ([]attrspec.ElementAttribute, error) {
	attrs := make([]attrspec.ElementAttribute, 0, len(m.Attrs))
	for i, entry := range m.Attrs {
		attr, err := entry.attribute()
		if err != nil {
			return nil, fmt.Errorf("%w: attribute %d: %v", ErrInvalidFormat, i, err)
		}
		attrs = append(attrs, attr)
	}
	return attrs, nil
}

// declaration returns the entry in attribute syntax.
func (e Entry) declaration() string {
	decl := strings.Join(e.Key, "-")
	if e.Block != "" {
		decl += "=" + e.Block
	}
	return decl
}

func (e Entry) attribute() (attrspec.ElementAttribute, error) {
	attr, err := attrspec.Parse(e.declaration())
	if err != nil {
		return nil, err
	}
	if !attr.AttrKey().Equal(attrspec.NewKey(e.Key...)) {
		return nil, fmt.Errorf("key %q is not an attribute name", e.Key)
	}

	v, ok := attr.(attrspec.WithValue)
	if !ok {
		if len(e.Stmts) > 0 {
			return nil, errors.New("statements without a value block")
		}
		return attr, nil
	}
	if len(v.Value.Stmts) != len(e.Stmts) {
		return nil, errors.New("statements do not match value block")
	}
	for i, s := range v.Value.Stmts {
		if s.Source != e.Stmts[i].Source || s.Expr != e.Stmts[i].Expr {
			return nil, errors.New("statements do not match value block")
		}
	}
	return attr, nil
}
