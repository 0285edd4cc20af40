package attrspec

import "go/token"

// ElementAttribute is a parsed attribute declaration: either Punned or
// WithValue.
//
// Two attributes are equal when their keys are equal, regardless of value, so
// a collection of attributes behaves as a set keyed by name. Use Equal to
// compare and AttrKey().ID() to hash.
type ElementAttribute interface {
	// AttrKey returns the attribute name.
	AttrKey() Key
	// ValueSource returns the Go source producing the attribute value.
	ValueSource() string
	// String returns the declaration in attribute syntax.
	String() string

	elementAttribute()
}

// Punned is an attribute declared by name alone. Its value is the variable
// named by the key's single segment.
type Punned struct {
	Key Key
}

func (a Punned) AttrKey() Key { return a.Key }

func (a Punned) ValueSource() string {
	if a.Key.Len() == 0 {
		return ""
	}
	return a.Key.Segments[0]
}

func (a Punned) String() string { return a.Key.String() }

func (Punned) elementAttribute() {}

// WithValue is an attribute whose value is an inline Go block.
type WithValue struct {
	Key   Key
	Value Value
}

func (a WithValue) AttrKey() Key { return a.Key }

func (a WithValue) ValueSource() string { return a.Value.Source() }

func (a WithValue) String() string {
	if len(a.Value.Stmts) == 1 {
		return a.Key.String() + "={" + a.Value.Stmts[0].Source + "}"
	}
	return a.Key.String() + "=" + a.Value.Block
}

func (WithValue) elementAttribute() {}

// Value is the block of a valued attribute.
type Value struct {
	// Block is the full source of the block, braces included.
	Block string
	// Stmts holds the statements of the block in order.
	Stmts []Stmt
	Pos   token.Position
}

// Stmt is one statement of a value block.
type Stmt struct {
	Source string
	// Expr is set when the statement is a bare expression.
	Expr bool
}

// Source returns the lone statement of a single-statement block, so callers
// emitting it do not wrap it in extra braces. Otherwise it returns the whole
// block.
func (v Value) Source() string {
	if len(v.Stmts) == 1 {
		return v.Stmts[0].Source
	}
	return v.Block
}

// Final returns the last statement of the block.
func (v Value) Final() (Stmt, bool) {
	if len(v.Stmts) == 0 {
		return Stmt{}, false
	}
	return v.Stmts[len(v.Stmts)-1], true
}

// Equal reports whether two attributes have the same key.
func Equal(a, b ElementAttribute) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.AttrKey().Equal(b.AttrKey())
}
