package attrspec

import (
	"errors"
	"fmt"
	"go/token"
)

// Sentinel errors matched by the typed errors below via errors.Is.
var (
	ErrSyntax     = errors.New("attrspec: syntax error")
	ErrValidation = errors.New("attrspec: invalid attribute")
)

// SyntaxError reports a malformed attribute declaration.
type SyntaxError struct {
	Pos      token.Position
	Message  string
	Expected string
	Got      string
}

func (e *SyntaxError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
	}
	if e.Pos.IsValid() {
		return e.Pos.String() + ": " + msg
	}
	return msg
}

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

// ValidationError reports a well-formed attribute that the element kind does
// not allow. Suggestion holds a replacement the author can use instead.
type ValidationError struct {
	Pos        token.Position
	Message    string
	Suggestion string
}

func (e *ValidationError) Error() string {
	if e.Pos.IsValid() {
		return e.Pos.String() + ": " + e.Message
	}
	return e.Message
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func unexpected(tok Token, expected string) *SyntaxError {
	return &SyntaxError{
		Pos:      tok.Pos,
		Expected: expected,
		Got:      describe(tok),
	}
}

func describe(tok Token) string {
	if tok.Kind == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal)
}
