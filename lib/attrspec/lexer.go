package attrspec

import (
	"go/scanner"
	"go/token"
)

// Stream is a materialized token sequence together with the source it was
// scanned from. It always ends with a TokenEOF token.
type Stream struct {
	Tokens []Token

	src  []byte
	file *token.File
}

// Lex tokenizes src with the Go scanner. Automatic semicolons are dropped and
// keywords are reported as identifiers.
func Lex(filename string, src []byte) (*Stream, error) {
	fset := token.NewFileSet()
	file := fset.AddFile(filename, fset.Base(), len(src))

	var errs scanner.ErrorList
	var s scanner.Scanner
	s.Init(file, src, func(pos token.Position, msg string) {
		errs.Add(pos, msg)
	}, 0)

	st := &Stream{src: src, file: file}
	for {
		pos, tok, lit := s.Scan()
		if len(errs) > 0 {
			return nil, &SyntaxError{Pos: errs[0].Pos, Message: errs[0].Msg}
		}
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}
		if lit == "" {
			lit = tok.String()
		}
		kind := kindOf(tok)
		if kind == TokenEOF {
			lit = ""
		}
		st.Tokens = append(st.Tokens, Token{Kind: kind, Literal: lit, Pos: file.Position(pos)})
		if kind == TokenEOF {
			return st, nil
		}
	}
}

// window returns a stream over Tokens[from:to] terminated by an EOF token
// placed where Tokens[to] starts.
func (s *Stream) window(from, to int) *Stream {
	toks := make([]Token, 0, to-from+1)
	toks = append(toks, s.Tokens[from:to]...)
	toks = append(toks, Token{Kind: TokenEOF, Pos: s.Tokens[to].Pos})
	return &Stream{Tokens: toks, src: s.src, file: s.file}
}

// slice returns the source text between two byte offsets.
func (s *Stream) slice(from, to int) string {
	return string(s.src[from:to])
}

// position converts a byte offset into a source position.
func (s *Stream) position(offset int) token.Position {
	if s.file == nil {
		return token.Position{Offset: offset}
	}
	if offset < 0 {
		offset = 0
	}
	if offset > s.file.Size() {
		offset = s.file.Size()
	}
	return s.file.Position(s.file.Pos(offset))
}
