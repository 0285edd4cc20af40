package attrspec

import (
	"errors"
	"go/ast"
	goparser "go/parser"
	"go/scanner"
	"go/token"
)

// lookahead is how many tokens past the key are searched for '=' before an
// attribute is treated as punned.
const lookahead = 3

// blockPrefix wraps a value block so go/parser can read it as a function body.
const blockPrefix = "package p; func _() {"

// Parse parses a single attribute declaration.
// Returns a *SyntaxError on failure.
func Parse(src string) (ElementAttribute, error) {
	st, err := Lex("", []byte(src))
	if err != nil {
		return nil, err
	}
	return ParseTokens(st)
}

// ParseTokens parses a single attribute declaration from a token stream. The
// whole stream must be consumed.
func ParseTokens(st *Stream) (ElementAttribute, error) {
	p := &parser{st: st}
	attr, err := p.parseAttribute()
	if err != nil {
		return nil, err
	}
	if tok := p.peekN(0); tok.Kind != TokenEOF {
		return nil, unexpected(tok, "end of attribute")
	}
	return attr, nil
}

type parser struct {
	st  *Stream
	pos int
}

// peekN returns the token n positions ahead without consuming anything.
// Positions past the end yield the final EOF token.
func (p *parser) peekN(n int) Token {
	toks := p.st.Tokens
	if len(toks) == 0 {
		return Token{Kind: TokenEOF}
	}
	i := p.pos + n
	if i >= len(toks) {
		i = len(toks) - 1
	}
	return toks[i]
}

func (p *parser) next() Token {
	tok := p.peekN(0)
	if p.pos < len(p.st.Tokens) {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	tok := p.next()
	if tok.Kind != kind {
		return Token{}, unexpected(tok, kind.String())
	}
	return tok, nil
}

func (p *parser) parseAttribute() (ElementAttribute, error) {
	key, err := p.parseKey()
	if err != nil {
		return nil, err
	}

	if !p.valueFollows() {
		return Punned{Key: key}, nil
	}

	if _, err := p.expect(TokenAssign); err != nil {
		return nil, err
	}
	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return WithValue{Key: key, Value: value}, nil
}

// parseKey accumulates dash-separated segments until '=' or the end of the
// declaration.
func (p *parser) parseKey() (Key, error) {
	var key Key
	for {
		tok, err := p.expect(TokenIdent)
		if err != nil {
			return Key{}, err
		}
		if len(key.Segments) == 0 {
			key.Pos = tok.Pos
		}
		key.Segments = append(key.Segments, tok.Literal)

		switch next := p.peekN(0); next.Kind {
		case TokenAssign, TokenEOF:
			return key, nil
		case TokenDash:
			p.next()
		default:
			return Key{}, unexpected(next, "'-' or '='")
		}
	}
}

// valueFollows reports whether an assignment appears within the next
// lookahead tokens.
func (p *parser) valueFollows() bool {
	for n := 0; n < lookahead; n++ {
		if p.peekN(n).Kind == TokenAssign {
			return true
		}
	}
	return false
}

// parseValue consumes a brace-delimited block and parses its body as Go
// statements.
func (p *parser) parseValue() (Value, error) {
	open, err := p.expect(TokenLBrace)
	if err != nil {
		return Value{}, err
	}

	depth := 0
	for {
		tok := p.next()
		switch tok.Kind {
		case TokenEOF:
			return Value{}, &SyntaxError{
				Pos:     open.Pos,
				Message: "unterminated value block",
			}
		case TokenLBrace:
			depth++
		case TokenRBrace:
			if depth == 0 {
				return p.st.value(open, tok)
			}
			depth--
		}
	}
}

// value parses the source between the open and end braces.
func (s *Stream) value(open, end Token) (Value, error) {
	bodyStart := open.Pos.Offset + 1
	body := s.slice(bodyStart, end.Pos.Offset)

	fset := token.NewFileSet()
	f, err := goparser.ParseFile(fset, "", blockPrefix+body+"\n}", 0)
	if err != nil {
		var list scanner.ErrorList
		if errors.As(err, &list) && len(list) > 0 {
			offset := bodyStart + list[0].Pos.Offset - len(blockPrefix)
			if offset > end.Pos.Offset {
				offset = end.Pos.Offset
			}
			return Value{}, &SyntaxError{Pos: s.position(offset), Message: list[0].Msg}
		}
		return Value{}, &SyntaxError{Pos: open.Pos, Message: err.Error()}
	}

	v := Value{
		Block: s.slice(open.Pos.Offset, end.Pos.Offset+1),
		Pos:   open.Pos,
	}
	fn := f.Decls[0].(*ast.FuncDecl)
	for _, stmt := range fn.Body.List {
		if _, ok := stmt.(*ast.EmptyStmt); ok {
			continue
		}
		from := fset.Position(stmt.Pos()).Offset - len(blockPrefix)
		to := fset.Position(stmt.End()).Offset - len(blockPrefix)
		_, isExpr := stmt.(*ast.ExprStmt)
		v.Stmts = append(v.Stmts, Stmt{Source: body[from:to], Expr: isExpr})
	}
	if len(v.Stmts) == 0 {
		return Value{}, &SyntaxError{Pos: open.Pos, Message: "empty value block"}
	}
	return v, nil
}
