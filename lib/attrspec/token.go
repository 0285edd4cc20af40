package attrspec

import "go/token"

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenEOF    TokenKind = iota
	TokenIdent            // identifier or Go keyword
	TokenDash             // -
	TokenAssign           // =
	TokenLBrace           // {
	TokenRBrace           // }
	TokenOther            // any other Go token, only meaningful inside a value block
)

var tokenNames = map[TokenKind]string{
	TokenEOF:    "EOF",
	TokenIdent:  "identifier",
	TokenDash:   "'-'",
	TokenAssign: "'='",
	TokenLBrace: "'{'",
	TokenRBrace: "'}'",
	TokenOther:  "token",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical unit of an attribute declaration.
type Token struct {
	Kind    TokenKind
	Literal string
	Pos     token.Position
}

func kindOf(tok token.Token) TokenKind {
	switch {
	case tok == token.IDENT || tok.IsKeyword():
		return TokenIdent
	case tok == token.SUB:
		return TokenDash
	case tok == token.ASSIGN:
		return TokenAssign
	case tok == token.LBRACE:
		return TokenLBrace
	case tok == token.RBRACE:
		return TokenRBrace
	case tok == token.EOF:
		return TokenEOF
	default:
		return TokenOther
	}
}
