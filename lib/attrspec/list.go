package attrspec

import "fmt"

// ParseList parses a whitespace-separated attribute list such as
//
//	type={"checkbox"} data-id={ id } checked
//
// Attributes are split where an identifier follows another identifier or a
// closed value block, then parsed one by one. The first error aborts the
// whole list. A key declared twice is a *ValidationError.
func ParseList(filename string, src []byte) ([]ElementAttribute, error) {
	st, err := Lex(filename, src)
	if err != nil {
		return nil, err
	}

	var attrs []ElementAttribute
	seen := make(map[string]Key)
	for _, w := range st.split() {
		attr, err := ParseTokens(w)
		if err != nil {
			return nil, err
		}
		key := attr.AttrKey()
		if first, ok := seen[key.ID()]; ok {
			return nil, &ValidationError{
				Pos:        key.Pos,
				Message:    fmt.Sprintf("duplicate attribute `%s`, first declared at %s", key, first.Pos),
				Suggestion: "remove one of the declarations",
			}
		}
		seen[key.ID()] = key
		attrs = append(attrs, attr)
	}
	return attrs, nil
}

// split cuts the stream into one window per attribute.
func (s *Stream) split() []*Stream {
	var out []*Stream
	start, depth := 0, 0
	for i, tok := range s.Tokens {
		switch tok.Kind {
		case TokenLBrace:
			depth++
		case TokenRBrace:
			if depth > 0 {
				depth--
			}
		case TokenIdent:
			if depth > 0 || i == start {
				continue
			}
			if prev := s.Tokens[i-1].Kind; prev == TokenIdent || prev == TokenRBrace {
				out = append(out, s.window(start, i))
				start = i
			}
		case TokenEOF:
			if i > start {
				out = append(out, s.window(start, i))
			}
			return out
		}
	}
	return out
}
