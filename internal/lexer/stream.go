package lexer

import "github.com/funvibe/signum/internal/token"

// BufferedTokenStream drains a Lexer eagerly and serves the tokens with
// arbitrary lookahead.
type BufferedTokenStream struct {
	tokens []token.Token
	pos    int
}

// NewTokenStream runs l to EOF and buffers the result. The returned stream
// always ends with (and then keeps returning) the EOF token.
func NewTokenStream(l *Lexer) *BufferedTokenStream {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return &BufferedTokenStream{tokens: tokens}
}

func (s *BufferedTokenStream) Next() token.Token {
	if s.pos >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok
}

// Peek returns up to n upcoming tokens without consuming them.
func (s *BufferedTokenStream) Peek(n int) []token.Token {
	end := s.pos + n
	if end > len(s.tokens) {
		end = len(s.tokens)
	}
	return s.tokens[s.pos:end]
}

// Tokens exposes the full buffer, for stages that scan rather than parse.
func (s *BufferedTokenStream) Tokens() []token.Token {
	return s.tokens
}
