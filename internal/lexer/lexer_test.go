package lexer

import (
	"testing"

	"github.com/funvibe/signum/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `pos(3) + neg(42)
10 * 2 - 7 / 1
`

	tests := []struct {
		expectedType   token.TokenType
		expectedLexeme string
	}{
		{token.POS, "pos"},
		{token.LPAREN, "("},
		{token.NUMBER, "3"},
		{token.RPAREN, ")"},
		{token.PLUS, "+"},
		{token.NEG, "neg"},
		{token.LPAREN, "("},
		{token.NUMBER, "42"},
		{token.RPAREN, ")"},
		{token.NEWLINE, "\n"},
		{token.NUMBER, "10"},
		{token.ASTERISK, "*"},
		{token.NUMBER, "2"},
		{token.MINUS, "-"},
		{token.NUMBER, "7"},
		{token.SLASH, "/"},
		{token.NUMBER, "1"},
		{token.NEWLINE, "\n"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d]: wrong token type. expected=%q, got=%q (%q)",
				i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d]: wrong lexeme. expected=%q, got=%q",
				i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestNumberLiteralValue(t *testing.T) {
	l := New("12345")
	tok := l.NextToken()

	if tok.Type != token.NUMBER {
		t.Fatalf("wrong token type. expected=%q, got=%q", token.NUMBER, tok.Type)
	}
	value, ok := tok.Literal.(int64)
	if !ok {
		t.Fatalf("literal is not int64. got=%T", tok.Literal)
	}
	if value != 12345 {
		t.Errorf("wrong literal value. expected=12345, got=%d", value)
	}
}

func TestNumberOverflowProducesIllegal(t *testing.T) {
	// One past math.MaxInt64.
	l := New("9223372036854775808")
	tok := l.NextToken()

	if tok.Type != token.ILLEGAL {
		t.Fatalf("wrong token type. expected=%q, got=%q", token.ILLEGAL, tok.Type)
	}
	if tok.Lexeme != "9223372036854775808" {
		t.Errorf("wrong lexeme. got=%q", tok.Lexeme)
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := New("1 @ 2")

	if tok := l.NextToken(); tok.Type != token.NUMBER {
		t.Fatalf("wrong first token. got=%q", tok.Type)
	}
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("wrong token type. expected=%q, got=%q", token.ILLEGAL, tok.Type)
	}
	if tok.Lexeme != "@" {
		t.Errorf("wrong lexeme. expected=%q, got=%q", "@", tok.Lexeme)
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	input := "# leading comment\n1 + 2 # trailing comment\n"

	var types []token.TokenType
	l := New(input)
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == token.EOF {
			break
		}
	}

	expected := []token.TokenType{
		token.NEWLINE,
		token.NUMBER, token.PLUS, token.NUMBER, token.NEWLINE,
		token.EOF,
	}
	if len(types) != len(expected) {
		t.Fatalf("wrong token count. expected=%d, got=%d (%v)", len(expected), len(types), types)
	}
	for i, want := range expected {
		if types[i] != want {
			t.Errorf("token[%d]: expected=%q, got=%q", i, want, types[i])
		}
	}
}

func TestTokenPositions(t *testing.T) {
	input := "1 + 2\npos(3)"

	tests := []struct {
		lexeme string
		line   int
		column int
	}{
		{"1", 1, 1},
		{"+", 1, 3},
		{"2", 1, 5},
		{"\n", 1, 6},
		{"pos", 2, 1},
		{"(", 2, 4},
		{"3", 2, 5},
		{")", 2, 6},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Line != tt.line || tok.Column != tt.column {
			t.Errorf("tests[%d] (%q): wrong position. expected=%d:%d, got=%d:%d",
				i, tt.lexeme, tt.line, tt.column, tok.Line, tok.Column)
		}
	}
}

func TestTokenStreamPeek(t *testing.T) {
	stream := NewTokenStream(New("1 + 2"))

	peeked := stream.Peek(2)
	if len(peeked) != 2 {
		t.Fatalf("wrong peek length. expected=2, got=%d", len(peeked))
	}
	if peeked[0].Type != token.NUMBER || peeked[1].Type != token.PLUS {
		t.Errorf("wrong peeked tokens. got=%q, %q", peeked[0].Type, peeked[1].Type)
	}

	// Peek must not consume.
	if tok := stream.Next(); tok.Type != token.NUMBER {
		t.Errorf("peek consumed a token. got=%q", tok.Type)
	}
}

func TestTokenStreamStickyEOF(t *testing.T) {
	stream := NewTokenStream(New("1"))

	stream.Next() // the number
	for i := 0; i < 3; i++ {
		if tok := stream.Next(); tok.Type != token.EOF {
			t.Fatalf("read %d past end: expected EOF, got=%q", i, tok.Type)
		}
	}
}
