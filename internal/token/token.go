package token

type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"
	NEWLINE TokenType = "NEWLINE"

	NUMBER TokenType = "NUMBER"
	IDENT  TokenType = "IDENT"

	PLUS     TokenType = "+"
	MINUS    TokenType = "-"
	ASTERISK TokenType = "*"
	SLASH    TokenType = "/"

	LPAREN TokenType = "("
	RPAREN TokenType = ")"

	// Witness constructor keywords.
	POS TokenType = "POS"
	NEG TokenType = "NEG"
)

// Token is one lexed unit. Literal carries the decoded value for NUMBER
// tokens (int64) and the raw text for everything else.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any
	Line    int
	Column  int
}

var keywords = map[string]TokenType{
	"pos": POS,
	"neg": NEG,
}

// LookupIdent resolves an identifier to its keyword type, or IDENT.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return IDENT
}
