package token

type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Single-letter names. Lowercase letters are variables, uppercase
	// letters are resolved against the active combinator basis.
	IDENT_LOWER TokenType = "IDENT_LOWER"
	IDENT_UPPER TokenType = "IDENT_UPPER"

	SLASH  TokenType = "/" // abstraction head
	DOT    TokenType = "." // separates parameters from the body
	LPAREN TokenType = "("
	RPAREN TokenType = ")"
)

type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any
	Line    int
	Column  int
}

// Stream is a fixed token sequence with lookahead, produced by the lexer
// and consumed by the parser.
type Stream struct {
	tokens []Token
	pos    int
}

func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens}
}

// Next returns the next token, or an EOF token once the stream is drained.
func (s *Stream) Next() Token {
	if s.pos >= len(s.tokens) {
		return Token{Type: EOF}
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok
}

// Peek returns up to n upcoming tokens without consuming them.
func (s *Stream) Peek(n int) []Token {
	end := s.pos + n
	if end > len(s.tokens) {
		end = len(s.tokens)
	}
	return s.tokens[s.pos:end]
}
