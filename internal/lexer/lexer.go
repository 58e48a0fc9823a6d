package lexer

import (
	"github.com/funvibe/ski/internal/token"
)

// Lexer scans the compact combinator notation. Names are single letters;
// whitespace separates atoms and is otherwise insignificant; '#' starts a
// comment running to end of line.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	var tok token.Token
	switch {
	case l.ch == 0:
		tok = token.Token{Type: token.EOF, Line: l.line, Column: l.column}
	case l.ch == '/':
		tok = newToken(token.SLASH, l.ch, l.line, l.column)
	case l.ch == '.':
		tok = newToken(token.DOT, l.ch, l.line, l.column)
	case l.ch == '(':
		tok = newToken(token.LPAREN, l.ch, l.line, l.column)
	case l.ch == ')':
		tok = newToken(token.RPAREN, l.ch, l.line, l.column)
	case l.ch >= 'a' && l.ch <= 'z':
		tok = newToken(token.IDENT_LOWER, l.ch, l.line, l.column)
	case l.ch >= 'A' && l.ch <= 'Z':
		tok = newToken(token.IDENT_UPPER, l.ch, l.line, l.column)
	default:
		tok = newToken(token.ILLEGAL, l.ch, l.line, l.column)
	}
	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.readChar()
		case '#':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

// Tokenize scans the whole input, including the trailing EOF token.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

func newToken(tokenType token.TokenType, ch byte, line, column int) token.Token {
	lexeme := string(ch)
	return token.Token{Type: tokenType, Lexeme: lexeme, Literal: lexeme, Line: line, Column: column}
}
