package parser

import (
	"fmt"

	"github.com/funvibe/ski/internal/diagnostics"
	"github.com/funvibe/ski/internal/pipeline"
	"github.com/funvibe/ski/internal/term"
	"github.com/funvibe/ski/internal/token"
)

// Parser builds a Term from the token stream by recursive descent. The
// grammar has no precedence beyond juxtaposition: a run of atoms is one
// flattened application, '(' ')' groups, and '/' opens an abstraction
// whose body extends to the end of the enclosing group.
type Parser struct {
	stream *token.Stream
	ctx    *pipeline.PipelineContext
	basis  term.Basis

	curToken  token.Token
	peekToken token.Token
}

func New(stream *token.Stream, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{stream: stream, ctx: ctx, basis: ctx.Basis}
	if p.basis == nil {
		p.basis = term.Full
	}
	// Prime curToken and peekToken.
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.stream.Next()
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) addError(code diagnostics.ErrorCode, tok token.Token, format string, args ...any) {
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(code, tok, fmt.Sprintf(format, args...)))
}

// ParseTerm parses the whole input as a single term. Anything left over
// after the top-level group can only be a stray ')'.
func (p *Parser) ParseTerm() term.Term {
	t := p.parseGroup()
	if t == nil {
		return nil
	}
	if p.curTokenIs(token.RPAREN) {
		p.addError(diagnostics.ErrP002, p.curToken, "unexpected ')'")
		return nil
	}
	return t
}

// parseGroup parses a maximal run of juxtaposed atoms and folds it into
// one flattened application. It stops at ')' or EOF without consuming
// the closer.
func (p *Parser) parseGroup() term.Term {
	var atoms []term.Term
	for !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.EOF) {
		atom := p.parseAtom()
		if atom == nil {
			return nil
		}
		atoms = append(atoms, atom)
	}
	if len(atoms) == 0 {
		p.addError(diagnostics.ErrP003, p.curToken, "empty expression")
		return nil
	}
	return term.NewApplication(atoms[0], atoms[1:])
}

func (p *Parser) parseAtom() term.Term {
	switch p.curToken.Type {
	case token.LPAREN:
		return p.parseParenGroup()
	case token.SLASH:
		return p.parseAbstraction()
	case token.IDENT_LOWER:
		v := term.Var(p.curToken.Lexeme)
		p.nextToken()
		return v
	case token.IDENT_UPPER:
		c, ok := p.basis[p.curToken.Lexeme]
		if !ok {
			p.addError(diagnostics.ErrP005, p.curToken, "no combinator %q in the active basis", p.curToken.Lexeme)
			return nil
		}
		p.nextToken()
		return c
	case token.ILLEGAL:
		// Already reported by the lexer stage.
		return nil
	default:
		p.addError(diagnostics.ErrP001, p.curToken, "unexpected %q", p.curToken.Lexeme)
		return nil
	}
}

func (p *Parser) parseParenGroup() term.Term {
	open := p.curToken
	p.nextToken() // consume '('
	inner := p.parseGroup()
	if inner == nil {
		return nil
	}
	if !p.curTokenIs(token.RPAREN) {
		p.addError(diagnostics.ErrP002, open, "missing ')'")
		return nil
	}
	p.nextToken() // consume ')'
	return inner
}

// parseAbstraction parses '/' letters '.' body. The parameter run is kept
// as one Abstraction node, and the body extends to the end of the
// enclosing group, so "f/x.yz" is f applied to /x.(yz).
func (p *Parser) parseAbstraction() term.Term {
	slash := p.curToken
	p.nextToken() // consume '/'

	var params []term.Symbol
	for p.curTokenIs(token.IDENT_LOWER) || p.curTokenIs(token.IDENT_UPPER) {
		params = append(params, p.curToken.Lexeme)
		p.nextToken()
	}
	if len(params) == 0 {
		p.addError(diagnostics.ErrP004, slash, "expected parameter name(s) after '/', followed by '.'")
		return nil
	}
	if !p.curTokenIs(token.DOT) {
		p.addError(diagnostics.ErrP004, p.curToken, "expected '.' after abstraction parameters")
		return nil
	}
	p.nextToken() // consume '.'

	body := p.parseGroup()
	if body == nil {
		return nil
	}
	return term.NewAbstraction(params, body)
}
