package prettyprinter

import (
	"bytes"

	"github.com/funvibe/ski/internal/term"
)

// --- Code Printer (output is re-parseable compact notation) ---

// Printer renders terms back to the compact textual form. Applications and
// abstractions carry their own parentheses, variables and combinators are
// bare, so parse(Render(t)) is structurally equal to t for any term whose
// names survive the single-letter grammar.
type Printer struct {
	buf bytes.Buffer
}

func New() *Printer {
	return &Printer{}
}

func (p *Printer) Print(t term.Term) string {
	p.buf.Reset()
	p.print(t)
	return p.buf.String()
}

func (p *Printer) print(t term.Term) {
	switch t := t.(type) {
	case *term.Variable:
		p.buf.WriteString(t.Name)
	case *term.Combinator:
		p.buf.WriteString(t.Name)
	case *term.Abstraction:
		p.buf.WriteString("(/")
		for _, param := range t.Params {
			p.buf.WriteString(param)
		}
		p.buf.WriteByte('.')
		p.print(t.Body)
		p.buf.WriteByte(')')
	case *term.Application:
		p.buf.WriteByte('(')
		p.print(t.Fn)
		for _, arg := range t.Args {
			p.print(arg)
		}
		p.buf.WriteByte(')')
	}
}

// Render is the one-shot form of Print.
func Render(t term.Term) string {
	return New().Print(t)
}
