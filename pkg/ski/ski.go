// Package ski is the public embedding surface of the engine: parse text
// into terms, substitute, reduce, and render, without touching the
// internal pipeline wiring.
package ski

import (
	"github.com/funvibe/ski/internal/lexer"
	"github.com/funvibe/ski/internal/parser"
	"github.com/funvibe/ski/internal/pipeline"
	"github.com/funvibe/ski/internal/prettyprinter"
	"github.com/funvibe/ski/internal/reducer"
	"github.com/funvibe/ski/internal/term"
)

type (
	Term    = term.Term
	Symbol  = term.Symbol
	Basis   = term.Basis
	Binding = reducer.Binding
)

// Standard combinator bases. Full is the parser default.
var (
	SKI  = term.SKI
	BCKW = term.BCKW
	Full = term.Full
)

// Primitive combinators, for programmatic term construction.
var (
	S = term.S
	K = term.K
	I = term.I
)

// Var builds a variable term.
func Var(name Symbol) Term {
	return term.Var(name)
}

// Lambda builds a multi-parameter abstraction; an empty parameter list
// collapses to the body.
func Lambda(params []Symbol, body Term) Term {
	return term.NewAbstraction(params, body)
}

// Parse parses the compact notation against the full default basis.
func Parse(text string) (Term, error) {
	return ParseWith(text, nil)
}

// ParseWith parses against an explicit combinator basis.
func ParseWith(text string, basis Basis) (Term, error) {
	ctx := &pipeline.PipelineContext{SourceCode: text, Basis: basis}
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	if len(ctx.Errors) > 0 {
		return nil, ctx.Errors[0]
	}
	return ctx.Term, nil
}

// Render converts a term back to the compact notation.
func Render(t Term) string {
	return prettyprinter.Render(t)
}

// Apply applies t to args and reduces the result to normal form; with no
// args it normalizes t itself.
func Apply(t Term, args ...Term) Term {
	return reducer.Apply(t, args...)
}

// Reduce rewrites t in normal order for at most maxSteps steps
// (maxSteps <= 0 means until normal form), returning the result, the step
// count, and whether the budget was exhausted.
func Reduce(t Term, maxSteps int) (Term, int, bool) {
	return reducer.Reduce(t, maxSteps)
}

// Normalize reduces t to normal form with no budget.
func Normalize(t Term) Term {
	return reducer.Normalize(t)
}

// Step performs one rewrite; false means t is already a normal form.
func Step(t Term) (Term, bool) {
	return reducer.Step(t)
}

// Substitute replaces free occurrences of name in t with replacement,
// avoiding variable capture.
func Substitute(t Term, name Symbol, replacement Term) Term {
	return reducer.Substitute(t, name, replacement)
}

// Bind applies named substitutions in order without forcing reduction.
func Bind(t Term, bindings ...Binding) Term {
	return reducer.Bind(t, bindings...)
}

// Equal reports structural equality; AlphaEqual ignores bound-variable
// naming.
func Equal(a, b Term) bool {
	return term.Equal(a, b)
}

func AlphaEqual(a, b Term) bool {
	return term.AlphaEqual(a, b)
}
