package parser_test

import (
	"testing"

	"github.com/funvibe/ski/internal/lexer"
	"github.com/funvibe/ski/internal/parser"
	"github.com/funvibe/ski/internal/pipeline"
	"github.com/funvibe/ski/internal/prettyprinter"
	"github.com/funvibe/ski/internal/term"
)

// parse runs the lexer and parser stages and fails the test on any
// diagnostic.
func parse(t *testing.T, input string) term.Term {
	t.Helper()
	ctx := &pipeline.PipelineContext{SourceCode: input}
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	if len(ctx.Errors) > 0 {
		t.Fatalf("unexpected errors parsing %q: %v", input, ctx.Errors)
	}
	return ctx.Term
}

func TestParser(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		rendered string
	}{
		{"variable", "x", "x"},
		{"grouped_variable", "(x)", "x"},
		{"application", "xy", "(xy)"},
		{"grouped_application", "(xy)", "(xy)"},
		{"three_atoms", "xyz", "(xyz)"},
		{"function_group_flattens", "(xy)z", "(xyz)"},
		{"argument_group_kept", "x(yz)", "(x(yz))"},
		{"abstraction", "/x.y", "(/x.y)"},
		{"abstraction_body_application", "/x.yz", "(/x.(yz))"},
		{"abstraction_as_argument", "f/x.y", "(f(/x.y))"},
		{"multi_parameter", "/xyz.xz(yz)", "(/xyz.(xz(yz)))"},
		{"applied_abstraction", "(/xyz.xz(yz))x", "((/xyz.(xz(yz)))x)"},
		{"combinators", "KISS", "(KISS)"},
		{"partial_combinator", "SKI", "(SKI)"},
		{"whitespace_separates", "K I S S", "(KISS)"},
		{"comment_skipped", "KI # identity\nS", "(KIS)"},
		{"nested_groups", "((x))", "x"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := prettyprinter.Render(parse(t, tc.input))
			if got != tc.rendered {
				t.Fatalf("parse(%q) rendered as %q, want %q", tc.input, got, tc.rendered)
			}
		})
	}
}

func TestParserRoundTrip(t *testing.T) {
	inputs := []string{
		"x", "(xy)", "(x(yz))", "(/x.y)", "(/xyz.(xz(yz)))",
		"((/xyz.(xz(yz)))x)", "(KISS)", "(SKI)", "(f(/x.y))",
	}
	for _, input := range inputs {
		first := parse(t, input)
		second := parse(t, prettyprinter.Render(first))
		if !term.Equal(first, second) {
			t.Fatalf("round trip of %q changed the term: %q",
				input, prettyprinter.Render(second))
		}
	}
}

func TestMultiParameterAbstractionIsOneNode(t *testing.T) {
	abs, ok := parse(t, "/xyz.x").(*term.Abstraction)
	if !ok {
		t.Fatal("expected an abstraction")
	}
	if len(abs.Params) != 3 {
		t.Fatalf("expected one node with 3 parameters, got %d", len(abs.Params))
	}
}

func TestApplicationIsFlattened(t *testing.T) {
	app, ok := parse(t, "KISS").(*term.Application)
	if !ok {
		t.Fatal("expected an application")
	}
	if !term.Equal(app.Fn, term.K) {
		t.Fatalf("expected function K, got %#v", app.Fn)
	}
	if len(app.Args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(app.Args))
	}
}

func TestCombinatorsResolveAgainstBasis(t *testing.T) {
	ctx := &pipeline.PipelineContext{SourceCode: "B", Basis: term.Full}
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	if len(ctx.Errors) > 0 {
		t.Fatalf("B should resolve in the full basis: %v", ctx.Errors)
	}
	if !term.Equal(ctx.Term, term.B) {
		t.Fatalf("expected the B combinator, got %#v", ctx.Term)
	}
}
