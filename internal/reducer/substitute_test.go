package reducer_test

import (
	"testing"

	"github.com/funvibe/ski/internal/lexer"
	"github.com/funvibe/ski/internal/parser"
	"github.com/funvibe/ski/internal/pipeline"
	"github.com/funvibe/ski/internal/prettyprinter"
	"github.com/funvibe/ski/internal/reducer"
	"github.com/funvibe/ski/internal/term"
)

func parse(t *testing.T, input string) term.Term {
	t.Helper()
	ctx := &pipeline.PipelineContext{SourceCode: input}
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	if len(ctx.Errors) > 0 {
		t.Fatalf("unexpected errors parsing %q: %v", input, ctx.Errors)
	}
	return ctx.Term
}

func TestSubstituteMatchingVariable(t *testing.T) {
	replacement := parse(t, "yz")
	got := reducer.Substitute(term.Var("x"), "x", replacement)
	if !term.Equal(got, replacement) {
		t.Fatalf("expected the replacement, got %s", prettyprinter.Render(got))
	}
}

func TestSubstituteOtherVariable(t *testing.T) {
	got := reducer.Substitute(term.Var("y"), "x", parse(t, "yz"))
	if !term.Equal(got, term.Var("y")) {
		t.Fatalf("expected y untouched, got %s", prettyprinter.Render(got))
	}
}

func TestSubstituteCombinatorUntouched(t *testing.T) {
	got := reducer.Substitute(term.K, "x", term.Var("y"))
	if !term.Equal(got, term.K) {
		t.Fatalf("expected K untouched, got %s", prettyprinter.Render(got))
	}
}

func TestSubstituteInsideApplication(t *testing.T) {
	got := reducer.Substitute(parse(t, "xzx"), "x", term.Var("a"))
	if rendered := prettyprinter.Render(got); rendered != "(aza)" {
		t.Fatalf("expected (aza), got %s", rendered)
	}
}

func TestSubstituteShadowedParameter(t *testing.T) {
	// The x below /x refers to the inner binder, not the one being
	// substituted.
	abs := parse(t, "/x.xy")
	got := reducer.Substitute(abs, "x", term.Var("a"))
	if !term.Equal(got, abs) {
		t.Fatalf("expected the abstraction untouched, got %s", prettyprinter.Render(got))
	}
}

func TestSubstituteDescendsUnderBinder(t *testing.T) {
	got := reducer.Substitute(parse(t, "/y.xy"), "x", term.Var("a"))
	if rendered := prettyprinter.Render(got); rendered != "(/y.(ay))" {
		t.Fatalf("expected (/y.(ay)), got %s", rendered)
	}
}

func TestCaptureAvoidance(t *testing.T) {
	// Substituting y for x inside /y.x must not let the incoming free y
	// be captured by the binder.
	got := reducer.Substitute(parse(t, "/y.x"), "x", term.Var("y"))

	abs, ok := got.(*term.Abstraction)
	if !ok {
		t.Fatalf("expected an abstraction, got %s", prettyprinter.Render(got))
	}
	if abs.Params[0] == "y" {
		t.Fatalf("bound y captured the replacement: %s", prettyprinter.Render(got))
	}
	if !term.Equal(abs.Body, term.Var("y")) {
		t.Fatalf("expected body y, got %s", prettyprinter.Render(abs.Body))
	}
	if !term.AlphaEqual(got, parse(t, "/z.y")) {
		t.Fatalf("expected a renamed binder over free y, got %s", prettyprinter.Render(got))
	}
}

func TestCaptureAvoidanceRenamesThroughoutBody(t *testing.T) {
	// /y.yxy with x := y: every bound y occurrence must follow the fresh
	// name.
	got := reducer.Substitute(parse(t, "/y.yxy"), "x", term.Var("y"))
	if !term.AlphaEqual(got, parse(t, "/w.wyw")) {
		t.Fatalf("expected alpha-equivalent of /w.(wyw), got %s", prettyprinter.Render(got))
	}
}

func TestCaptureAvoidanceMultipleParameters(t *testing.T) {
	// Both parameters collide with free variables of the replacement.
	got := reducer.Substitute(parse(t, "/yz.xyz"), "x", parse(t, "yz"))
	want := &term.Abstraction{
		Params: []term.Symbol{"a", "b"},
		Body: &term.Application{
			Fn:   parse(t, "yz"),
			Args: []term.Term{term.Var("a"), term.Var("b")},
		},
	}
	if !term.AlphaEqual(got, want) {
		t.Fatalf("expected alpha-equivalent of /ab.((yz)ab), got %s", prettyprinter.Render(got))
	}
	// The original free variables must still be free in the result.
	free := term.FreeVars(got)
	if _, ok := free["y"]; !ok {
		t.Fatalf("free y was captured: %s", prettyprinter.Render(got))
	}
	if _, ok := free["z"]; !ok {
		t.Fatalf("free z was captured: %s", prettyprinter.Render(got))
	}
}

func TestNoGratuitousRenaming(t *testing.T) {
	// x does not occur free below the binder, so the term comes back
	// untouched even though the binder name collides with the replacement.
	abs := parse(t, "/y.z")
	got := reducer.Substitute(abs, "x", term.Var("y"))
	if !term.Equal(got, abs) {
		t.Fatalf("expected the abstraction untouched, got %s", prettyprinter.Render(got))
	}
}

func TestSubstituteDoesNotMutateInput(t *testing.T) {
	input := parse(t, "/y.x")
	before := prettyprinter.Render(input)
	reducer.Substitute(input, "x", term.Var("y"))
	if after := prettyprinter.Render(input); after != before {
		t.Fatalf("input mutated: %s -> %s", before, after)
	}
}

func TestBindAppliesSequentially(t *testing.T) {
	got := reducer.Bind(parse(t, "xy"),
		reducer.Binding{Name: "x", Value: term.Var("a")},
		reducer.Binding{Name: "y", Value: term.Var("b")},
	)
	if rendered := prettyprinter.Render(got); rendered != "(ab)" {
		t.Fatalf("expected (ab), got %s", rendered)
	}
}

func TestBindDoesNotReduce(t *testing.T) {
	got := reducer.Bind(parse(t, "Ix"), reducer.Binding{Name: "x", Value: term.Var("a")})
	if rendered := prettyprinter.Render(got); rendered != "(Ia)" {
		t.Fatalf("expected the unreduced (Ia), got %s", rendered)
	}
}
