package prettyprinter_test

import (
	"testing"

	"github.com/funvibe/ski/internal/prettyprinter"
	"github.com/funvibe/ski/internal/term"
)

func TestRender(t *testing.T) {
	testCases := []struct {
		name  string
		input term.Term
		want  string
	}{
		{"variable", term.Var("x"), "x"},
		{"combinator", term.S, "S"},
		{
			"application",
			term.NewApplication(term.Var("x"), []term.Term{term.Var("y")}),
			"(xy)",
		},
		{
			"flattened_application",
			term.NewApplication(term.K, []term.Term{term.I, term.S, term.S}),
			"(KISS)",
		},
		{
			"nested_argument",
			term.NewApplication(term.Var("x"), []term.Term{
				term.NewApplication(term.Var("y"), []term.Term{term.Var("z")}),
			}),
			"(x(yz))",
		},
		{
			"abstraction",
			term.NewAbstraction([]term.Symbol{"x"}, term.Var("y")),
			"(/x.y)",
		},
		{
			"multi_parameter_abstraction",
			term.NewAbstraction([]term.Symbol{"x", "y", "z"},
				term.NewApplication(
					term.NewApplication(term.Var("x"), []term.Term{term.Var("z")}),
					[]term.Term{term.NewApplication(term.Var("y"), []term.Term{term.Var("z")})},
				)),
			"(/xyz.(xz(yz)))",
		},
		{
			"abstraction_applied",
			term.NewApplication(
				term.NewAbstraction([]term.Symbol{"x"}, term.Var("x")),
				[]term.Term{term.Var("a")},
			),
			"((/x.x)a)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := prettyprinter.Render(tc.input); got != tc.want {
				t.Fatalf("Render = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPrinterIsReusable(t *testing.T) {
	p := prettyprinter.New()
	if got := p.Print(term.Var("x")); got != "x" {
		t.Fatalf("first print: got %q", got)
	}
	if got := p.Print(term.Var("y")); got != "y" {
		t.Fatalf("second print must not carry state over: got %q", got)
	}
}

func TestFreshNamesRenderVerbatim(t *testing.T) {
	abs := term.NewAbstraction([]term.Symbol{"y1"}, term.Var("y"))
	if got := prettyprinter.Render(abs); got != "(/y1.y)" {
		t.Fatalf("Render = %q, want %q", got, "(/y1.y)")
	}
}
