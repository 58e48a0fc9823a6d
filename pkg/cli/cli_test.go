package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/funvibe/ski/internal/config"
)

func TestEvaluate(t *testing.T) {
	var out bytes.Buffer
	opts := &evalOptions{maxSteps: config.DefaultMaxSteps, basisName: "full"}
	if err := evaluate(&out, "KISS", opts); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out.String()); got != "S" {
		t.Fatalf("evaluate printed %q, want %q", got, "S")
	}
}

func TestEvaluateUnknownBasis(t *testing.T) {
	var out bytes.Buffer
	opts := &evalOptions{maxSteps: 10, basisName: "nope"}
	if err := evaluate(&out, "x", opts); err == nil {
		t.Fatal("expected an error for an unknown basis")
	}
}

func TestEvaluateParseError(t *testing.T) {
	var out bytes.Buffer
	opts := &evalOptions{maxSteps: 10, basisName: "full"}
	err := evaluate(&out, "(x", opts)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if !strings.Contains(err.Error(), "P002") {
		t.Fatalf("expected a P002 diagnostic, got %v", err)
	}
}

func TestEvaluateBasisRestricts(t *testing.T) {
	var out bytes.Buffer
	opts := &evalOptions{maxSteps: 10, basisName: "ski"}
	if err := evaluate(&out, "Wxy", opts); err == nil {
		t.Fatal("W must not parse under the ski basis")
	}
}

func TestIsSourceFile(t *testing.T) {
	testCases := []struct {
		path string
		want bool
	}{
		{"combinators.ski", true},
		{"terms.lam", true},
		{"notes.txt", false},
		{"machine.yaml", false},
	}
	for _, tc := range testCases {
		if got := isSourceFile(tc.path); got != tc.want {
			t.Fatalf("isSourceFile(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestRenderRuns(t *testing.T) {
	testCases := []struct {
		tape string
		want string
	}{
		{"000110", "[321]"},
		{"1", "[1]"},
		{"", "[]"},
		{"0000000000", "[a]"},
		{strings.Repeat("0", len(runChars)+5), "[#]"},
	}
	for _, tc := range testCases {
		if got := renderRuns(tc.tape); got != tc.want {
			t.Fatalf("renderRuns(%q) = %q, want %q", tc.tape, got, tc.want)
		}
	}
}

func TestPrintReplHelp(t *testing.T) {
	var out bytes.Buffer
	printReplHelp(&out)
	want := "special commands: %exit %basis %steps %trace %info\n"
	if out.String() != want {
		t.Fatalf("printReplHelp wrote %q, want %q", out.String(), want)
	}
}

func TestRule54Machine(t *testing.T) {
	m := rule54Machine()
	if m.Kind != "eca" || m.Steps != 10 {
		t.Fatalf("unexpected machine: %+v", m)
	}
	if len(m.Tape) != 24 {
		t.Fatalf("expected the padded 4-cell tape, got %q", m.Tape)
	}
	history, exhausted, err := m.System.Run(m.Tape, m.Steps)
	if err != nil {
		t.Fatal(err)
	}
	if !exhausted || len(history) != 11 {
		t.Fatalf("expected 11 tapes, got %d (exhausted=%v)", len(history), exhausted)
	}
}
