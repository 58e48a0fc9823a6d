package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/funvibe/ski/internal/automata"
	"github.com/funvibe/ski/internal/config"
)

func runDemo(args []string) int {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	iters := fs.Int("n", 0, "iteration budget (0 = machine file value or default)")
	runs := fs.Bool("runs", false, "render run lengths instead of raw tapes")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, red("demo: expected a machine .yaml file or rule54"))
		return 1
	}

	var machine *automata.Machine
	if fs.Arg(0) == "rule54" {
		machine = rule54Machine()
	} else {
		m, err := automata.LoadMachine(fs.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return 1
		}
		machine = m
	}

	steps := *iters
	if steps == 0 {
		steps = machine.Steps
	}
	if steps == 0 {
		steps = config.DefaultDemoIters
	}

	history, exhausted, err := machine.System.Run(machine.Tape, steps)
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 1
	}
	for _, tape := range history {
		if *runs {
			fmt.Println(renderRuns(tape))
		} else {
			fmt.Println(tape)
		}
	}
	// The cellular automaton always runs its full budget; for the halting
	// machines an exhausted budget means the run was cut short.
	if exhausted && machine.Kind != "eca" {
		fmt.Fprintln(os.Stderr, yellow(fmt.Sprintf("iteration budget of %d exhausted", steps)))
	}
	return 0
}

func rule54Machine() *automata.Machine {
	return &automata.Machine{
		Kind:   "eca",
		System: &automata.ElementaryCellularAutomaton{Rule: 54},
		Tape:   automata.Pad("1101", 10),
		Steps:  10,
	}
}

const runChars = " 123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// renderRuns compresses each maximal run of equal cells into a single
// glyph encoding the run length; '#' marks runs too long for the alphabet.
func renderRuns(tape string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < len(tape); {
		j := i
		for j < len(tape) && tape[j] == tape[i] {
			j++
		}
		if n := j - i; n < len(runChars) {
			b.WriteByte(runChars[n])
		} else {
			b.WriteByte('#')
		}
		i = j
	}
	b.WriteByte(']')
	return b.String()
}
