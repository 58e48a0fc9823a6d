// Package automata holds the rewriting-system demonstrations: tag systems,
// cyclic tag systems, semi-Thue systems and elementary cellular automata.
// They are simple step functions over strings, independent of the term
// engine, and share its budget shape: a run reports exhaustion instead of
// raising an error.
package automata

// System runs a tape for at most maxIters rewrites and returns the tape
// history including the initial tape. The bool is true when the budget ran
// out with the machine still running.
type System interface {
	Run(tape string, maxIters int) ([]string, bool, error)
}

func validateBinary(tape string, what string) error {
	for i := 0; i < len(tape); i++ {
		if tape[i] != '0' && tape[i] != '1' {
			return &ValidationError{What: what, Detail: "contains symbols other than '0' and '1'"}
		}
	}
	return nil
}

// ValidationError reports an ill-formed machine definition or tape.
type ValidationError struct {
	What   string
	Detail string
}

func (e *ValidationError) Error() string {
	return e.What + " " + e.Detail
}
