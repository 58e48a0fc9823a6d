package automata

// ElementaryCellularAutomaton advances a circular 0/1 tape by the numbered
// Wolfram rule: each cell's next value is the rule's bit at the index
// formed by its left neighbor, itself, and its right neighbor.
type ElementaryCellularAutomaton struct {
	Rule uint8
}

func (s *ElementaryCellularAutomaton) Run(tape string, maxIters int) ([]string, bool, error) {
	if err := validateBinary(tape, "tape"); err != nil {
		return nil, false, err
	}
	history := []string{tape}
	for i := 0; i < maxIters; i++ {
		tape = s.step(tape)
		history = append(history, tape)
	}
	// The automaton never halts on its own.
	return history, true, nil
}

func (s *ElementaryCellularAutomaton) step(tape string) string {
	n := len(tape)
	if n == 0 {
		return tape
	}
	bit := func(i int) int {
		if tape[(i+n)%n] == '1' {
			return 1
		}
		return 0
	}
	next := make([]byte, n)
	for i := 0; i < n; i++ {
		idx := bit(i-1)<<2 | bit(i)<<1 | bit(i+1)
		if s.Rule&(1<<idx) != 0 {
			next[i] = '1'
		} else {
			next[i] = '0'
		}
	}
	return string(next)
}

// Pad surrounds a tape with n zero cells on each side, the usual way to
// give a finite pattern room to grow.
func Pad(tape string, n int) string {
	zeros := make([]byte, n)
	for i := range zeros {
		zeros[i] = '0'
	}
	return string(zeros) + tape + string(zeros)
}
