package automata

// CyclicTagSystem rewrites 0/1 tapes: each step removes the first symbol
// and, if it was '1', appends the current production; the production index
// rotates every step regardless. It halts on an empty tape.
type CyclicTagSystem struct {
	productions []string
}

func NewCyclicTagSystem(productions []string) (*CyclicTagSystem, error) {
	if len(productions) == 0 {
		return nil, &ValidationError{What: "productions", Detail: "must not be empty"}
	}
	for _, production := range productions {
		if err := validateBinary(production, "production"); err != nil {
			return nil, err
		}
	}
	return &CyclicTagSystem{productions: productions}, nil
}

func (s *CyclicTagSystem) Run(tape string, maxIters int) ([]string, bool, error) {
	if err := validateBinary(tape, "tape"); err != nil {
		return nil, false, err
	}
	history := []string{tape}
	for i := 0; i < maxIters; i++ {
		if tape == "" {
			return history, false, nil
		}
		symbol := tape[0]
		tape = tape[1:]
		if symbol == '1' {
			tape += s.productions[i%len(s.productions)]
		}
		history = append(history, tape)
	}
	return history, true, nil
}
