package automata

import "fmt"

// TagSystem is an m-tag system: each step reads the first symbol, appends
// its production, and deletes the first Deletion symbols. It halts when
// the tape is shorter than the deletion number or starts with the halting
// symbol.
type TagSystem struct {
	deletion    int
	productions map[byte]string
	halt        byte // 0 when unset
}

func NewTagSystem(deletion int, productions map[string]string, halt string) (*TagSystem, error) {
	if deletion < 1 {
		return nil, &ValidationError{What: "deletion number", Detail: "must be at least 1"}
	}
	if len(productions) == 0 {
		return nil, &ValidationError{What: "productions", Detail: "must not be empty"}
	}
	if len(halt) > 1 {
		return nil, &ValidationError{What: "halting symbol", Detail: "must be a single symbol"}
	}
	byKey := make(map[byte]string, len(productions))
	for sym, production := range productions {
		if len(sym) != 1 {
			return nil, &ValidationError{What: "productions", Detail: fmt.Sprintf("symbol %q is not a single character", sym)}
		}
		byKey[sym[0]] = production
	}
	var haltSym byte
	if halt != "" {
		haltSym = halt[0]
	}
	// Every symbol a production can write must itself have a production,
	// except the halting symbol.
	for _, production := range byKey {
		for i := 0; i < len(production); i++ {
			sym := production[i]
			if sym == haltSym {
				continue
			}
			if _, ok := byKey[sym]; !ok {
				return nil, &ValidationError{What: "productions", Detail: fmt.Sprintf("missing production for symbol %q", string(sym))}
			}
		}
	}
	return &TagSystem{deletion: deletion, productions: byKey, halt: haltSym}, nil
}

func (s *TagSystem) Run(tape string, maxIters int) ([]string, bool, error) {
	for i := 0; i < len(tape); i++ {
		if s.halt != 0 && tape[i] == s.halt {
			continue
		}
		if _, ok := s.productions[tape[i]]; !ok {
			return nil, false, &ValidationError{What: "tape", Detail: fmt.Sprintf("contains symbol %q without a production", string(tape[i]))}
		}
	}
	history := []string{tape}
	for i := 0; i < maxIters; i++ {
		next, ok := s.step(tape)
		if !ok {
			return history, false, nil
		}
		tape = next
		history = append(history, tape)
	}
	return history, true, nil
}

func (s *TagSystem) step(tape string) (string, bool) {
	if len(tape) < s.deletion {
		return "", false
	}
	symbol := tape[0]
	if s.halt != 0 && symbol == s.halt {
		return "", false
	}
	return tape[s.deletion:] + s.productions[symbol], true
}
