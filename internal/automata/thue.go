package automata

import (
	"math/rand"
	"strings"
)

// Rule rewrites every occurrence of From to To in one step.
type Rule struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// SemiThueSystem applies string rewrite rules until none matches. By
// default the first matching rule wins each step; with Random set, a
// random matching rule is chosen instead.
type SemiThueSystem struct {
	Rules  []Rule
	Random bool
}

func (s *SemiThueSystem) Run(tape string, maxIters int) ([]string, bool, error) {
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

func (s *SemiThueSystem) step(tape string) (string, bool) {
	if s.Random {
		var matching []Rule
		for _, rule := range s.Rules {
			if strings.Contains(tape, rule.From) {
				matching = append(matching, rule)
			}
		}
		if len(matching) == 0 {
			return "", false
		}
		rule := matching[rand.Intn(len(matching))]
		return strings.ReplaceAll(tape, rule.From, rule.To), true
	}
	for _, rule := range s.Rules {
		if strings.Contains(tape, rule.From) {
			return strings.ReplaceAll(tape, rule.From, rule.To), true
		}
	}
	return "", false
}
