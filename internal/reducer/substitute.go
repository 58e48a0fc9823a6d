package reducer

import (
	"strconv"

	"github.com/funvibe/ski/internal/term"
)

// substituter performs capture-avoiding substitution. Its fresh-name
// counter is scoped to one top-level reduction run, so concurrent
// reductions never interleave fresh-name allocation.
type substituter struct {
	counter int
}

// Substitute replaces every free occurrence of name in t with replacement,
// renaming bound variables where they would capture a free variable of the
// replacement. Inputs are never mutated.
func Substitute(t term.Term, name term.Symbol, replacement term.Term) term.Term {
	s := &substituter{}
	return s.substitute(t, name, replacement)
}

func (s *substituter) substitute(t term.Term, name term.Symbol, replacement term.Term) term.Term {
	switch t := t.(type) {
	case *term.Variable:
		if t.Name == name {
			return replacement
		}
		return t

	case *term.Combinator:
		return t

	case *term.Application:
		fn := s.substitute(t.Fn, name, replacement)
		args := make([]term.Term, len(t.Args))
		for i, arg := range t.Args {
			args[i] = s.substitute(arg, name, replacement)
		}
		return &term.Application{Fn: fn, Args: args}

	case *term.Abstraction:
		// A parameter of the same name shadows the outer binding: every
		// occurrence below refers to the inner binder and stays untouched.
		for _, p := range t.Params {
			if p == name {
				return t
			}
		}
		if !occursFree(t.Body, name) {
			return t
		}

		// Rename any parameter that would capture a free variable of the
		// replacement before descending.
		replFree := term.FreeVars(replacement)
		params := t.Params
		body := t.Body
		copied := false
		for i, p := range t.Params {
			if _, captures := replFree[p]; !captures {
				continue
			}
			fresh := s.fresh(p, body, replacement)
			body = s.substitute(body, p, term.Var(fresh))
			if !copied {
				params = append([]term.Symbol(nil), t.Params...)
				copied = true
			}
			params[i] = fresh
		}
		return &term.Abstraction{Params: params, Body: s.substitute(body, name, replacement)}
	}
	return t
}

// fresh returns a name not occurring free in any of the given terms,
// derived from base with an increasing numeric suffix.
func (s *substituter) fresh(base term.Symbol, avoid ...term.Term) term.Symbol {
	for {
		s.counter++
		candidate := base + strconv.Itoa(s.counter)
		if !freeInAny(candidate, avoid) {
			return candidate
		}
	}
}

func freeInAny(name term.Symbol, terms []term.Term) bool {
	for _, t := range terms {
		if occursFree(t, name) {
			return true
		}
	}
	return false
}

func occursFree(t term.Term, name term.Symbol) bool {
	_, ok := term.FreeVars(t)[name]
	return ok
}

// Binding is one name=value pair for Bind.
type Binding struct {
	Name  term.Symbol
	Value term.Term
}

// Bind applies the bindings as sequential substitutions, in order, without
// forcing any reduction.
func Bind(t term.Term, bindings ...Binding) term.Term {
	s := &substituter{}
	for _, b := range bindings {
		t = s.substitute(t, b.Name, b.Value)
	}
	return t
}
