package reducer

import (
	"github.com/funvibe/ski/internal/term"
)

// Reduce rewrites t toward normal form, one leftmost-outermost redex at a
// time, and reports the number of steps taken. maxSteps <= 0 means run
// until normal form; a non-terminating term then loops forever, which is
// the caller's responsibility to bound. The returned bool is true when the
// budget ran out before a normal form was reached.
func Reduce(t term.Term, maxSteps int) (term.Term, int, bool) {
	s := &substituter{}
	steps := 0
	for {
		if maxSteps > 0 && steps >= maxSteps {
			if _, reducible := s.step(t); reducible {
				return t, steps, true
			}
			return t, steps, false
		}
		next, ok := s.step(t)
		if !ok {
			return t, steps, false
		}
		t = next
		steps++
	}
}

// Normalize reduces t to normal form with no step budget.
func Normalize(t term.Term) term.Term {
	nf, _, _ := Reduce(t, 0)
	return nf
}

// Apply applies t to the given arguments and reduces the result to normal
// form. With no arguments it normalizes t itself.
func Apply(t term.Term, args ...term.Term) term.Term {
	return Normalize(term.NewApplication(t, args))
}

// Step performs a single rewrite, returning false when t is already in
// normal form. Used for step-by-step traces.
func Step(t term.Term) (term.Term, bool) {
	s := &substituter{}
	return s.step(t)
}

// step applies the first rule found in normal order: the redex at the node
// itself, then the function position, then arguments left to right, then
// inside an abstraction body.
func (s *substituter) step(t term.Term) (term.Term, bool) {
	switch t := t.(type) {
	case *term.Application:
		switch fn := t.Fn.(type) {
		case *term.Abstraction:
			// Beta: consume one parameter and re-attach the surplus
			// arguments. The substitution runs against the re-wrapped
			// abstraction over the remaining parameters, so a remaining
			// binder colliding with a free variable of the argument gets
			// alpha-renamed instead of capturing it. An abstraction with
			// more parameters than arguments is stuck (a partial
			// application), the same steady state as an under-applied
			// combinator.
			if len(t.Args) >= len(fn.Params) {
				rest := term.NewAbstraction(fn.Params[1:], fn.Body)
				body := s.substitute(rest, fn.Params[0], t.Args[0])
				return term.NewApplication(body, t.Args[1:]), true
			}
		case *term.Combinator:
			if len(t.Args) >= fn.Arity {
				expanded := instantiate(fn.Body, t.Args[:fn.Arity])
				return term.NewApplication(expanded, t.Args[fn.Arity:]), true
			}
			// Under-applied combinators are stuck, not errors.
		}
		if next, ok := s.step(t.Fn); ok {
			return term.NewApplication(next, t.Args), true
		}
		for i, arg := range t.Args {
			if next, ok := s.step(arg); ok {
				args := make([]term.Term, len(t.Args))
				copy(args, t.Args)
				args[i] = next
				return &term.Application{Fn: t.Fn, Args: args}, true
			}
		}
		return nil, false

	case *term.Abstraction:
		if next, ok := s.step(t.Body); ok {
			return &term.Abstraction{Params: t.Params, Body: next}, true
		}
		return nil, false

	default:
		// Variables and combinators are normal forms.
		return nil, false
	}
}

// instantiate fills a combinator body skeleton with the consumed
// arguments, e.g. S's [0, 2, [1, 2]] with (x, y, z) becomes (xz(yz)).
func instantiate(skeleton term.Skeleton, args []term.Term) term.Term {
	switch sk := skeleton.(type) {
	case term.Arg:
		return args[sk]
	case term.Branch:
		fn := instantiate(sk[0], args)
		rest := make([]term.Term, len(sk)-1)
		for i, sub := range sk[1:] {
			rest[i] = instantiate(sub, args)
		}
		return term.NewApplication(fn, rest)
	}
	return nil
}
