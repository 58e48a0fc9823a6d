package term

// Equal reports structural equality. Combinators are equal by name, so an
// S from one basis equals an S from another.
func Equal(a, b Term) bool {
	switch a := a.(type) {
	case *Variable:
		b, ok := b.(*Variable)
		return ok && a.Name == b.Name
	case *Combinator:
		b, ok := b.(*Combinator)
		return ok && a.Name == b.Name
	case *Abstraction:
		b, ok := b.(*Abstraction)
		if !ok || len(a.Params) != len(b.Params) {
			return false
		}
		for i, p := range a.Params {
			if p != b.Params[i] {
				return false
			}
		}
		return Equal(a.Body, b.Body)
	case *Application:
		b, ok := b.(*Application)
		if !ok || len(a.Args) != len(b.Args) {
			return false
		}
		if !Equal(a.Fn, b.Fn) {
			return false
		}
		for i, arg := range a.Args {
			if !Equal(arg, b.Args[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// AlphaEqual reports equality up to consistent renaming of bound
// variables. Parameter grouping is significant: /xy.x and /x./y.x are
// distinct terms even though they reduce identically.
func AlphaEqual(a, b Term) bool {
	return alphaEqual(a, b, map[Symbol]int{}, map[Symbol]int{}, 0)
}

// binders map each bound name to the unique depth at which it was bound;
// two occurrences correspond iff they map to the same depth (or are both
// free under the same name).
func alphaEqual(a, b Term, bindA, bindB map[Symbol]int, depth int) bool {
	switch a := a.(type) {
	case *Variable:
		b, ok := b.(*Variable)
		if !ok {
			return false
		}
		da, boundA := bindA[a.Name]
		db, boundB := bindB[b.Name]
		if boundA != boundB {
			return false
		}
		if boundA {
			return da == db
		}
		return a.Name == b.Name
	case *Combinator:
		b, ok := b.(*Combinator)
		return ok && a.Name == b.Name
	case *Abstraction:
		b, ok := b.(*Abstraction)
		if !ok || len(a.Params) != len(b.Params) {
			return false
		}
		bindA = rebind(bindA, a.Params, depth)
		bindB = rebind(bindB, b.Params, depth)
		return alphaEqual(a.Body, b.Body, bindA, bindB, depth+len(a.Params))
	case *Application:
		b, ok := b.(*Application)
		if !ok || len(a.Args) != len(b.Args) {
			return false
		}
		if !alphaEqual(a.Fn, b.Fn, bindA, bindB, depth) {
			return false
		}
		for i, arg := range a.Args {
			if !alphaEqual(arg, b.Args[i], bindA, bindB, depth) {
				return false
			}
		}
		return true
	}
	return false
}

func rebind(binders map[Symbol]int, params []Symbol, depth int) map[Symbol]int {
	next := make(map[Symbol]int, len(binders)+len(params))
	for name, d := range binders {
		next[name] = d
	}
	for i, p := range params {
		next[p] = depth + i
	}
	return next
}

// FreeVars returns the set of variable names occurring free in t.
func FreeVars(t Term) map[Symbol]struct{} {
	free := map[Symbol]struct{}{}
	collectFree(t, map[Symbol]int{}, free)
	return free
}

func collectFree(t Term, bound map[Symbol]int, free map[Symbol]struct{}) {
	switch t := t.(type) {
	case *Variable:
		if bound[t.Name] == 0 {
			free[t.Name] = struct{}{}
		}
	case *Combinator:
	case *Abstraction:
		for _, p := range t.Params {
			bound[p]++
		}
		collectFree(t.Body, bound, free)
		for _, p := range t.Params {
			bound[p]--
		}
	case *Application:
		collectFree(t.Fn, bound, free)
		for _, arg := range t.Args {
			collectFree(arg, bound, free)
		}
	}
}
