package term

// Symbol identifies a variable or combinator purely by name. Two symbols
// are equal iff their names are equal.
type Symbol = string

// Term is the base interface for all term variants. A term is an immutable
// value: substitution and reduction always build new trees, so sub-terms may
// be shared freely between parents.
type Term interface {
	termNode()
}

// Variable is a free or bound occurrence of a name.
type Variable struct {
	Name Symbol
}

func (v *Variable) termNode() {}

// Abstraction is a multi-parameter lambda: /xyz.body binds x, y and z in
// one node. Params is never empty; constructors collapse an empty run to
// the body itself.
type Abstraction struct {
	Params []Symbol
	Body   Term
}

func (a *Abstraction) termNode() {}

// Application is a curried application flattened into one node: the
// function plus every argument applied so far, left to right. Args is
// never empty.
type Application struct {
	Fn   Term
	Args []Term
}

func (a *Application) termNode() {}

// Combinator is a primitive constant. Its reduction rule lives in the
// definition (arity plus body skeleton), not per instance, so all
// occurrences of S share one value.
type Combinator struct {
	Name  Symbol
	Arity int
	Body  Skeleton
}

func (c *Combinator) termNode() {}

// NewAbstraction builds an abstraction, collapsing an empty parameter list
// to the body.
func NewAbstraction(params []Symbol, body Term) Term {
	if len(params) == 0 {
		return body
	}
	return &Abstraction{Params: params, Body: body}
}

// NewApplication builds an application, collapsing zero arguments to the
// function term and flattening a function-position application into a
// single node.
func NewApplication(fn Term, args []Term) Term {
	if len(args) == 0 {
		return fn
	}
	if app, ok := fn.(*Application); ok {
		merged := make([]Term, 0, len(app.Args)+len(args))
		merged = append(merged, app.Args...)
		merged = append(merged, args...)
		return &Application{Fn: app.Fn, Args: merged}
	}
	return &Application{Fn: fn, Args: args}
}

// Var is shorthand for a variable term.
func Var(name Symbol) *Variable {
	return &Variable{Name: name}
}
