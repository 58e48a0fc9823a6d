package term

// Skeleton encodes a combinator's reduction rule as a template over its
// argument positions: Arg(i) stands for the i-th argument, Branch is an
// application whose first element is the function.
type Skeleton interface {
	skeletonNode()
}

// Arg is an argument index inside a combinator body.
type Arg int

func (Arg) skeletonNode() {}

// Branch is an application template; Branch{x, y, z} instantiates to the
// application of x to y and z.
type Branch []Skeleton

func (Branch) skeletonNode() {}

// Basis maps uppercase letters to the combinators they denote during
// parsing.
type Basis map[Symbol]*Combinator

func NewBasis(combinators ...*Combinator) Basis {
	basis := make(Basis, len(combinators))
	for _, c := range combinators {
		basis[c.Name] = c
	}
	return basis
}

var (
	// S x y z -> x z (y z)
	S = &Combinator{Name: "S", Arity: 3, Body: Branch{Arg(0), Arg(2), Branch{Arg(1), Arg(2)}}}
	// K x y -> x
	K = &Combinator{Name: "K", Arity: 2, Body: Arg(0)}
	// I x -> x
	I = &Combinator{Name: "I", Arity: 1, Body: Arg(0)}
	// B x y z -> x (y z)
	B = &Combinator{Name: "B", Arity: 3, Body: Branch{Arg(0), Branch{Arg(1), Arg(2)}}}
	// C x y z -> x y z
	C = &Combinator{Name: "C", Arity: 3, Body: Branch{Arg(0), Arg(1), Arg(2)}}
	// W x y -> x y y
	W = &Combinator{Name: "W", Arity: 2, Body: Branch{Arg(0), Arg(1), Arg(1)}}
)

var (
	SKI  = NewBasis(S, K, I)
	BCKW = NewBasis(B, C, K, W)
	Full = NewBasis(B, C, I, K, S, W)
)

// BasisByName returns a named standard basis, or nil if the name is
// unknown. Used by the CLI's -basis flag and the REPL's %basis command.
func BasisByName(name string) Basis {
	switch name {
	case "ski":
		return SKI
	case "bckw":
		return BCKW
	case "full":
		return Full
	}
	return nil
}
