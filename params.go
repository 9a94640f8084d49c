package qlife

import "math/rand"

/*
Params is the complete description of one quantum rule: a decoherence
weight and the two operators applied to a cell's own state and to its
summed neighborhood. This is the value the genetic search evolves and
the value a parameter editor replaces wholesale.

Params is treated as immutable. Derive variants through the With
constructors or Clone; never reach in and mutate a shared copy.
*/
type Params struct {
	// Decoherence blends the coherently evolved probability with its
	// classical rounding. 0 keeps the evolved probability, 1 collapses
	// fully every step.
	Decoherence float64

	// Self is applied to the cell's own state, Neighbor to the
	// component-wise sum of its eight toroidal neighbors.
	Self     PauliCoefficients
	Neighbor PauliCoefficients
}

// DefaultParams returns a gentle hand-tuned rule: identity-dominated
// self operator, a weak X-flip coupling to the neighborhood, and
// moderate decoherence.
func DefaultParams() Params {
	return Params{
		Decoherence: 0.3,
		Self:        PauliCoefficients{I: 1},
		Neighbor:    PauliCoefficients{X: 0.25},
	}
}

// RandomParams draws both operators at random. Decoherence is pinned to
// 1 because random rules are only ever used as search individuals, and
// the search always runs fully collapsed.
func RandomParams(rng *rand.Rand) Params {
	return Params{
		Decoherence: 1,
		Self:        RandomCoefficients(rng),
		Neighbor:    RandomCoefficients(rng),
	}
}

// Clone returns an independent copy. Params holds no reference types,
// so this is a plain value copy, kept explicit for call-site clarity.
func (p Params) Clone() Params {
	return p
}

// WithDecoherence returns a copy with the decoherence weight replaced.
func (p Params) WithDecoherence(gamma float64) Params {
	p.Decoherence = gamma
	return p
}

// WithSelf returns a copy with the self operator replaced.
func (p Params) WithSelf(pc PauliCoefficients) Params {
	p.Self = pc
	return p
}

// WithNeighbor returns a copy with the neighbor operator replaced.
func (p Params) WithNeighbor(pc PauliCoefficients) Params {
	p.Neighbor = pc
	return p
}
