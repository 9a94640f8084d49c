package qlife

import "math"

/*
Step advances the quantum grid by one generation under the given rule.

Each cell evolves coherently first: the self operator is applied to the
cell's own state, the neighbor operator to the unnormalized sum of its
eight toroidal neighbors, and the two terms are added and normalized.
Then decoherence pulls the cell toward a classical attractor. With
p = |β|² of the evolved state and attractor a = 1 when p ≥ ½ else 0,

	pFinal = (1-γ)·p + γ·a, clamped to [0, 1]

and the output cell is the real-valued state (√(1-pFinal), √pFinal).
The collapse always emits real amplitudes, so phase is discarded each
step even at γ = 0; that matches the original rule and is kept as-is.

The input grid is never written. Every output cell is derived from the
frozen input, giving simultaneous-update semantics.
*/
func Step(g *Grid, p Params) *Grid {
	selfOp := p.Self.Matrix()
	neighborOp := p.Neighbor.Matrix()
	gamma := clamp01(p.Decoherence)

	next := NewGrid(g.h, g.w)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			selfTerm := g.At(y, x).Apply(selfOp)
			neighborTerm := g.NeighborSum(y, x).Apply(neighborOp)
			evolved := selfTerm.Add(neighborTerm).Normalize()

			prob := evolved.Probability()
			attractor := 0.0
			if prob >= 0.5 {
				attractor = 1.0
			}
			pFinal := clamp01((1-gamma)*prob + gamma*attractor)

			next.SetAt(y, x, Qubit{
				Alpha: complex(math.Sqrt(1-pFinal), 0),
				Beta:  complex(math.Sqrt(pFinal), 0),
			})
		}
	}
	return next
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
