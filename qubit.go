package qlife

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// normFloor is the squared-magnitude threshold below which a state is
// considered degenerate and reset to the canonical |0⟩ state.
const normFloor = 1e-12

// Qubit is one cell's local two-level state. Alpha carries the |0⟩
// amplitude, Beta the |1⟩ amplitude. Cells are independent; there is no
// joint state across the grid.
type Qubit struct {
	Alpha complex128
	Beta  complex128
}

// Zero returns the canonical |0⟩ state.
func Zero() Qubit {
	return Qubit{Alpha: 1}
}

// One returns the |1⟩ state.
func One() Qubit {
	return Qubit{Beta: 1}
}

// Add returns the component-wise sum of two states. The result is not
// normalized; it is the raw superposition used by the neighbor sum.
func (q Qubit) Add(o Qubit) Qubit {
	return Qubit{Alpha: q.Alpha + o.Alpha, Beta: q.Beta + o.Beta}
}

// Apply multiplies a 2x2 operator into the state vector.
func (q Qubit) Apply(op *mat.CDense) Qubit {
	return Qubit{
		Alpha: op.At(0, 0)*q.Alpha + op.At(0, 1)*q.Beta,
		Beta:  op.At(1, 0)*q.Alpha + op.At(1, 1)*q.Beta,
	}
}

// Magnitude2 returns |alpha|² + |beta|².
func (q Qubit) Magnitude2() float64 {
	a := cmplx.Abs(q.Alpha)
	b := cmplx.Abs(q.Beta)
	return a*a + b*b
}

/*
Normalize scales the state to unit norm. A state whose squared magnitude
falls below normFloor cannot be meaningfully rescaled, so it collapses to
the canonical |0⟩ state instead of dividing by a vanishing norm. That
degenerate-case behavior is part of the contract, not an error.
*/
func (q Qubit) Normalize() Qubit {
	m := q.Magnitude2()
	if m < normFloor {
		return Zero()
	}
	n := complex(math.Sqrt(m), 0)
	return Qubit{Alpha: q.Alpha / n, Beta: q.Beta / n}
}

// Probability returns |beta|², the chance of measuring basis state 1.
func (q Qubit) Probability() float64 {
	b := cmplx.Abs(q.Beta)
	return b * b
}
