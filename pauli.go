package qlife

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// The four Pauli basis matrices. Together they span every 2x2 complex
// matrix, which is why four coefficients are enough to describe any
// single-qubit operator.
var (
	pauliI = []complex128{1, 0, 0, 1}
	pauliX = []complex128{0, 1, 1, 0}
	pauliY = []complex128{0, -1i, 1i, 0}
	pauliZ = []complex128{1, 0, 0, -1}
)

/*
PauliCoefficients describe a 2x2 complex operator as a linear combination
over the Pauli basis:

	W = I·σ_I + X·σ_X + Y·σ_Y + Z·σ_Z

The coefficients are pure data. The matrix itself is rebuilt on demand;
grids are small enough that caching would buy nothing.
*/
type PauliCoefficients struct {
	I complex128
	X complex128
	Y complex128
	Z complex128
}

// Matrix assembles the operator described by the coefficients.
func (pc PauliCoefficients) Matrix() *mat.CDense {
	data := make([]complex128, 4)
	for k := 0; k < 4; k++ {
		data[k] = pc.I*pauliI[k] + pc.X*pauliX[k] + pc.Y*pauliY[k] + pc.Z*pauliZ[k]
	}
	return mat.NewCDense(2, 2, data)
}

// RandomCoefficients draws each real and imaginary part uniformly from
// [-1, 1). Used to seed the search population.
func RandomCoefficients(rng *rand.Rand) PauliCoefficients {
	draw := func() complex128 {
		return complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}
	return PauliCoefficients{I: draw(), X: draw(), Y: draw(), Z: draw()}
}
