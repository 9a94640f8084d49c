package qlife

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

/*
This file is the falsifiability lab: a seven-qubit redundancy toy model,
separate from the grid simulation. One system qubit couples to six
environment qubits grouped into three two-qubit blocks; a Z-type
interaction writes the system's Z information into block 0 while an
X-type interaction (the same coupling conjugated by Hadamards) writes X
information into block 2. Classical mutual information between the
system and each block, in both measurement bases and against randomized
block assignments, shows which pointer basis won.

Unlike the grid cells, the seven qubits here share one joint state
vector; the lab needs genuine correlations to measure.
*/

const (
	redundancyQubits = 7
	systemQubit      = 0
)

var (
	envQubits = []int{1, 2, 3, 4, 5, 6}

	// Geometric block layout. Block 0 receives the Z coupling, block 2
	// the X coupling, block 1 stays untouched as a control.
	redundancyBlocks = [3][2]int{{1, 2}, {3, 4}, {5, 6}}
)

// gate is a single-qubit 2x2 operator in dense form.
type gate [2][2]complex128

var hadamard = gate{
	{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)},
	{complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0)},
}

// ry returns the single-qubit Ry rotation by theta.
func ry(theta float64) gate {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return gate{{c, -s}, {s, c}}
}

// jointState is a full 2^7 amplitude vector over the lab's qubits.
type jointState []complex128

// newJointState prepares |+⟩ on the system qubit and |0...0⟩ on the
// environment.
func newJointState() jointState {
	state := make(jointState, 1<<redundancyQubits)
	state[0] = complex(1/math.Sqrt2, 0)
	state[1<<systemQubit] = complex(1/math.Sqrt2, 0)
	return state
}

// applySingle applies a single-qubit gate to the given qubit.
func (s jointState) applySingle(g gate, qubit int) jointState {
	step := 1 << qubit
	period := step << 1
	out := make(jointState, len(s))
	copy(out, s)
	for start := 0; start < len(s); start += period {
		for offset := 0; offset < step; offset++ {
			i0 := start + offset
			i1 := i0 + step
			a0, a1 := s[i0], s[i1]
			out[i0] = g[0][0]*a0 + g[0][1]*a1
			out[i1] = g[1][0]*a0 + g[1][1]*a1
		}
	}
	return out
}

// applyControlled applies a gate to target on the subspace where
// control is set.
func (s jointState) applyControlled(control, target int, g gate) jointState {
	controlMask := 1 << control
	targetMask := 1 << target
	out := make(jointState, len(s))
	copy(out, s)
	for index := range s {
		if index&controlMask != 0 && index&targetMask == 0 {
			i0 := index
			i1 := index | targetMask
			a0, a1 := s[i0], s[i1]
			out[i0] = g[0][0]*a0 + g[0][1]*a1
			out[i1] = g[1][0]*a0 + g[1][1]*a1
		}
	}
	return out
}

// renormalize rescales to unit norm when floating point drift has
// accumulated. The gates are unitary; this only cleans up rounding.
func (s jointState) renormalize() jointState {
	norm := math.Sqrt(s.totalProbability())
	if math.Abs(norm-1) < 1e-12 {
		return s
	}
	out := make(jointState, len(s))
	n := complex(norm, 0)
	for i, a := range s {
		out[i] = a / n
	}
	return out
}

func (s jointState) totalProbability() float64 {
	probs := make([]float64, len(s))
	for i, a := range s {
		probs[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	return floats.Sum(probs)
}

// applyZCoupling rotates block-0 qubits conditioned on the system.
func (s jointState) applyZCoupling(theta float64) jointState {
	g := ry(theta)
	out := s
	for _, q := range redundancyBlocks[0] {
		out = out.applyControlled(systemQubit, q, g)
	}
	return out
}

// applyXCoupling is the same coupling on block 2, conjugated by
// Hadamards on the system so it records X information instead.
func (s jointState) applyXCoupling(theta float64) jointState {
	if math.Abs(theta) < 1e-12 {
		return s
	}
	g := ry(theta)
	out := s.applySingle(hadamard, systemQubit)
	for _, q := range redundancyBlocks[2] {
		out = out.applyControlled(systemQubit, q, g)
	}
	return out.applySingle(hadamard, systemQubit)
}

// jointDistribution marginalizes the state onto the measured qubits.
func (s jointState) jointDistribution(measured []int) []float64 {
	probs := make([]float64, 1<<len(measured))
	for index, a := range s {
		p := real(a)*real(a) + imag(a)*imag(a)
		if p == 0 {
			continue
		}
		outcome := 0
		for pos, q := range measured {
			if index&(1<<q) != 0 {
				outcome |= 1 << pos
			}
		}
		probs[outcome] += p
	}
	return probs
}

// mutualInformation computes I(S;B) in bits from a joint distribution
// whose lowest bit is the system outcome.
func mutualInformation(joint []float64) float64 {
	pSystem := [2]float64{}
	pBlock := make([]float64, len(joint)/2)
	for idx, p := range joint {
		pSystem[idx&1] += p
		pBlock[idx>>1] += p
	}
	mi := 0.0
	for idx, p := range joint {
		if p <= 0 {
			continue
		}
		denom := pSystem[idx&1] * pBlock[idx>>1]
		if denom <= 0 {
			continue
		}
		mi += p * math.Log2(p/denom)
	}
	return mi
}

// Basis selects which pointer the redundancy summaries refer to.
type Basis int

const (
	// BasisZ reads the couplings in the computational basis.
	BasisZ Basis = iota
	// BasisX reads them after Hadamard rotations.
	BasisX
)

// RedundancyResult holds the mutual-information tables of one
// experiment run: per geometric block, per basis, and the same averaged
// over every permutation of the environment qubits.
type RedundancyResult struct {
	ThetaZ float64
	ThetaX float64

	IZ       [3]float64
	IX       [3]float64
	IZRandom [3]float64
	IXRandom [3]float64
}

func basisOps(b Basis, block [2]int) map[int]gate {
	if b == BasisZ {
		return nil
	}
	ops := map[int]gate{systemQubit: hadamard}
	for _, q := range block {
		ops[q] = hadamard
	}
	return ops
}

func blockMutualInformation(s jointState, block [2]int, b Basis) float64 {
	transformed := s
	for q, g := range basisOps(b, block) {
		transformed = transformed.applySingle(g, q)
	}
	measured := []int{systemQubit, block[0], block[1]}
	return mutualInformation(transformed.jointDistribution(measured))
}

func geometricTable(s jointState, b Basis) [3]float64 {
	var out [3]float64
	for i, block := range redundancyBlocks {
		out[i] = blockMutualInformation(s, block, b)
	}
	return out
}

// randomizedTable averages the per-block mutual information over every
// assignment of environment qubits to blocks, washing out the geometry.
func randomizedTable(s jointState, b Basis) [3]float64 {
	var totals [3]float64
	count := 0
	permute(envQubits, func(perm []int) {
		blocks := [3][2]int{
			{perm[0], perm[1]},
			{perm[2], perm[3]},
			{perm[4], perm[5]},
		}
		for i, block := range blocks {
			totals[i] += blockMutualInformation(s, block, b)
		}
		count++
	})
	for i := range totals {
		totals[i] /= float64(count)
	}
	return totals
}

// permute visits every permutation of items. Heap's algorithm over a
// scratch copy; visit must not retain the slice.
func permute(items []int, visit func([]int)) {
	scratch := make([]int, len(items))
	copy(scratch, items)
	var heap func(k int)
	heap = func(k int) {
		if k == 1 {
			visit(scratch)
			return
		}
		for i := 0; i < k; i++ {
			heap(k - 1)
			if k%2 == 0 {
				scratch[i], scratch[k-1] = scratch[k-1], scratch[i]
			} else {
				scratch[0], scratch[k-1] = scratch[k-1], scratch[0]
			}
		}
	}
	heap(len(scratch))
}

/*
RunRedundancyExperiment prepares the seven-qubit state, applies both
couplings, and fills every mutual-information table. Pure and
deterministic.
*/
func RunRedundancyExperiment(thetaZ, thetaX float64) RedundancyResult {
	state := newJointState().
		applyZCoupling(thetaZ).
		applyXCoupling(thetaX).
		renormalize()

	return RedundancyResult{
		ThetaZ:   thetaZ,
		ThetaX:   thetaX,
		IZ:       geometricTable(state, BasisZ),
		IX:       geometricTable(state, BasisX),
		IZRandom: randomizedTable(state, BasisZ),
		IXRandom: randomizedTable(state, BasisX),
	}
}

// DeltaGeometry measures how much the pointer's preferred block beats
// the opposite block in the geometric layout.
func (r RedundancyResult) DeltaGeometry(b Basis) float64 {
	if b == BasisZ {
		return r.IZ[0] - r.IZ[2]
	}
	return r.IX[2] - r.IX[0]
}

// DeltaRandom is the same contrast over the randomized assignments.
func (r RedundancyResult) DeltaRandom(b Basis) float64 {
	if b == BasisZ {
		return r.IZRandom[0] - r.IZRandom[2]
	}
	return r.IXRandom[2] - r.IXRandom[0]
}

// Redundancy returns the strongest block correlation for a pointer.
func (r RedundancyResult) Redundancy(b Basis) float64 {
	table := r.IZ
	if b == BasisX {
		table = r.IX
	}
	max := table[0]
	for _, v := range table[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
