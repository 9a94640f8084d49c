package qlife

import "errors"

// ErrTargetNotClean is returned when Advance finds residue in the
// target register. Nothing is mutated in that case.
var ErrTargetNotClean = errors.New("qlife: target register is not clean")

/*
Registers is the reversible-computation lab: two equal-size classical
grids, system and target. The reversible update writes the next Game of
Life generation into the target by XOR-accumulation,

	target ⊕= step(system)

which is its own inverse for a fixed system, so the whole move can be
undone. The construction only stays reversible while the target starts
each round clean (all zero); Advance enforces that, ForceClear exists to
break it on purpose.
*/
type Registers struct {
	system *Board
	target *Board
}

// NewRegisters returns clean system and target registers.
func NewRegisters(h, w int) *Registers {
	return &Registers{system: NewBoard(h, w), target: NewBoard(h, w)}
}

// System returns the system register.
func (r *Registers) System() *Board { return r.system }

// Target returns the target register.
func (r *Registers) Target() *Board { return r.target }

// Toggle flips one system cell.
func (r *Registers) Toggle(y, x int) {
	r.system.Toggle(y, x)
}

// LoadPattern stamps a centered pattern into the system and clears the
// target, restoring the clean precondition.
func (r *Registers) LoadPattern(pattern [][]int) {
	r.system.LoadPattern(pattern)
	r.target.Clear()
}

// LoadRandom fills the system with random noise and clears the target.
func (r *Registers) LoadRandom(draw func() float64, threshold float64) {
	r.system.LoadRandom(draw, threshold)
	r.target.Clear()
}

// LoadEmpty clears both registers.
func (r *Registers) LoadEmpty() {
	r.system.Clear()
	r.target.Clear()
}

// ComputeInto XOR-accumulates the next generation of the system into
// the target. The system is untouched.
func (r *Registers) ComputeInto() {
	r.target.XOR(r.system.Step())
}

// Swap exchanges the contents of the two registers.
func (r *Registers) Swap() {
	r.system, r.target = r.target, r.system
}

/*
Advance performs one reversible step: compute-into-target, then swap, so
the system ends up holding the next generation and the target holds the
previous system state. It refuses to run when the target is dirty —
XOR-ing into residue would destroy reversibility — and in that case
returns ErrTargetNotClean with both registers unchanged.
*/
func (r *Registers) Advance() error {
	if !r.target.IsZero() {
		return ErrTargetNotClean
	}
	r.ComputeInto()
	r.Swap()
	return nil
}

// ForceClear zeroes the target register unconditionally. This discards
// the history needed to reverse the last Advance; it exists for
// experimentation, not for correct reversible use.
func (r *Registers) ForceClear() {
	r.target.Clear()
}
