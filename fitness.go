package qlife

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

/*
Evaluate scores a candidate rule against a recorded ground-truth
trajectory. The candidate replays the trajectory's initial board through
the quantum engine with decoherence forced to 1 (full collapse each
step, so the run is deterministic) and is charged for every deviation:

  - mismatch: cells that differ from the ground-truth board at each step
  - population: absolute difference in live-cell count, weighted
  - dynamism: absolute difference in flip count, weighted

A candidate whose own flip count is zero for the final stagnation-window
steps is stagnant; everyone else earns the stagnation bonus. The result
is bonus/(1+totalError), strictly positive and bounded by the bonus.

An empty trajectory scores 0 for every candidate. Evaluation itself uses
no randomness.
*/
func Evaluate(p Params, t *Trajectory, cfg *Config) float64 {
	if t.Len() == 0 {
		return 0
	}

	forced := p.WithDecoherence(1)
	grid := FromClassical(t.Steps[0].Board)
	prev := t.Steps[0].Board

	steps := t.Len() - 1
	mismatch := make([]float64, 0, steps)
	popErr := make([]float64, 0, steps)
	dynErr := make([]float64, 0, steps)
	zeroRun := 0

	for i := 1; i <= steps; i++ {
		grid = Step(grid, forced)
		board := grid.Classical()
		target := t.Steps[i]

		mismatch = append(mismatch, float64(board.Flips(target.Board)))
		popErr = append(popErr, math.Abs(float64(board.Population()-target.Population)))

		flips := board.Flips(prev)
		dynErr = append(dynErr, math.Abs(float64(flips-target.Flips)))
		if flips == 0 {
			zeroRun++
		} else {
			zeroRun = 0
		}
		prev = board
	}

	total := floats.Sum(mismatch) +
		cfg.PopulationWeight*floats.Sum(popErr) +
		cfg.DynamismWeight*floats.Sum(dynErr)

	stagnant := cfg.StagnationWindow > 0 && zeroRun >= cfg.StagnationWindow
	fitness := 1 / (1 + total)
	if !stagnant {
		fitness *= cfg.StagnationBonus
	}
	return fitness
}
