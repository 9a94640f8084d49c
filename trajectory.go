package qlife

/*
The search needs a fixed target that is identical on every run for a
given seed, across platforms and Go versions. math/rand makes no such
cross-version promise, so ground truth uses its own tiny generator: a
Park-Miller multiplicative recurrence over uint64, yielding values in
[0, 1).
*/
type seededSource struct {
	state uint64
}

const (
	lehmerMultiplier = 16807
	lehmerModulus    = 2147483647
)

func newSeededSource(seed int64) *seededSource {
	s := uint64(seed) % lehmerModulus
	if s == 0 {
		s = 1
	}
	return &seededSource{state: s}
}

// Float64 returns the next value in [0, 1).
func (s *seededSource) Float64() float64 {
	s.state = s.state * lehmerMultiplier % lehmerModulus
	return float64(s.state) / lehmerModulus
}

// TrajectoryStep is one recorded snapshot of the ground truth: the board
// itself, its live-cell count, and how many cells changed since the
// previous step. Step zero always records zero flips.
type TrajectoryStep struct {
	Board      *Board
	Population int
	Flips      int
}

// Trajectory is an immutable recorded run of the classical rule. It is
// built once and then only read; the fitness evaluator measures every
// candidate against the same frozen sequence.
type Trajectory struct {
	Seed  int64
	Steps []TrajectoryStep
}

/*
NewTrajectory seeds a board deterministically and records steps+1
snapshots of the classical Game of Life: the initial board, then one
entry per generation. A cell starts alive when its seeded draw exceeds
threshold. Identical arguments always produce identical trajectories.
*/
func NewTrajectory(seed int64, h, w, steps int, threshold float64) *Trajectory {
	src := newSeededSource(seed)
	board := NewBoard(h, w)
	board.LoadRandom(src.Float64, threshold)

	t := &Trajectory{
		Seed:  seed,
		Steps: make([]TrajectoryStep, 0, steps+1),
	}
	t.Steps = append(t.Steps, TrajectoryStep{
		Board:      board.Clone(),
		Population: board.Population(),
	})

	for i := 0; i < steps; i++ {
		next := board.Step()
		t.Steps = append(t.Steps, TrajectoryStep{
			Board:      next.Clone(),
			Population: next.Population(),
			Flips:      next.Flips(board),
		})
		board = next
	}
	return t
}

// Len returns the number of recorded steps, the initial snapshot
// included.
func (t *Trajectory) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Steps)
}
