package qlife

import (
	"math/rand"
	"time"
)

/*
Scheduler is the cooperative unit-of-work contract shared by the
simulation loop and the genetic search. One RunNext call performs one
unit — a single grid step, or a single generation — and returns whether
any work happened.

The core never owns a loop. Whatever the host has (a timer, an event
loop, a test calling RunNext directly) drives scheduling, which keeps
everything single-threaded: within a unit all reads of current state
precede all writes of next state, and stopping simply means not calling
RunNext again. There is no in-flight work to cancel.
*/
type Scheduler interface {
	RunNext() bool
}

// Simulation owns the live quantum grid and its current rule. It is the
// single writer of both; renderers receive read-only snapshots.
type Simulation struct {
	cfg     *Config
	grid    *Grid
	params  Params
	running bool
	metrics *Metrics
	rng     *rand.Rand
}

// NewSimulation returns a stopped simulation with an empty grid and the
// default rule.
func NewSimulation(cfg *Config) *Simulation {
	return &Simulation{
		cfg:     cfg,
		grid:    NewGrid(cfg.GridHeight, cfg.GridWidth),
		params:  DefaultParams(),
		metrics: NewMetrics(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Grid returns the current grid. Callers must treat it as read-only;
// the simulation replaces it wholesale on the next step.
func (s *Simulation) Grid() *Grid { return s.grid }

// Params returns the rule currently in effect.
func (s *Simulation) Params() Params { return s.params.Clone() }

// SetParams replaces the whole rule. The replacement takes effect on
// the next step; a step already computed is never rewritten.
func (s *Simulation) SetParams(p Params) {
	s.params = p.Clone()
}

// Metrics exposes the simulation's counters.
func (s *Simulation) Metrics() *Metrics { return s.metrics }

// Running reports whether RunNext currently advances the grid.
func (s *Simulation) Running() bool { return s.running }

// Start lets RunNext advance the grid.
func (s *Simulation) Start() { s.running = true }

// Pause stops RunNext from advancing the grid. The grid is left as-is.
func (s *Simulation) Pause() { s.running = false }

// StepOnce advances the grid exactly one step regardless of the running
// flag.
func (s *Simulation) StepOnce() {
	start := time.Now()
	s.grid = Step(s.grid, s.params)
	s.metrics.recordStep(time.Since(start))
}

// RunNext advances one step when running. Part of the Scheduler
// contract.
func (s *Simulation) RunNext() bool {
	if !s.running {
		return false
	}
	s.StepOnce()
	return true
}

// LoadPattern stamps a centered pattern onto a fresh grid.
func (s *Simulation) LoadPattern(pattern [][]int) {
	g := NewGrid(s.cfg.GridHeight, s.cfg.GridWidth)
	g.LoadPattern(pattern)
	s.grid = g
}

// LoadRandom fills a fresh grid with random classical cells.
func (s *Simulation) LoadRandom() {
	g := NewGrid(s.cfg.GridHeight, s.cfg.GridWidth)
	g.LoadRandom(s.rng, s.cfg.AliveThreshold)
	s.grid = g
}

// LoadEmpty resets to an all-|0⟩ grid.
func (s *Simulation) LoadEmpty() {
	s.grid = NewGrid(s.cfg.GridHeight, s.cfg.GridWidth)
}
