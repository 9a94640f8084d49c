package qlife

import (
	"math/rand"
	"sort"
	"time"

	"github.com/theapemachine/errnie"
)

// SearchState enumerates the driver's lifecycle.
type SearchState int

const (
	// SearchIdle means no population exists yet.
	SearchIdle SearchState = iota
	// SearchInitialized means ground truth and population are built but
	// the driver is not advancing.
	SearchInitialized
	// SearchRunning means RunNext advances one generation per call.
	SearchRunning
	// SearchPaused holds all state and can resume.
	SearchPaused
)

type individual struct {
	params  Params
	fitness float64
}

/*
Search evolves quantum rules toward a recorded classical trajectory.

It is a cooperative state machine: one call to RunNext evaluates and
breeds exactly one generation, then returns. The host loop decides when
the next generation runs, so a search never blocks its caller.

The flow is Idle → Initialized → Running ⇄ Paused, with Reset dropping
everything back to Idle. Initialization builds the ground-truth
trajectory once and fills the population with random rules; every
individual runs fully decohered (weight pinned to 1) so evaluation stays
deterministic.
*/
type Search struct {
	cfg *Config
	rng *rand.Rand

	state      SearchState
	truth      *Trajectory
	population []individual

	generation  int
	bestFitness float64
	bestParams  Params
	converged   bool

	reporter *Reporter
	metrics  *Metrics
}

// NewSearch returns an idle search driver over the given configuration.
func NewSearch(cfg *Config) *Search {
	return &Search{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		reporter: NewReporter(),
		metrics:  NewMetrics(),
	}
}

// Seed replaces the driver's random source. Only useful before Start.
func (s *Search) Seed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Reporter exposes the progress pub/sub hub.
func (s *Search) Reporter() *Reporter { return s.reporter }

// Metrics exposes the driver's counters.
func (s *Search) Metrics() *Metrics { return s.metrics }

// State returns the current lifecycle state.
func (s *Search) State() SearchState { return s.state }

// Generation returns how many generations have completed since
// initialization.
func (s *Search) Generation() int { return s.generation }

// BestFitness returns the best score seen since initialization.
func (s *Search) BestFitness() float64 { return s.bestFitness }

// BestParams returns a copy of the best rule seen since initialization.
func (s *Search) BestParams() Params { return s.bestParams.Clone() }

// Converged reports whether the success threshold has been reached.
func (s *Search) Converged() bool { return s.converged }

// GroundTruth returns the trajectory the search measures against, or
// nil before initialization.
func (s *Search) GroundTruth() *Trajectory { return s.truth }

// Start initializes the search when idle and begins running. Starting a
// paused search resumes it.
func (s *Search) Start() {
	if s.state == SearchIdle {
		s.initialize()
	}
	s.state = SearchRunning
}

// Pause holds the current population and progress.
func (s *Search) Pause() {
	if s.state == SearchRunning {
		s.state = SearchPaused
	}
}

// Resume continues a paused or initialized search.
func (s *Search) Resume() {
	if s.state == SearchPaused || s.state == SearchInitialized {
		s.state = SearchRunning
	}
}

// Reset discards ground truth, population and progress, returning the
// driver to idle. The next Start regenerates everything.
func (s *Search) Reset() {
	s.state = SearchIdle
	s.truth = nil
	s.population = nil
	s.generation = 0
	s.bestFitness = 0
	s.bestParams = Params{}
	s.converged = false
	s.metrics.reset()
}

func (s *Search) initialize() {
	s.truth = NewTrajectory(
		s.cfg.TrajectorySeed,
		s.cfg.GridHeight,
		s.cfg.GridWidth,
		s.cfg.TrajectorySteps,
		s.cfg.AliveThreshold,
	)
	s.population = make([]individual, s.cfg.PopulationSize)
	for i := range s.population {
		s.population[i] = individual{params: RandomParams(s.rng)}
	}
	s.generation = 0
	s.bestFitness = 0
	s.converged = false
	s.state = SearchInitialized
	errnie.Info(
		"search initialized - population %d, trajectory seed %d",
		s.cfg.PopulationSize,
		s.cfg.TrajectorySeed,
	)
}

/*
RunNext advances the search by exactly one generation and reports
whether any work was done. It is the driver's only compute entry point;
hosts call it repeatedly from whatever loop they own.
*/
func (s *Search) RunNext() bool {
	if s.state != SearchRunning || len(s.population) == 0 {
		return false
	}

	start := time.Now()
	for i := range s.population {
		s.population[i].fitness = Evaluate(s.population[i].params, s.truth, s.cfg)
	}
	sort.SliceStable(s.population, func(i, j int) bool {
		return s.population[i].fitness > s.population[j].fitness
	})

	if top := s.population[0]; top.fitness > s.bestFitness {
		s.bestFitness = top.fitness
		s.bestParams = top.params.Clone()
	}
	s.generation++
	s.metrics.recordGeneration(len(s.population), s.bestFitness, time.Since(start))
	s.reporter.Publish(Progress{
		Generation:  s.generation,
		BestFitness: s.bestFitness,
		Best:        s.bestParams.Clone(),
	})

	if s.population[0].fitness >= s.cfg.SuccessThreshold {
		s.converged = true
		s.state = SearchPaused
		errnie.Info(
			"search converged - generation %d, fitness %f",
			s.generation,
			s.bestFitness,
		)
		return true
	}

	s.population = s.breed()
	return true
}

// breed builds the next generation: elites survive unchanged, the rest
// come from tournament-selected parents through crossover and mutation.
func (s *Search) breed() []individual {
	next := make([]individual, 0, len(s.population))
	elite := s.cfg.EliteCount
	if elite > len(s.population) {
		elite = len(s.population)
	}
	for i := 0; i < elite; i++ {
		next = append(next, individual{params: s.population[i].params.Clone()})
	}

	for len(next) < len(s.population) {
		var child Params
		if s.rng.Float64() < s.cfg.CrossoverRate {
			child = s.crossover(s.tournament(), s.tournament())
		} else {
			child = s.tournament().Clone()
		}
		next = append(next, individual{params: s.mutate(child)})
	}
	return next
}

// tournament picks two random contestants and normally keeps the
// fitter one. With a small fixed probability the loser wins instead,
// which keeps the population from piling onto one local optimum.
func (s *Search) tournament() Params {
	a := s.population[s.rng.Intn(len(s.population))]
	b := s.population[s.rng.Intn(len(s.population))]
	winner, loser := a, b
	if b.fitness > a.fitness {
		winner, loser = b, a
	}
	if s.rng.Float64() < s.cfg.TournamentUpset {
		return loser.params.Clone()
	}
	return winner.params.Clone()
}

// crossover copies each of the four coefficient slots of each operator
// wholesale from one parent or the other, chosen independently.
func (s *Search) crossover(a, b Params) Params {
	pick := func(x, y complex128) complex128 {
		if s.rng.Float64() < 0.5 {
			return x
		}
		return y
	}
	child := Params{Decoherence: 1}
	child.Self = PauliCoefficients{
		I: pick(a.Self.I, b.Self.I),
		X: pick(a.Self.X, b.Self.X),
		Y: pick(a.Self.Y, b.Self.Y),
		Z: pick(a.Self.Z, b.Self.Z),
	}
	child.Neighbor = PauliCoefficients{
		I: pick(a.Neighbor.I, b.Neighbor.I),
		X: pick(a.Neighbor.X, b.Neighbor.X),
		Y: pick(a.Neighbor.Y, b.Neighbor.Y),
		Z: pick(a.Neighbor.Z, b.Neighbor.Z),
	}
	return child
}

// mutate perturbs each real and imaginary component independently with
// the configured rate and amplitude. The decoherence weight is never
// touched; search individuals always run fully collapsed.
func (s *Search) mutate(p Params) Params {
	perturb := func(c complex128) complex128 {
		re := real(c)
		im := imag(c)
		if s.rng.Float64() < s.cfg.MutationRate {
			re += (s.rng.Float64()*2 - 1) * s.cfg.MutationAmplitude
		}
		if s.rng.Float64() < s.cfg.MutationRate {
			im += (s.rng.Float64()*2 - 1) * s.cfg.MutationAmplitude
		}
		return complex(re, im)
	}
	mutateSet := func(pc PauliCoefficients) PauliCoefficients {
		return PauliCoefficients{
			I: perturb(pc.I),
			X: perturb(pc.X),
			Y: perturb(pc.Y),
			Z: perturb(pc.Z),
		}
	}
	p.Self = mutateSet(p.Self)
	p.Neighbor = mutateSet(p.Neighbor)
	p.Decoherence = 1
	return p
}
