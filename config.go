package qlife

import (
	"strings"

	"github.com/spf13/viper"
)

// Config carries every tunable of the simulation and the search. Values
// are plain fields after construction; nothing reads the environment at
// step time.
type Config struct {
	// Grid dimensions shared by the simulation, the ground truth and
	// the reversible lab.
	GridHeight int
	GridWidth  int

	// Ground-truth trajectory.
	TrajectorySeed  int64
	TrajectorySteps int
	AliveThreshold  float64

	// Genetic search.
	PopulationSize    int
	EliteCount        int
	TournamentUpset   float64
	CrossoverRate     float64
	MutationRate      float64
	MutationAmplitude float64
	SuccessThreshold  float64

	// Fitness shaping.
	PopulationWeight float64
	DynamismWeight   float64
	StagnationWindow int
	StagnationBonus  float64
}

/*
NewConfig returns the default configuration. Every field can be
overridden through the environment with a QLIFE_ prefix, e.g.
QLIFE_POPULATION_SIZE=60.
*/
func NewConfig() *Config {
	v := viper.New()
	v.SetEnvPrefix("qlife")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("grid.height", 24)
	v.SetDefault("grid.width", 24)
	v.SetDefault("trajectory.seed", 1337)
	v.SetDefault("trajectory.steps", 12)
	v.SetDefault("trajectory.alive_threshold", 0.6)
	v.SetDefault("search.population_size", 40)
	v.SetDefault("search.elite_count", 4)
	v.SetDefault("search.tournament_upset", 0.1)
	v.SetDefault("search.crossover_rate", 0.7)
	v.SetDefault("search.mutation_rate", 0.15)
	v.SetDefault("search.mutation_amplitude", 0.35)
	v.SetDefault("search.success_threshold", 0.95)
	v.SetDefault("fitness.population_weight", 0.5)
	v.SetDefault("fitness.dynamism_weight", 0.75)
	v.SetDefault("fitness.stagnation_window", 3)
	v.SetDefault("fitness.stagnation_bonus", 1.1)

	return &Config{
		GridHeight:        v.GetInt("grid.height"),
		GridWidth:         v.GetInt("grid.width"),
		TrajectorySeed:    v.GetInt64("trajectory.seed"),
		TrajectorySteps:   v.GetInt("trajectory.steps"),
		AliveThreshold:    v.GetFloat64("trajectory.alive_threshold"),
		PopulationSize:    v.GetInt("search.population_size"),
		EliteCount:        v.GetInt("search.elite_count"),
		TournamentUpset:   v.GetFloat64("search.tournament_upset"),
		CrossoverRate:     v.GetFloat64("search.crossover_rate"),
		MutationRate:      v.GetFloat64("search.mutation_rate"),
		MutationAmplitude: v.GetFloat64("search.mutation_amplitude"),
		SuccessThreshold:  v.GetFloat64("search.success_threshold"),
		PopulationWeight:  v.GetFloat64("fitness.population_weight"),
		DynamismWeight:    v.GetFloat64("fitness.dynamism_weight"),
		StagnationWindow:  v.GetInt("fitness.stagnation_window"),
		StagnationBonus:   v.GetFloat64("fitness.stagnation_bonus"),
	}
}
