package qlife

import (
	"sync"
	"time"
)

// Metrics collects run counters for a simulation or a search. All reads
// go through Snapshot so callers never see a half-updated view.
type Metrics struct {
	mu sync.RWMutex

	StepsRun        int64
	GenerationsRun  int64
	Evaluations     int64
	BestFitness     float64
	LastStepTime    time.Duration
	LastGeneration  time.Duration
	TotalCompute time.Duration
}

// NewMetrics returns zeroed counters.
func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) recordStep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StepsRun++
	m.LastStepTime = d
	m.TotalCompute += d
}

func (m *Metrics) recordGeneration(evaluations int, best float64, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerationsRun++
	m.Evaluations += int64(evaluations)
	m.BestFitness = best
	m.LastGeneration = d
	m.TotalCompute += d
}

func (m *Metrics) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StepsRun = 0
	m.GenerationsRun = 0
	m.Evaluations = 0
	m.BestFitness = 0
	m.LastStepTime = 0
	m.LastGeneration = 0
	m.TotalCompute = 0
}

// Snapshot returns a consistent copy of the counters.
func (m *Metrics) Snapshot() Metrics {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Metrics{
		StepsRun:        m.StepsRun,
		GenerationsRun:  m.GenerationsRun,
		Evaluations:     m.Evaluations,
		BestFitness:     m.BestFitness,
		LastStepTime:    m.LastStepTime,
		LastGeneration:  m.LastGeneration,
		TotalCompute: m.TotalCompute,
	}
}
