package sandbox

import (
	"github.com/san-kum/physlab/internal/vec"
	"github.com/san-kum/physlab/internal/world"
)

// MaxStepDt bounds the time increment fed to a single world step.
// Longer frame gaps (pause, tab switch) are clamped rather than
// destabilizing the integrator.
const MaxStepDt = 0.05

// Observer is notified after every world step.
type Observer interface {
	OnStep(w *world.World, t float64)
}

// Metric observes the world each step and reduces to a single value.
type Metric interface {
	Name() string
	Observe(w *world.World, t float64)
	Value() float64
	Reset()
}

// Config drives a headless run.
type Config struct {
	Dt        float64
	Duration  float64
	TimeScale float64
}

func DefaultConfig() Config {
	return Config{
		Dt:        1.0 / 60.0,
		Duration:  10.0,
		TimeScale: 1.0,
	}
}

// Result holds the recorded trajectory of a run. Times, Positions and
// Collisions are parallel; index 0 is the initial state before any
// step.
type Result struct {
	Times           []float64
	Positions       [][]vec.V3
	Collisions      []int
	Metrics         map[string]float64
	StepsTaken      int
	TotalCollisions int
}
