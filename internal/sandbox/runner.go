// Package sandbox is the external driver of the simulation core: it
// paces world steps by a fixed time increment, applies time scaling,
// clamps oversized increments and records trajectories for storage,
// plotting and metrics.
package sandbox

import (
	"context"
	"fmt"

	"github.com/san-kum/physlab/internal/vec"
	"github.com/san-kum/physlab/internal/world"
)

// ClampDt applies the MaxStepDt bound to an effective time increment.
func ClampDt(dt float64) float64 {
	if dt > MaxStepDt {
		return MaxStepDt
	}
	return dt
}

type Runner struct {
	metrics   []Metric
	observers []Observer
}

func New() *Runner {
	return &Runner{
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run advances the world for cfg.Duration in fixed increments of
// cfg.Dt scaled by cfg.TimeScale. The effective increment is clamped
// to MaxStepDt. Cancellation is checked between steps; no step is
// interrupted mid-flight.
func (r *Runner) Run(ctx context.Context, w *world.World, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:      make([]float64, 0, steps+1),
		Positions:  make([][]vec.V3, 0, steps+1),
		Collisions: make([]int, 0, steps+1),
		Metrics:    make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	dt := ClampDt(cfg.Dt * cfg.TimeScale)
	t := 0.0
	r.record(result, w, t)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		w.Step(dt)
		t += dt
		result.StepsTaken++
		result.TotalCollisions += w.CollisionCount()
		r.record(result, w, t)

		for _, m := range r.metrics {
			m.Observe(w, t)
		}
		for _, obs := range r.observers {
			obs.OnStep(w, t)
		}
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (r *Runner) record(result *Result, w *world.World, t float64) {
	snapshot := make([]vec.V3, 0, w.BodyCount())
	for _, b := range w.Bodies() {
		snapshot = append(snapshot, b.Position)
	}
	result.Times = append(result.Times, t)
	result.Positions = append(result.Positions, snapshot)
	result.Collisions = append(result.Collisions, w.CollisionCount())
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	if cfg.TimeScale <= 0 {
		return fmt.Errorf("time scale must be positive, got %f", cfg.TimeScale)
	}
	return nil
}
