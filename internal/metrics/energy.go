// Package metrics provides run metrics over world snapshots: kinetic
// energy, momentum and collision rate. Each implements the sandbox
// Metric contract (Name/Observe/Value/Reset).
package metrics

import (
	"math"

	"github.com/san-kum/physlab/internal/world"
)

// KineticEnergy tracks the peak total translational kinetic energy
// seen during a run.
type KineticEnergy struct {
	name string
	peak float64
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy_peak"}
}

func (k *KineticEnergy) Name() string { return k.name }

func (k *KineticEnergy) Observe(w *world.World, t float64) {
	total := 0.0
	for _, b := range w.Bodies() {
		total += b.KineticEnergy()
	}
	k.peak = math.Max(k.peak, total)
}

func (k *KineticEnergy) Value() float64 { return k.peak }

func (k *KineticEnergy) Reset() { k.peak = 0 }

// Total returns the current total kinetic energy of a world. Shared by
// the TUI status line.
func Total(w *world.World) float64 {
	total := 0.0
	for _, b := range w.Bodies() {
		total += b.KineticEnergy()
	}
	return total
}
