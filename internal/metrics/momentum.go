package metrics

import (
	"github.com/san-kum/physlab/internal/vec"
	"github.com/san-kum/physlab/internal/world"
)

// Momentum tracks the magnitude of total linear momentum at the last
// observation. Static bodies carry none.
type Momentum struct {
	name string
	last float64
}

func NewMomentum() *Momentum {
	return &Momentum{name: "momentum"}
}

func (m *Momentum) Name() string { return m.name }

func (m *Momentum) Observe(w *world.World, t float64) {
	total := vec.Zero
	for _, b := range w.Bodies() {
		if b.Static() {
			continue
		}
		total = total.Add(b.Velocity.Scale(b.Mass()))
	}
	m.last = total.Length()
}

func (m *Momentum) Value() float64 { return m.last }

func (m *Momentum) Reset() { m.last = 0 }
