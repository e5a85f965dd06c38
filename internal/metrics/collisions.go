package metrics

import "github.com/san-kum/physlab/internal/world"

// CollisionRate averages the per-step collision count over a run.
type CollisionRate struct {
	name    string
	total   int
	samples int
}

func NewCollisionRate() *CollisionRate {
	return &CollisionRate{name: "collision_rate"}
}

func (c *CollisionRate) Name() string { return c.name }

func (c *CollisionRate) Observe(w *world.World, t float64) {
	c.total += w.CollisionCount()
	c.samples++
}

func (c *CollisionRate) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.total) / float64(c.samples)
}

func (c *CollisionRate) Reset() {
	c.total = 0
	c.samples = 0
}
