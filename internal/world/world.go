package world

import (
	"github.com/san-kum/physlab/internal/body"
	"github.com/san-kum/physlab/internal/vec"
)

// World owns the simulated bodies, the gravity vector and the fixed
// axis-aligned bounds. Bounds are interpreted per axis: y runs from the
// floor at 0 up to Bounds.Y, x and z are centered in [-Bounds.X/2,
// Bounds.X/2] and [-Bounds.Z/2, Bounds.Z/2].
//
// The world is single-threaded by contract: Step runs to completion
// before returning and the body list must not be mutated while a step
// is in progress.
type World struct {
	Gravity vec.V3
	Bounds  vec.V3

	bodies     []*body.Body
	grid       grid
	collisions int
}

func New(gravity, bounds vec.V3) *World {
	return &World{
		Gravity: gravity,
		Bounds:  bounds,
		bodies:  make([]*body.Body, 0),
		grid:    make(grid),
	}
}

func (w *World) AddBody(b *body.Body) {
	w.bodies = append(w.bodies, b)
}

func (w *World) RemoveBody(b *body.Body) {
	for i, ob := range w.bodies {
		if ob == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

// Clear removes every body (scene reset).
func (w *World) Clear() {
	w.bodies = w.bodies[:0]
}

// Bodies returns the live body list. Callers may mutate individual
// bodies between steps but must not add or remove entries through it.
func (w *World) Bodies() []*body.Body { return w.bodies }

func (w *World) BodyCount() int { return len(w.bodies) }

// CollisionCount reports the number of pairs resolved during the most
// recent step only.
func (w *World) CollisionCount() int { return w.collisions }

// Step advances the simulation by dt: apply gravity as a force,
// integrate, clamp against the world bounds, then rebuild the spatial
// hash from the post-integration positions and resolve same-cell
// pairs. Step never fails; degenerate bodies simply produce no
// collision effect.
func (w *World) Step(dt float64) {
	w.collisions = 0

	for _, b := range w.bodies {
		b.ApplyForce(w.Gravity.Scale(b.Mass()))
		b.Integrate(dt)
	}

	for _, b := range w.bodies {
		w.resolveBounds(b)
	}

	w.grid.rebuild(w.bodies)
	for _, cell := range w.grid {
		for i := 0; i < len(cell); i++ {
			for j := i + 1; j < len(cell); j++ {
				w.resolvePair(cell[i], cell[j])
			}
		}
	}
}

// resolveBounds clamps a body into the world box. Hitting the floor
// reflects vertical velocity by restitution and damps horizontal
// velocity by (1 - friction); side walls and the ceiling reflect
// without friction. Clamping is idempotent: a body already resting on
// a bound is not reflected again.
func (w *World) resolveBounds(b *body.Body) {
	half := b.Shape().HalfSize()
	pos := b.Position
	velo := b.Velocity

	if pos.Y < half {
		pos.Y = half
		velo.Y = -velo.Y * b.Restitution
		velo.X *= 1 - b.Friction
		velo.Z *= 1 - b.Friction
	}
	if ceiling := w.Bounds.Y - half; pos.Y > ceiling {
		pos.Y = ceiling
		velo.Y = -velo.Y * b.Restitution
	}

	if limit := w.Bounds.X/2 - half; pos.X < -limit {
		pos.X = -limit
		velo.X = -velo.X * b.Restitution
	} else if pos.X > limit {
		pos.X = limit
		velo.X = -velo.X * b.Restitution
	}

	if limit := w.Bounds.Z/2 - half; pos.Z < -limit {
		pos.Z = -limit
		velo.Z = -velo.Z * b.Restitution
	} else if pos.Z > limit {
		pos.Z = limit
		velo.Z = -velo.Z * b.Restitution
	}

	b.Position = pos
	b.Velocity = velo
}
