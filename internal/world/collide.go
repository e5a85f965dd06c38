package world

import (
	"math"

	"github.com/san-kum/physlab/internal/body"
	"github.com/san-kum/physlab/internal/shape"
	"github.com/san-kum/physlab/internal/vec"
)

// pairCorrection is the fixed positional separation applied to box and
// cylinder pairs. It is a known non-physical shortcut: penetration
// depth is not inferred for those pairs.
const pairCorrection = 0.05

// resolvePair dispatches on matching shape kinds. Only homogeneous
// sphere, box and cylinder pairs are handled; mixed-kind pairs and
// anything involving a compound are skipped.
func (w *World) resolvePair(a, b *body.Body) {
	if a.InvMass()+b.InvMass() == 0 {
		return
	}
	ka, kb := a.Shape().Kind, b.Shape().Kind
	if ka != kb {
		return
	}
	switch ka {
	case shape.Sphere:
		w.collideSpheres(a, b)
	case shape.Box:
		w.collideBoxes(a, b)
	case shape.Cylinder:
		w.collideCylinders(a, b)
	case shape.Compound:
		// No compound narrowphase; documented gap.
	}
}

func (w *World) collideSpheres(a, b *body.Body) {
	d := a.Position.Sub(b.Position)
	dist := d.Length()
	minDist := a.Shape().Radius + b.Shape().Radius
	if dist <= 0 || dist >= minDist {
		return
	}

	normal := d.Scale(1 / dist)
	w.applyImpulse(a, b, normal)
	w.separate(a, b, normal, minDist-dist)
	w.collisions++
}

func (w *World) collideBoxes(a, b *body.Body) {
	d := a.Position.Sub(b.Position)
	threshold := (a.Shape().Edge + b.Shape().Edge) / 2
	if math.Abs(d.X) >= threshold || math.Abs(d.Y) >= threshold || math.Abs(d.Z) >= threshold {
		return
	}

	// Centroid difference stands in for the true contact normal.
	normal := d.Normalize()
	if normal.IsZero() {
		return
	}
	w.applyImpulse(a, b, normal)
	w.separate(a, b, normal, pairCorrection)
	w.collisions++
}

func (w *World) collideCylinders(a, b *body.Body) {
	d := a.Position.Sub(b.Position)
	horizontal := math.Hypot(d.X, d.Z)
	if horizontal >= a.Shape().Radius+b.Shape().Radius {
		return
	}
	if math.Abs(d.Y) >= (a.Shape().Height+b.Shape().Height)/2 {
		return
	}

	normal := d.Normalize()
	if normal.IsZero() {
		return
	}
	w.applyImpulse(a, b, normal)
	w.separate(a, b, normal, pairCorrection)
	w.collisions++
}

// applyImpulse resolves relative velocity along the contact normal with
// an equal-and-opposite impulse weighted by inverse mass, using the
// less bouncy body's restitution.
func (w *World) applyImpulse(a, b *body.Body, normal vec.V3) {
	e := math.Min(a.Restitution, b.Restitution)
	relVel := a.Velocity.Sub(b.Velocity).Dot(normal)
	j := -(1 + e) * relVel / (a.InvMass() + b.InvMass())

	a.Velocity = a.Velocity.Add(normal.Scale(j * a.InvMass()))
	b.Velocity = b.Velocity.Sub(normal.Scale(j * b.InvMass()))
}

// separate pushes the bodies apart along the normal by depth, split by
// inverse-mass share so the heavier body moves less.
func (w *World) separate(a, b *body.Body, normal vec.V3, depth float64) {
	total := a.InvMass() + b.InvMass()
	a.Position = a.Position.Add(normal.Scale(depth * a.InvMass() / total))
	b.Position = b.Position.Sub(normal.Scale(depth * b.InvMass() / total))
}
