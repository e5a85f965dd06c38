// Package body implements the mutable rigid body simulated by the
// world: position, velocity, accumulated force/torque, mass properties
// and material coefficients.
package body

import (
	"math"

	"github.com/san-kum/physlab/internal/shape"
	"github.com/san-kum/physlab/internal/vec"
)

// angularEpsilon gates orientation updates; bodies spinning slower than
// this are treated as rotationally at rest.
const angularEpsilon = 1e-4

// Body is a simulated rigid body. Position, velocity, angular velocity,
// orientation and the material coefficients may be overwritten directly
// by the external driver between steps (drag, reset, scene load). Mass
// and shape are fixed at construction so the inverse-mass and inertia
// invariants cannot be broken from outside.
type Body struct {
	Position        vec.V3
	Velocity        vec.V3
	AngularVelocity vec.V3

	// Orientation is a per-axis rotation proxy: angular velocity
	// components integrated into successive small axis rotations.
	// It is not a true quaternion rotation state.
	Orientation vec.V3

	// Restitution and Friction are conventionally in [0,1]; the core
	// accepts values outside that range and they will amplify or
	// reverse energy accordingly.
	Restitution float64
	Friction    float64

	mass       float64
	invMass    float64
	inertia    float64
	invInertia float64
	shape      shape.Shape

	force  vec.V3
	torque vec.V3
}

// New creates a body at the given position. mass <= 0 produces a
// static body (inverse mass zero); there is no separate static flag.
func New(s shape.Shape, position vec.V3, mass float64) *Body {
	b := &Body{
		Position:    position,
		Restitution: 0.5,
		Friction:    0.2,
		shape:       s,
	}
	if mass < 0 {
		mass = 0
	}
	b.mass = mass
	if mass > 0 {
		b.invMass = 1 / mass
	}
	b.inertia = momentOfInertia(s, mass)
	if b.inertia > 0 {
		b.invInertia = 1 / b.inertia
	}
	return b
}

// momentOfInertia is a scalar approximation derived once from shape
// and mass: solid sphere and cylinder use the standard formulas, box
// and compound fall back to a unit placeholder.
func momentOfInertia(s shape.Shape, mass float64) float64 {
	switch s.Kind {
	case shape.Sphere:
		return 2.0 / 5.0 * mass * s.Radius * s.Radius
	case shape.Cylinder:
		return 0.5 * mass * s.Radius * s.Radius
	default:
		return 1
	}
}

func (b *Body) Mass() float64       { return b.mass }
func (b *Body) InvMass() float64    { return b.invMass }
func (b *Body) Inertia() float64    { return b.inertia }
func (b *Body) InvInertia() float64 { return b.invInertia }
func (b *Body) Shape() shape.Shape  { return b.shape }

// Static reports whether the body has infinite effective mass.
func (b *Body) Static() bool { return b.invMass == 0 }

// ApplyForce accumulates f; it has no effect until the next Integrate.
func (b *Body) ApplyForce(f vec.V3) {
	b.force = b.force.Add(f)
}

// ApplyTorque accumulates t for the next Integrate.
func (b *Body) ApplyTorque(t vec.V3) {
	b.torque = b.torque.Add(t)
}

// ApplyImpulse changes velocity immediately, scaled by inverse mass.
func (b *Body) ApplyImpulse(j vec.V3) {
	b.Velocity = b.Velocity.Add(j.Scale(b.invMass))
}

// Integrate advances the body by dt using semi-implicit Euler and
// clears the force and torque accumulators. Static bodies are left
// untouched regardless of accumulated force.
func (b *Body) Integrate(dt float64) {
	if b.invMass == 0 {
		return
	}

	b.Velocity = b.Velocity.Add(b.force.Scale(dt * b.invMass))
	b.Position = b.Position.Add(b.Velocity.Scale(dt))

	b.AngularVelocity = b.AngularVelocity.Add(b.torque.Scale(dt * b.invInertia))
	if b.AngularVelocity.Length() > angularEpsilon {
		b.Orientation = b.Orientation.Add(b.AngularVelocity.Scale(dt))
	}

	b.force = vec.Zero
	b.torque = vec.Zero
}

// KineticEnergy returns the translational kinetic energy; static
// bodies contribute zero.
func (b *Body) KineticEnergy() float64 {
	if b.invMass == 0 {
		return 0
	}
	return 0.5 * b.mass * b.Velocity.LengthSq()
}

// Speed is the magnitude of linear velocity.
func (b *Body) Speed() float64 {
	return math.Sqrt(b.Velocity.LengthSq())
}
