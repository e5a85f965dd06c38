// Package scene defines the persisted body record contract shared with
// external save/load collaborators, and scene files grouping records
// with gravity and world bounds.
package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/physlab/internal/body"
	"github.com/san-kum/physlab/internal/shape"
	"github.com/san-kum/physlab/internal/vec"
	"github.com/san-kum/physlab/internal/world"
)

// ErrUnsupportedShape indicates a body whose shape has no record
// representation (compounds).
var ErrUnsupportedShape = errors.New("scene: shape has no record representation")

// Record is the serialized form of a single body. Size holds the
// sphere/cylinder radius or the box edge; Height is set for cylinders
// only.
type Record struct {
	Shape           string     `json:"shape" yaml:"shape"`
	Size            float64    `json:"size" yaml:"size"`
	Height          float64    `json:"height,omitempty" yaml:"height,omitempty"`
	Position        [3]float64 `json:"position" yaml:"position"`
	Velocity        [3]float64 `json:"velocity" yaml:"velocity"`
	AngularVelocity [3]float64 `json:"angular_velocity" yaml:"angular_velocity"`
	Mass            float64    `json:"mass" yaml:"mass"`
	Friction        float64    `json:"friction" yaml:"friction"`
	Restitution     float64    `json:"restitution" yaml:"restitution"`
}

// RecordError wraps a decode failure with the index of the offending
// record.
type RecordError struct {
	Index   int
	Wrapped error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("scene: record %d: %v", e.Index, e.Wrapped)
}

func (e *RecordError) Unwrap() error { return e.Wrapped }

// Encode serializes a body into its record form.
func Encode(b *body.Body) (Record, error) {
	s := b.Shape()
	r := Record{
		Shape:           s.Kind.String(),
		Position:        toTriple(b.Position),
		Velocity:        toTriple(b.Velocity),
		AngularVelocity: toTriple(b.AngularVelocity),
		Mass:            b.Mass(),
		Friction:        b.Friction,
		Restitution:     b.Restitution,
	}
	switch s.Kind {
	case shape.Sphere:
		r.Size = s.Radius
	case shape.Box:
		r.Size = s.Edge
	case shape.Cylinder:
		r.Size = s.Radius
		r.Height = s.Height
	default:
		return Record{}, fmt.Errorf("%w: %s", ErrUnsupportedShape, s.Kind)
	}
	return r, nil
}

// Decode reconstructs a body from its record form. The returned body's
// observable fields match the record exactly.
func Decode(r Record) (*body.Body, error) {
	kind, err := shape.KindFromString(r.Shape)
	if err != nil {
		return nil, err
	}

	var s shape.Shape
	switch kind {
	case shape.Sphere:
		s, err = shape.NewSphere(r.Size)
	case shape.Box:
		s, err = shape.NewBox(r.Size)
	case shape.Cylinder:
		s, err = shape.NewCylinder(r.Size, r.Height)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedShape, kind)
	}
	if err != nil {
		return nil, err
	}

	b := body.New(s, fromTriple(r.Position), r.Mass)
	b.Velocity = fromTriple(r.Velocity)
	b.AngularVelocity = fromTriple(r.AngularVelocity)
	b.Friction = r.Friction
	b.Restitution = r.Restitution
	return b, nil
}

// Scene groups body records with the world parameters they were
// captured under.
type Scene struct {
	Name    string     `json:"name" yaml:"name"`
	Gravity [3]float64 `json:"gravity" yaml:"gravity"`
	Bounds  [3]float64 `json:"bounds" yaml:"bounds"`
	Bodies  []Record   `json:"bodies" yaml:"bodies"`
}

// BuildWorld constructs a fresh world populated from the scene.
func (sc *Scene) BuildWorld() (*world.World, error) {
	w := world.New(fromTriple(sc.Gravity), fromTriple(sc.Bounds))
	for i, r := range sc.Bodies {
		b, err := Decode(r)
		if err != nil {
			return nil, &RecordError{Index: i, Wrapped: err}
		}
		w.AddBody(b)
	}
	return w, nil
}

// Capture serializes a live world back into a scene. Bodies with
// unserializable shapes fail the capture rather than silently vanish.
func Capture(name string, w *world.World) (*Scene, error) {
	sc := &Scene{
		Name:    name,
		Gravity: toTriple(w.Gravity),
		Bounds:  toTriple(w.Bounds),
		Bodies:  make([]Record, 0, w.BodyCount()),
	}
	for i, b := range w.Bodies() {
		r, err := Encode(b)
		if err != nil {
			return nil, &RecordError{Index: i, Wrapped: err}
		}
		sc.Bodies = append(sc.Bodies, r)
	}
	return sc, nil
}

// Load reads a JSON scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scene
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Save writes a JSON scene file.
func Save(path string, sc *Scene) error {
	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func toTriple(v vec.V3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func fromTriple(t [3]float64) vec.V3 {
	return vec.V3{X: t[0], Y: t[1], Z: t[2]}
}
