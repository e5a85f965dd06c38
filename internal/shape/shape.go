// Package shape describes collision geometry as a closed set of
// variants: sphere, box (uniform edge cube), cylinder, and compound.
// Shapes are pure data; all dimensional validation happens at
// construction so the simulation never sees non-positive extents.
package shape

import (
	"errors"
	"fmt"

	"github.com/san-kum/physlab/internal/vec"
)

// ErrInvalidGeometry indicates a shape constructed with a non-positive
// dimension.
var ErrInvalidGeometry = errors.New("shape: invalid geometry")

type Kind int

const (
	Sphere Kind = iota
	Box
	Cylinder
	Compound
)

func (k Kind) String() string {
	switch k {
	case Sphere:
		return "sphere"
	case Box:
		return "box"
	case Cylinder:
		return "cylinder"
	case Compound:
		return "compound"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// KindFromString parses the wire tag used by scene records.
func KindFromString(s string) (Kind, error) {
	switch s {
	case "sphere":
		return Sphere, nil
	case "box":
		return Box, nil
	case "cylinder":
		return Cylinder, nil
	case "compound":
		return Compound, nil
	default:
		return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidGeometry, s)
	}
}

// Child is a member of a compound shape at a local offset.
type Child struct {
	Shape  Shape
	Offset vec.V3
}

// Shape is a tagged variant. Which dimension fields are meaningful
// depends on Kind: Radius for spheres and cylinders, Edge for boxes,
// Height for cylinders, Children for compounds.
type Shape struct {
	Kind     Kind
	Radius   float64
	Edge     float64
	Height   float64
	Children []Child
}

func NewSphere(radius float64) (Shape, error) {
	if radius <= 0 {
		return Shape{}, fmt.Errorf("%w: sphere radius %g", ErrInvalidGeometry, radius)
	}
	return Shape{Kind: Sphere, Radius: radius}, nil
}

func NewBox(edge float64) (Shape, error) {
	if edge <= 0 {
		return Shape{}, fmt.Errorf("%w: box edge %g", ErrInvalidGeometry, edge)
	}
	return Shape{Kind: Box, Edge: edge}, nil
}

func NewCylinder(radius, height float64) (Shape, error) {
	if radius <= 0 {
		return Shape{}, fmt.Errorf("%w: cylinder radius %g", ErrInvalidGeometry, radius)
	}
	if height <= 0 {
		return Shape{}, fmt.Errorf("%w: cylinder height %g", ErrInvalidGeometry, height)
	}
	return Shape{Kind: Cylinder, Radius: radius, Height: height}, nil
}

// NewCompound builds a compound from already-validated children. An
// empty compound is legal but inert: it never participates in
// collision and has zero extent.
func NewCompound(children []Child) (Shape, error) {
	for i, c := range children {
		if c.Shape.Kind == Compound {
			return Shape{}, fmt.Errorf("%w: nested compound at child %d", ErrInvalidGeometry, i)
		}
	}
	return Shape{Kind: Compound, Children: children}, nil
}

// HalfSize returns the scalar half-extent used for world boundary
// clamping. The cylinder deliberately uses height/2 on every axis,
// treating its bounding extent uniformly. A compound takes the largest
// child extent plus its offset; with no children it degrades to zero.
func (s Shape) HalfSize() float64 {
	switch s.Kind {
	case Sphere:
		return s.Radius
	case Box:
		return s.Edge / 2
	case Cylinder:
		return s.Height / 2
	case Compound:
		max := 0.0
		for _, c := range s.Children {
			if h := c.Shape.HalfSize() + c.Offset.Length(); h > max {
				max = h
			}
		}
		return max
	default:
		return 0
	}
}
