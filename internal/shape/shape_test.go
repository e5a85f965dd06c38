package shape

import (
	"errors"
	"testing"

	"github.com/san-kum/physlab/internal/vec"
)

func TestInvalidGeometry(t *testing.T) {
	tests := []struct {
		name string
		make func() (Shape, error)
	}{
		{"zero radius sphere", func() (Shape, error) { return NewSphere(0) }},
		{"negative radius sphere", func() (Shape, error) { return NewSphere(-1) }},
		{"zero edge box", func() (Shape, error) { return NewBox(0) }},
		{"negative edge box", func() (Shape, error) { return NewBox(-0.5) }},
		{"zero radius cylinder", func() (Shape, error) { return NewCylinder(0, 1) }},
		{"zero height cylinder", func() (Shape, error) { return NewCylinder(1, 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.make()
			if !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("expected ErrInvalidGeometry, got %v", err)
			}
		})
	}
}

func TestHalfSize(t *testing.T) {
	sphere, _ := NewSphere(0.5)
	box, _ := NewBox(2)
	cylinder, _ := NewCylinder(0.3, 4)

	tests := []struct {
		name string
		s    Shape
		want float64
	}{
		{"sphere uses radius", sphere, 0.5},
		{"box uses half edge", box, 1},
		{"cylinder uses half height on all axes", cylinder, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.HalfSize(); got != tt.want {
				t.Errorf("got %f, want %f", got, tt.want)
			}
		})
	}
}

func TestCompound(t *testing.T) {
	sphere, _ := NewSphere(0.5)
	box, _ := NewBox(1)

	c, err := NewCompound([]Child{
		{Shape: sphere, Offset: vec.New(1, 0, 0)},
		{Shape: box},
	})
	if err != nil {
		t.Fatalf("compound: %v", err)
	}

	// Largest child extent plus its offset: sphere 0.5 + |(1,0,0)|.
	if got := c.HalfSize(); got != 1.5 {
		t.Errorf("half size: got %f, want 1.5", got)
	}

	empty, err := NewCompound(nil)
	if err != nil {
		t.Fatalf("empty compound: %v", err)
	}
	if got := empty.HalfSize(); got != 0 {
		t.Errorf("empty compound half size: got %f", got)
	}

	if _, err := NewCompound([]Child{{Shape: c}}); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("nested compound: expected ErrInvalidGeometry, got %v", err)
	}
}

func TestKindRoundTrip(t *testing.T) {
	for _, kind := range []Kind{Sphere, Box, Cylinder, Compound} {
		got, err := KindFromString(kind.String())
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if got != kind {
			t.Errorf("%s: round-tripped to %s", kind, got)
		}
	}

	if _, err := KindFromString("torus"); err == nil {
		t.Error("expected error for unknown kind")
	}
}
