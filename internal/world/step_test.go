package world_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/physlab/internal/body"
	"github.com/san-kum/physlab/internal/shape"
	"github.com/san-kum/physlab/internal/vec"
	"github.com/san-kum/physlab/internal/world"
)

const dt = 1.0 / 60.0

func sphereBody(radius float64, pos vec.V3, mass float64) *body.Body {
	s, err := shape.NewSphere(radius)
	Expect(err).NotTo(HaveOccurred())
	return body.New(s, pos, mass)
}

func boxBody(edge float64, pos vec.V3, mass float64) *body.Body {
	s, err := shape.NewBox(edge)
	Expect(err).NotTo(HaveOccurred())
	return body.New(s, pos, mass)
}

func cylinderBody(radius, height float64, pos vec.V3, mass float64) *body.Body {
	s, err := shape.NewCylinder(radius, height)
	Expect(err).NotTo(HaveOccurred())
	return body.New(s, pos, mass)
}

func freeWorld() *world.World {
	return world.New(vec.Zero, vec.New(20, 20, 20))
}

var _ = Describe("Step", func() {
	Describe("ground contact", func() {
		It("loses height on every bounce and settles at the radius", func() {
			w := world.New(vec.New(0, -10, 0), vec.New(20, 20, 20))
			b := sphereBody(0.5, vec.New(0, 5, 0), 1)
			b.Restitution = 0.5
			b.Friction = 0
			w.AddBody(b)

			var apexes []float64
			prevVy := 0.0
			for i := 0; i < 1200; i++ {
				w.Step(dt)
				if prevVy > 0 && b.Velocity.Y <= 0 {
					apexes = append(apexes, b.Position.Y)
				}
				prevVy = b.Velocity.Y
			}

			Expect(len(apexes)).To(BeNumerically(">", 2))
			for i := 1; i < len(apexes); i++ {
				Expect(apexes[i]).To(BeNumerically("<=", apexes[i-1]+1e-9))
			}

			Expect(b.Position.Y).To(BeNumerically("~", 0.5, 1e-9))
			Expect(b.Velocity.Y).To(BeNumerically("~", 0, 0.2))
		})

		It("damps horizontal velocity by friction on floor contact only", func() {
			w := world.New(vec.New(0, -10, 0), vec.New(20, 20, 20))
			b := sphereBody(0.5, vec.New(0, 0.5, 0), 1)
			b.Restitution = 0
			b.Friction = 0.5
			b.Velocity = vec.New(2, 0, 0)
			w.AddBody(b)

			w.Step(dt)

			// One floor contact halves vx; z untouched because it was zero.
			Expect(b.Velocity.X).To(BeNumerically("~", 1, 1e-9))
			Expect(b.Position.Y).To(BeNumerically("~", 0.5, 1e-9))
		})

		It("does not reflect again for a body resting on a bound", func() {
			w := freeWorld()
			b := sphereBody(0.5, vec.New(0, 0.5, 0), 1)
			b.Restitution = 0.9
			w.AddBody(b)

			w.Step(dt)
			w.Step(dt)

			Expect(b.Position).To(Equal(vec.New(0, 0.5, 0)))
			Expect(b.Velocity).To(Equal(vec.Zero))
		})

		It("reflects off side walls without friction damping", func() {
			w := freeWorld()
			b := sphereBody(0.5, vec.New(9.4, 5, 0), 1)
			b.Restitution = 0.5
			b.Friction = 0.8
			b.Velocity = vec.New(12, 0, 0)
			w.AddBody(b)

			w.Step(dt)

			// limit = 20/2 - 0.5; integration carries x past it.
			Expect(b.Position.X).To(BeNumerically("~", 9.5, 1e-9))
			Expect(b.Velocity.X).To(BeNumerically("~", -6, 1e-9))
		})
	})

	Describe("sphere-sphere collisions", func() {
		It("swaps velocities in an equal-mass elastic head-on collision", func() {
			w := freeWorld()
			a := sphereBody(0.5, vec.New(0.1, 5, 0), 1)
			a.Restitution = 1
			a.Velocity = vec.New(1, 0, 0)
			b := sphereBody(0.5, vec.New(0.9, 5, 0), 1)
			b.Restitution = 1
			b.Velocity = vec.New(-1, 0, 0)
			w.AddBody(a)
			w.AddBody(b)

			w.Step(dt)

			Expect(a.Velocity.X).To(BeNumerically("~", -1, 1e-9))
			Expect(b.Velocity.X).To(BeNumerically("~", 1, 1e-9))
			Expect(w.CollisionCount()).To(Equal(1))
		})

		It("conserves momentum for unequal masses", func() {
			w := freeWorld()
			a := sphereBody(0.5, vec.New(0.1, 5, 0), 1)
			a.Restitution = 1
			a.Velocity = vec.New(2, 0, 0)
			b := sphereBody(0.5, vec.New(0.9, 5, 0), 3)
			b.Restitution = 1
			w.AddBody(a)
			w.AddBody(b)

			before := a.Velocity.X*1 + b.Velocity.X*3
			w.Step(dt)
			after := a.Velocity.X*1 + b.Velocity.X*3

			Expect(after).To(BeNumerically("~", before, 1e-9))
		})

		It("separates overlapping spheres proportionally to inverse mass", func() {
			w := freeWorld()
			a := sphereBody(0.5, vec.New(0.2, 5, 0), 1)
			b := sphereBody(0.5, vec.New(0.8, 5, 0), 1)
			w.AddBody(a)
			w.AddBody(b)

			w.Step(dt)

			gap := a.Position.Sub(b.Position).Length()
			Expect(gap).To(BeNumerically("~", 1.0, 1e-9))
		})

		It("leaves a static body in place and pushes only the dynamic one", func() {
			w := freeWorld()
			static := sphereBody(0.5, vec.New(0.2, 5, 0), 0)
			dynamic := sphereBody(0.5, vec.New(0.8, 5, 0), 1)
			w.AddBody(static)
			w.AddBody(dynamic)

			w.Step(dt)

			Expect(static.Position).To(Equal(vec.New(0.2, 5, 0)))
			Expect(dynamic.Position.X).To(BeNumerically("~", 1.2, 1e-9))
			Expect(w.CollisionCount()).To(Equal(1))
		})

		It("skips a pair of two static bodies", func() {
			w := freeWorld()
			w.AddBody(sphereBody(0.5, vec.New(0.2, 5, 0), 0))
			w.AddBody(sphereBody(0.5, vec.New(0.8, 5, 0), 0))

			w.Step(dt)

			Expect(w.CollisionCount()).To(Equal(0))
		})
	})

	Describe("broadphase", func() {
		It("never tests separated spheres in different cells", func() {
			w := freeWorld()
			w.AddBody(sphereBody(0.3, vec.New(0.2, 5, 0.2), 1))
			w.AddBody(sphereBody(0.3, vec.New(1.8, 5, 0.2), 1))

			w.Step(dt)

			Expect(w.CollisionCount()).To(Equal(0))
		})

		It("misses overlapping bodies straddling a cell boundary", func() {
			w := freeWorld()
			w.AddBody(sphereBody(0.5, vec.New(0.9, 5, 0), 1))
			w.AddBody(sphereBody(0.5, vec.New(1.05, 5, 0), 1))

			w.Step(dt)

			Expect(w.CollisionCount()).To(Equal(0))
		})

		It("buckets bodies at their post-integration positions", func() {
			w := freeWorld()
			target := sphereBody(0.5, vec.New(1.6, 5, 0), 1)
			mover := sphereBody(0.5, vec.New(0.9, 5, 0), 1)
			mover.Velocity = vec.New(36, 0, 0) // crosses into cell 1 this step
			w.AddBody(target)
			w.AddBody(mover)

			w.Step(dt)

			Expect(w.CollisionCount()).To(Equal(1))
		})
	})

	Describe("box and cylinder collisions", func() {
		It("resolves overlapping boxes with the fixed correction", func() {
			w := freeWorld()
			a := boxBody(1, vec.New(0.3, 5, 0.3), 1)
			b := boxBody(1, vec.New(0.7, 5, 0.5), 1)
			w.AddBody(a)
			w.AddBody(b)

			gapBefore := a.Position.Sub(b.Position).Length()
			w.Step(dt)
			gapAfter := a.Position.Sub(b.Position).Length()

			Expect(w.CollisionCount()).To(Equal(1))
			Expect(gapAfter).To(BeNumerically("~", gapBefore+0.05, 1e-9))
		})

		It("resolves cylinders overlapping radially and vertically", func() {
			w := freeWorld()
			a := cylinderBody(0.5, 1, vec.New(0.3, 5, 0), 1)
			b := cylinderBody(0.5, 1, vec.New(0.8, 5, 0), 1)
			w.AddBody(a)
			w.AddBody(b)

			w.Step(dt)

			Expect(w.CollisionCount()).To(Equal(1))
		})

		It("ignores cylinders separated vertically", func() {
			w := freeWorld()
			a := cylinderBody(0.5, 0.4, vec.New(0.3, 5.2, 0), 1)
			b := cylinderBody(0.5, 0.4, vec.New(0.5, 5.7, 0), 1)
			w.AddBody(a)
			w.AddBody(b)

			w.Step(dt)

			Expect(w.CollisionCount()).To(Equal(0))
		})
	})

	Describe("dispatch gaps", func() {
		It("silently skips mixed-kind pairs", func() {
			w := freeWorld()
			w.AddBody(sphereBody(0.5, vec.New(0.3, 5, 0), 1))
			w.AddBody(boxBody(1, vec.New(0.7, 5, 0), 1))

			w.Step(dt)

			Expect(w.CollisionCount()).To(Equal(0))
		})

		It("produces no collision effect for compound bodies", func() {
			child, err := shape.NewSphere(0.5)
			Expect(err).NotTo(HaveOccurred())
			compound, err := shape.NewCompound([]shape.Child{{Shape: child}})
			Expect(err).NotTo(HaveOccurred())

			w := freeWorld()
			w.AddBody(body.New(compound, vec.New(0.3, 5, 0), 1))
			w.AddBody(body.New(compound, vec.New(0.7, 5, 0), 1))

			w.Step(dt)

			Expect(w.CollisionCount()).To(Equal(0))
		})
	})

	Describe("collision counter", func() {
		It("reflects only the most recent step", func() {
			w := freeWorld()
			a := sphereBody(0.5, vec.New(0.2, 5, 0), 1)
			b := sphereBody(0.5, vec.New(0.8, 5, 0), 1)
			a.Restitution = 1
			b.Restitution = 1
			a.Velocity = vec.New(1, 0, 0)
			b.Velocity = vec.New(-1, 0, 0)
			w.AddBody(a)
			w.AddBody(b)

			w.Step(dt)
			Expect(w.CollisionCount()).To(Equal(1))

			w.Step(dt)
			Expect(w.CollisionCount()).To(Equal(0))
		})
	})

	Describe("body list management", func() {
		It("adds, removes and clears bodies", func() {
			w := freeWorld()
			a := sphereBody(0.5, vec.New(0, 5, 0), 1)
			b := sphereBody(0.5, vec.New(3, 5, 0), 1)
			w.AddBody(a)
			w.AddBody(b)
			Expect(w.BodyCount()).To(Equal(2))

			w.RemoveBody(a)
			Expect(w.BodyCount()).To(Equal(1))
			Expect(w.Bodies()[0]).To(BeIdenticalTo(b))

			w.Clear()
			Expect(w.BodyCount()).To(Equal(0))
		})
	})
})
