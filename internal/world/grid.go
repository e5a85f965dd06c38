package world

import (
	"math"

	"github.com/san-kum/physlab/internal/body"
)

// The broadphase is a unit-cell spatial hash: each body lands in
// exactly one cell keyed by the floor of its position. Only bodies
// sharing a cell are narrowphase-tested; pairs straddling a cell
// boundary or moving faster than a cell per step can be missed. That
// is an accepted approximation, not a correctness guarantee.

type cellKey struct {
	X, Y, Z int
}

type grid map[cellKey][]*body.Body

func keyFor(b *body.Body) cellKey {
	return cellKey{
		X: int(math.Floor(b.Position.X)),
		Y: int(math.Floor(b.Position.Y)),
		Z: int(math.Floor(b.Position.Z)),
	}
}

// rebuild repopulates the hash from current body positions, reusing
// cell slices between steps to avoid churn.
func (g grid) rebuild(bodies []*body.Body) {
	for k, cell := range g {
		g[k] = cell[:0]
	}
	for _, b := range bodies {
		k := keyFor(b)
		g[k] = append(g[k], b)
	}
}
