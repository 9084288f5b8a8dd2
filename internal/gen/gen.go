// Package gen produces reproducible point sets in the unit square for tests,
// benchmarks and the command line driver.
package gen

import (
	"github.com/valyala/fastrand"

	"github.com/viant/pointset/geom"
)

// Continuous is the grid resolution used when no coarser grid is asked for.
const Continuous uint32 = 1 << 24

// Generator draws points on a regular grid of the unit square. Coarse grids
// produce many equal coordinates and exact duplicates.
type Generator struct {
	rng   fastrand.RNG
	steps uint32
}

// New returns a generator seeded with seed that places coordinates on a grid
// of steps intervals per axis. steps == 0 means Continuous.
func New(seed uint32, steps uint32) *Generator {
	if steps == 0 {
		steps = Continuous
	}
	g := &Generator{steps: steps}
	g.rng.Seed(seed)
	return g
}

func (g *Generator) coord() float64 {
	return float64(g.rng.Uint32n(g.steps+1)) / float64(g.steps)
}

// Point returns the next point.
func (g *Generator) Point() geom.Point {
	x := g.coord()
	return geom.Point{X: x, Y: g.coord()}
}

// Points returns the next n points.
func (g *Generator) Points(n int) []geom.Point {
	out := make([]geom.Point, n)
	for i := range out {
		out[i] = g.Point()
	}
	return out
}

// Rect returns a rectangle with corners drawn from the same grid.
func (g *Generator) Rect() geom.Rect {
	x0, x1 := g.coord(), g.coord()
	y0, y1 := g.coord(), g.coord()
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return geom.Rect{XMin: x0, YMin: y0, XMax: x1, YMax: y1}
}
