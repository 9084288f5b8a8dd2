package index

import (
	"errors"
	"image/color"

	"github.com/viant/pointset/geom"
)

// ErrInvalidArgument is returned, wrapped, whenever a required point or
// rectangle argument is nil.
var ErrInvalidArgument = errors.New("index: invalid argument")

// PointIndex defines a set of points in the unit square supporting
// insertion, membership, orthogonal range reporting and nearest-neighbour
// search. Implementations are not safe for concurrent mutation.
type PointIndex interface {
	// IsEmpty reports whether the index holds no point.
	IsEmpty() bool

	// Size returns the number of distinct points stored.
	Size() int

	// Insert adds p unless an equal point is already stored.
	Insert(p *geom.Point) error

	// Contains reports whether a point equal to p is stored.
	Contains(p *geom.Point) (bool, error)

	// Range returns every stored point inside rect, boundary included.
	Range(rect *geom.Rect) ([]geom.Point, error)

	// Nearest returns a stored point closest to p, or nil when the index is
	// empty.
	Nearest(p *geom.Point) (*geom.Point, error)

	// KNearest returns up to k stored points ordered by increasing distance
	// to p.
	KNearest(p *geom.Point, k int) ([]geom.Point, error)

	// Points returns every stored point in the implementation's iteration
	// order.
	Points() []geom.Point

	// Draw renders the stored points, and any partitioning the
	// implementation keeps, onto canvas. A nil canvas is a no-op.
	Draw(canvas Canvas)
}

// Canvas is the drawing surface consumed by PointIndex.Draw. Coordinates are
// in the index's plane, not in device pixels.
type Canvas interface {
	SetPenColor(c color.Color)
	SetPenRadius(r float64)
	Point(x, y float64)
	Line(x0, y0, x1, y1 float64)
}
