package geom

import (
	"fmt"
	"math"
	"strconv"
)

// Rect is a closed axis-aligned rectangle [XMin, XMax] x [YMin, YMax].
type Rect struct {
	XMin float64 `json:"xmin"`
	YMin float64 `json:"ymin"`
	XMax float64 `json:"xmax"`
	YMax float64 `json:"ymax"`
}

// NewRect returns the rectangle with the given corners. It fails when a
// minimum exceeds its maximum or a coordinate is NaN.
func NewRect(xmin, ymin, xmax, ymax float64) (Rect, error) {
	if math.IsNaN(xmin) || math.IsNaN(ymin) || math.IsNaN(xmax) || math.IsNaN(ymax) {
		return Rect{}, fmt.Errorf("geom: rect has NaN coordinate")
	}
	if xmin > xmax {
		return Rect{}, fmt.Errorf("geom: rect xmin %v > xmax %v", xmin, xmax)
	}
	if ymin > ymax {
		return Rect{}, fmt.Errorf("geom: rect ymin %v > ymax %v", ymin, ymax)
	}
	return Rect{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}, nil
}

// UnitSquare returns [0,1] x [0,1].
func UnitSquare() Rect { return Rect{XMin: 0, YMin: 0, XMax: 1, YMax: 1} }

// Width returns XMax - XMin.
func (r Rect) Width() float64 { return r.XMax - r.XMin }

// Height returns YMax - YMin.
func (r Rect) Height() float64 { return r.YMax - r.YMin }

// Contains reports whether p lies in r, boundary included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.XMin && p.X <= r.XMax && p.Y >= r.YMin && p.Y <= r.YMax
}

// Intersects reports whether r and o share at least one point, boundary
// included.
func (r Rect) Intersects(o Rect) bool {
	return r.XMin <= o.XMax && r.XMax >= o.XMin && r.YMin <= o.YMax && r.YMax >= o.YMin
}

// DistanceSquaredTo returns the squared Euclidean distance from p to the
// closest point of r; it is 0 when r contains p.
func (r Rect) DistanceSquaredTo(p Point) float64 {
	var dx, dy float64
	if p.X < r.XMin {
		dx = p.X - r.XMin
	} else if p.X > r.XMax {
		dx = p.X - r.XMax
	}
	if p.Y < r.YMin {
		dy = p.Y - r.YMin
	} else if p.Y > r.YMax {
		dy = p.Y - r.YMax
	}
	return dx*dx + dy*dy
}

// DistanceTo returns the Euclidean distance from p to r.
func (r Rect) DistanceTo(p Point) float64 { return math.Sqrt(r.DistanceSquaredTo(p)) }

func (r Rect) String() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return "[" + f(r.XMin) + ", " + f(r.XMax) + "] x [" + f(r.YMin) + ", " + f(r.YMax) + "]"
}
