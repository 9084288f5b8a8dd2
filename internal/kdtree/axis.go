package kdtree

import "github.com/viant/pointset/geom"

// Axis names the coordinate a node splits on.
type Axis uint8

const (
	// X splits with a vertical line; used at even depths.
	X Axis = iota
	// Y splits with a horizontal line; used at odd depths.
	Y
)

// AxisAt returns the split axis of nodes at the given depth.
func AxisAt(depth int) Axis {
	if depth%2 == 0 {
		return X
	}
	return Y
}

// Next returns the axis used one level deeper.
func (a Axis) Next() Axis {
	if a == X {
		return Y
	}
	return X
}

func (a Axis) String() string {
	if a == X {
		return "x"
	}
	return "y"
}

// primary returns the coordinate of p on a.
func (a Axis) primary(p geom.Point) float64 {
	if a == X {
		return p.X
	}
	return p.Y
}

// secondary returns the coordinate of p on the other axis.
func (a Axis) secondary(p geom.Point) float64 {
	if a == X {
		return p.Y
	}
	return p.X
}

// split clips r at v along a into the half owned by the left child and the
// half owned by the right child. Both keep the splitting line.
func (a Axis) split(r geom.Rect, v float64) (left, right geom.Rect) {
	left, right = r, r
	if a == X {
		left.XMax, right.XMin = v, v
	} else {
		left.YMax, right.YMin = v, v
	}
	return left, right
}
