package geom

import (
	"math"
	"strconv"
)

// Point is a location in the plane. Indexes in this module expect both
// coordinates in [0, 1] but do not enforce it.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DistanceSquaredTo returns the squared Euclidean distance between p and q.
func (p Point) DistanceSquaredTo(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 { return math.Sqrt(p.DistanceSquaredTo(q)) }

// Compare orders points by x, then by y. It returns -1, 0 or +1.
func (p Point) Compare(q Point) int {
	switch {
	case p.X < q.X:
		return -1
	case p.X > q.X:
		return 1
	case p.Y < q.Y:
		return -1
	case p.Y > q.Y:
		return 1
	}
	return 0
}

// Less reports whether p sorts before q.
func (p Point) Less(q Point) bool { return p.Compare(q) < 0 }

// Equal reports whether both coordinates match.
func (p Point) Equal(q Point) bool { return p.X == q.X && p.Y == q.Y }

func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'f', -1, 64) + ", " + strconv.FormatFloat(p.Y, 'f', -1, 64) + ")"
}
