package kdtree

import "github.com/viant/pointset/geom"

// Node is a single stored point together with the region of the plane its
// subtree covers. Nodes are never modified after creation except to attach a
// child.
type Node struct {
	point geom.Point
	rect  geom.Rect
	axis  Axis
	left  *Node
	right *Node
}

func newNode(p geom.Point, rect geom.Rect, axis Axis) *Node {
	return &Node{point: p, rect: rect, axis: axis}
}

// Point returns the stored point.
func (n *Node) Point() geom.Point { return n.point }

// Rect returns the region holding every point of the subtree.
func (n *Node) Rect() geom.Rect { return n.rect }

// Axis returns the split axis.
func (n *Node) Axis() Axis { return n.axis }

// Left returns the subtree below the split value, or nil.
func (n *Node) Left() *Node { return n.left }

// Right returns the subtree at or above the split value, or nil.
func (n *Node) Right() *Node { return n.right }

// route tells which side of n p belongs to: -1 left, +1 right, 0 when p
// equals the stored point. An equal split coordinate with a different other
// coordinate goes right.
func (n *Node) route(p geom.Point) int {
	c, v := n.axis.primary(p), n.axis.primary(n.point)
	switch {
	case c < v:
		return -1
	case c > v:
		return 1
	case n.axis.secondary(p) == n.axis.secondary(n.point):
		return 0
	}
	return 1
}

// childRects returns the regions a left and a right child of n would own.
func (n *Node) childRects() (left, right geom.Rect) {
	return n.axis.split(n.rect, n.axis.primary(n.point))
}

// near orders the children of n so that the one on q's side of the
// splitting line comes first.
func (n *Node) near(q geom.Point) (first, second *Node) {
	if n.axis.primary(q) >= n.axis.primary(n.point) {
		return n.right, n.left
	}
	return n.left, n.right
}

func (n *Node) height() int {
	if n == nil {
		return 0
	}
	l, r := n.left.height(), n.right.height()
	if l > r {
		return l + 1
	}
	return r + 1
}
