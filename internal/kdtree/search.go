package kdtree

import "github.com/viant/pointset/geom"

// Range returns every stored point inside r, in pre-order. A subtree is
// entered only when its region intersects r.
func (t *Tree) Range(r geom.Rect) []geom.Point {
	if t.root == nil {
		return nil
	}
	return t.root.collect(r, nil)
}

func (n *Node) collect(r geom.Rect, out []geom.Point) []geom.Point {
	if r.Contains(n.point) {
		out = append(out, n.point)
	}
	if n.left != nil && n.left.rect.Intersects(r) {
		out = n.left.collect(r, out)
	}
	if n.right != nil && n.right.rect.Intersects(r) {
		out = n.right.collect(r, out)
	}
	return out
}

// Nearest returns a stored point closest to q. The second result is false
// when the tree is empty. Among equidistant points the first one met in the
// descent wins.
func (t *Tree) Nearest(q geom.Point) (geom.Point, bool) {
	if t.root == nil {
		return geom.Point{}, false
	}
	best := t.root.point
	best, _ = t.root.nearest(q, best, best.DistanceSquaredTo(q))
	return best, true
}

func (n *Node) nearest(q, best geom.Point, bestDist float64) (geom.Point, float64) {
	if d := n.point.DistanceSquaredTo(q); d < bestDist {
		best, bestDist = n.point, d
	}
	if n.rect.DistanceSquaredTo(q) >= bestDist {
		return best, bestDist
	}
	first, second := n.near(q)
	if first != nil {
		best, bestDist = first.nearest(q, best, bestDist)
	}
	if second != nil && second.rect.DistanceSquaredTo(q) < bestDist {
		best, bestDist = second.nearest(q, best, bestDist)
	}
	return best, bestDist
}
