package kdtree

import (
	"container/heap"
	"sort"

	"github.com/viant/pointset/geom"
)

// Neighbor is a candidate returned by a k-nearest search.
type Neighbor struct {
	Point           geom.Point
	DistanceSquared float64
}

// neighbors is a max-heap on distance, so the worst kept candidate sits on
// top.
type neighbors []Neighbor

func (h neighbors) Len() int           { return len(h) }
func (h neighbors) Less(i, j int) bool { return h[i].DistanceSquared > h[j].DistanceSquared }
func (h neighbors) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *neighbors) Push(x interface{}) {
	*h = append(*h, x.(Neighbor))
}

func (h *neighbors) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// KNearest returns up to k stored points ordered by increasing distance to
// q, ties broken by point order. It prunes with the same region bound as
// Nearest once k candidates are held.
func (t *Tree) KNearest(q geom.Point, k int) []Neighbor {
	if t.root == nil || k <= 0 {
		return nil
	}
	h := make(neighbors, 0, min(k, t.size))
	t.root.kNearest(q, k, &h)
	result := []Neighbor(h)
	sort.Slice(result, func(i, j int) bool {
		if result[i].DistanceSquared != result[j].DistanceSquared {
			return result[i].DistanceSquared < result[j].DistanceSquared
		}
		return result[i].Point.Less(result[j].Point)
	})
	return result
}

func (n *Node) kNearest(q geom.Point, k int, h *neighbors) {
	d := n.point.DistanceSquaredTo(q)
	switch {
	case h.Len() < k:
		heap.Push(h, Neighbor{Point: n.point, DistanceSquared: d})
	case d < (*h)[0].DistanceSquared:
		(*h)[0] = Neighbor{Point: n.point, DistanceSquared: d}
		heap.Fix(h, 0)
	}
	first, second := n.near(q)
	for _, child := range [2]*Node{first, second} {
		if child == nil {
			continue
		}
		if h.Len() == k && child.rect.DistanceSquaredTo(q) >= (*h)[0].DistanceSquared {
			continue
		}
		child.kNearest(q, k, h)
	}
}
