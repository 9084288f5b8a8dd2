package kdtree

import (
	"github.com/viant/pointset/geom"
)

// Tree is a 2-d tree over the unit square. The root splits on x and the axis
// alternates with depth. The zero value is an empty tree.
type Tree struct {
	root *Node
	size int
}

// New returns an empty tree.
func New() *Tree { return &Tree{} }

// Len returns the number of stored points.
func (t *Tree) Len() int { return t.size }

// Root returns the root node, or nil when the tree is empty.
func (t *Tree) Root() *Node { return t.root }

// Height returns the number of levels, 0 for an empty tree.
func (t *Tree) Height() int { return t.root.height() }

// Insert stores p and reports whether it was new.
func (t *Tree) Insert(p geom.Point) bool {
	link := &t.root
	rect := geom.UnitSquare()
	axis := X
	for *link != nil {
		n := *link
		left, right := n.childRects()
		switch n.route(p) {
		case 0:
			return false
		case -1:
			link, rect = &n.left, left
		default:
			link, rect = &n.right, right
		}
		axis = n.axis.Next()
	}
	*link = newNode(p, rect, axis)
	t.size++
	return true
}

// Contains reports whether a point equal to p is stored. It follows the same
// route as Insert.
func (t *Tree) Contains(p geom.Point) bool {
	n := t.root
	for n != nil {
		switch n.route(p) {
		case 0:
			return true
		case -1:
			n = n.left
		default:
			n = n.right
		}
	}
	return false
}

// WalkFunc visits a node at the given depth. Returning false skips the
// node's subtrees.
type WalkFunc func(depth int, n *Node) bool

// Walk visits nodes in pre-order: node, left subtree, right subtree.
func (t *Tree) Walk(fn WalkFunc) { walk(t.root, 0, fn) }

func walk(n *Node, depth int, fn WalkFunc) {
	if n == nil {
		return
	}
	if !fn(depth, n) {
		return
	}
	walk(n.left, depth+1, fn)
	walk(n.right, depth+1, fn)
}

// Points returns every stored point in pre-order.
func (t *Tree) Points() []geom.Point {
	if t.size == 0 {
		return nil
	}
	out := make([]geom.Point, 0, t.size)
	t.Walk(func(_ int, n *Node) bool {
		out = append(out, n.point)
		return true
	})
	return out
}
