package kdtree

import "github.com/viant/pointset/index"

// Draw renders every point and, for each node, its splitting segment clipped
// to the node's region: vertical for x splits, horizontal for y splits.
func (t *Tree) Draw(c index.Canvas, pal index.Palette) {
	if c == nil {
		return
	}
	t.Walk(func(_ int, n *Node) bool {
		p, r := n.point, n.rect
		c.SetPenColor(pal.Point)
		c.SetPenRadius(pal.PointRadius)
		c.Point(p.X, p.Y)
		c.SetPenRadius(pal.LineRadius)
		switch n.axis {
		case X:
			c.SetPenColor(pal.Vertical)
			c.Line(p.X, r.YMin, p.X, r.YMax)
		case Y:
			c.SetPenColor(pal.Horizontal)
			c.Line(r.XMin, p.Y, r.XMax, p.Y)
		}
		return true
	})
}
