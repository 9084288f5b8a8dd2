package bruteforce

import (
	"fmt"
	"sort"

	"github.com/google/btree"

	"github.com/viant/pointset/geom"
	"github.com/viant/pointset/index"
)

const degree = 32

// Index is a brute-force point index. Points live in a B-tree ordered by
// (x, y); every query scans them in that order.
type Index struct {
	set     *btree.BTreeG[geom.Point]
	palette index.Palette
}

// Option configures an Index.
type Option func(*Index)

// WithPalette sets the pens used by Draw.
func WithPalette(p index.Palette) Option {
	return func(i *Index) { i.palette = p }
}

// New returns an empty index.
func New(opts ...Option) *Index {
	i := &Index{
		set:     btree.NewG[geom.Point](degree, geom.Point.Less),
		palette: index.DefaultPalette(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// IsEmpty reports whether no point is stored.
func (i *Index) IsEmpty() bool { return i.set.Len() == 0 }

// Size returns the number of stored points.
func (i *Index) Size() int { return i.set.Len() }

// Insert adds p; inserting a stored point again has no effect.
func (i *Index) Insert(p *geom.Point) error {
	if p == nil {
		return fmt.Errorf("bruteforce: insert: nil point: %w", index.ErrInvalidArgument)
	}
	i.set.ReplaceOrInsert(*p)
	return nil
}

// Contains reports whether p is stored.
func (i *Index) Contains(p *geom.Point) (bool, error) {
	if p == nil {
		return false, fmt.Errorf("bruteforce: contains: nil point: %w", index.ErrInvalidArgument)
	}
	return i.set.Has(*p), nil
}

// Range returns the stored points inside rect in (x, y) order.
func (i *Index) Range(rect *geom.Rect) ([]geom.Point, error) {
	if rect == nil {
		return nil, fmt.Errorf("bruteforce: range: nil rect: %w", index.ErrInvalidArgument)
	}
	var out []geom.Point
	i.set.Ascend(func(p geom.Point) bool {
		if rect.Contains(p) {
			out = append(out, p)
		}
		return true
	})
	return out, nil
}

// Nearest returns the stored point closest to p, the first in (x, y) order
// among equidistant ones. It returns nil when the index is empty.
func (i *Index) Nearest(p *geom.Point) (*geom.Point, error) {
	if p == nil {
		return nil, fmt.Errorf("bruteforce: nearest: nil point: %w", index.ErrInvalidArgument)
	}
	var (
		best  *geom.Point
		bestD float64
	)
	i.set.Ascend(func(q geom.Point) bool {
		d := q.DistanceSquaredTo(*p)
		if best == nil || d < bestD {
			q := q
			best, bestD = &q, d
		}
		return true
	})
	return best, nil
}

// KNearest returns up to k stored points by increasing distance to p, ties
// in (x, y) order.
func (i *Index) KNearest(p *geom.Point, k int) ([]geom.Point, error) {
	if p == nil {
		return nil, fmt.Errorf("bruteforce: knearest: nil point: %w", index.ErrInvalidArgument)
	}
	if k <= 0 || i.IsEmpty() {
		return nil, nil
	}
	type scored struct {
		pt   geom.Point
		dist float64
	}
	all := make([]scored, 0, i.set.Len())
	i.set.Ascend(func(q geom.Point) bool {
		all = append(all, scored{pt: q, dist: q.DistanceSquaredTo(*p)})
		return true
	})
	sort.SliceStable(all, func(a, b int) bool { return all[a].dist < all[b].dist })
	if k > len(all) {
		k = len(all)
	}
	out := make([]geom.Point, k)
	for n := 0; n < k; n++ {
		out[n] = all[n].pt
	}
	return out, nil
}

// Points returns every stored point in (x, y) order.
func (i *Index) Points() []geom.Point {
	if i.IsEmpty() {
		return nil
	}
	out := make([]geom.Point, 0, i.set.Len())
	i.set.Ascend(func(p geom.Point) bool {
		out = append(out, p)
		return true
	})
	return out
}

// Draw renders every stored point.
func (i *Index) Draw(canvas index.Canvas) {
	if canvas == nil {
		return
	}
	canvas.SetPenColor(i.palette.Point)
	canvas.SetPenRadius(i.palette.PointRadius)
	i.set.Ascend(func(p geom.Point) bool {
		canvas.Point(p.X, p.Y)
		return true
	})
}

var _ index.PointIndex = (*Index)(nil)
