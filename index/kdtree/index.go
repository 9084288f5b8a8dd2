package kdtree

import (
	"fmt"

	"github.com/viant/pointset/geom"
	"github.com/viant/pointset/index"
	kd "github.com/viant/pointset/internal/kdtree"
)

// Index is a 2-d tree point index. Each node caches the rectangle covering
// its subtree, which lets Range and Nearest skip subtrees with a single test.
type Index struct {
	tree    *kd.Tree
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
	i := &Index{tree: kd.New(), palette: index.DefaultPalette()}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// IsEmpty reports whether no point is stored.
func (i *Index) IsEmpty() bool { return i.tree.Len() == 0 }

// Size returns the number of stored points.
func (i *Index) Size() int { return i.tree.Len() }

// Height returns the number of tree levels.
func (i *Index) Height() int { return i.tree.Height() }

// Insert adds p; inserting a stored point again leaves the tree unchanged.
func (i *Index) Insert(p *geom.Point) error {
	if p == nil {
		return fmt.Errorf("kdtree: insert: nil point: %w", index.ErrInvalidArgument)
	}
	i.tree.Insert(*p)
	return nil
}

// Contains reports whether p is stored.
func (i *Index) Contains(p *geom.Point) (bool, error) {
	if p == nil {
		return false, fmt.Errorf("kdtree: contains: nil point: %w", index.ErrInvalidArgument)
	}
	return i.tree.Contains(*p), nil
}

// Range returns the stored points inside rect in tree pre-order.
func (i *Index) Range(rect *geom.Rect) ([]geom.Point, error) {
	if rect == nil {
		return nil, fmt.Errorf("kdtree: range: nil rect: %w", index.ErrInvalidArgument)
	}
	return i.tree.Range(*rect), nil
}

// Nearest returns a stored point closest to p, or nil when the index is
// empty.
func (i *Index) Nearest(p *geom.Point) (*geom.Point, error) {
	if p == nil {
		return nil, fmt.Errorf("kdtree: nearest: nil point: %w", index.ErrInvalidArgument)
	}
	best, ok := i.tree.Nearest(*p)
	if !ok {
		return nil, nil
	}
	return &best, nil
}

// KNearest returns up to k stored points by increasing distance to p.
func (i *Index) KNearest(p *geom.Point, k int) ([]geom.Point, error) {
	if p == nil {
		return nil, fmt.Errorf("kdtree: knearest: nil point: %w", index.ErrInvalidArgument)
	}
	found := i.tree.KNearest(*p, k)
	if len(found) == 0 {
		return nil, nil
	}
	out := make([]geom.Point, len(found))
	for n, nb := range found {
		out[n] = nb.Point
	}
	return out, nil
}

// Points returns every stored point in tree pre-order.
func (i *Index) Points() []geom.Point { return i.tree.Points() }

// Draw renders the points and the splitting segment of every node.
func (i *Index) Draw(canvas index.Canvas) { i.tree.Draw(canvas, i.palette) }

var _ index.PointIndex = (*Index)(nil)
