package pointset

import (
	"fmt"
	"slices"

	"github.com/viant/pointset/geom"
	"github.com/viant/pointset/index"
)

// Query is one probe used by Compare: a range query when Rect is set, a
// membership and nearest query when Point is set.
type Query struct {
	Rect  *geom.Rect
	Point *geom.Point
}

// Compare runs every query against a and b and returns an error describing
// the first disagreement. Range results are compared as sets and nearest
// results by distance, since backends may break ties differently.
func Compare(a, b index.PointIndex, queries []Query) error {
	if a == nil || b == nil {
		return fmt.Errorf("pointset: compare: nil index: %w", index.ErrInvalidArgument)
	}
	if a.Size() != b.Size() {
		return fmt.Errorf("pointset: compare: size %d != %d", a.Size(), b.Size())
	}
	for i, q := range queries {
		if q.Rect != nil {
			if err := compareRange(a, b, q.Rect); err != nil {
				return fmt.Errorf("pointset: compare: query %d: %w", i, err)
			}
		}
		if q.Point != nil {
			if err := comparePoint(a, b, q.Point); err != nil {
				return fmt.Errorf("pointset: compare: query %d: %w", i, err)
			}
		}
	}
	return nil
}

func compareRange(a, b index.PointIndex, r *geom.Rect) error {
	ra, err := a.Range(r)
	if err != nil {
		return err
	}
	rb, err := b.Range(r)
	if err != nil {
		return err
	}
	slices.SortFunc(ra, geom.Point.Compare)
	slices.SortFunc(rb, geom.Point.Compare)
	if !slices.Equal(ra, rb) {
		return fmt.Errorf("range %v: %d points vs %d points", r, len(ra), len(rb))
	}
	return nil
}

func comparePoint(a, b index.PointIndex, p *geom.Point) error {
	ca, err := a.Contains(p)
	if err != nil {
		return err
	}
	cb, err := b.Contains(p)
	if err != nil {
		return err
	}
	if ca != cb {
		return fmt.Errorf("contains %v: %t vs %t", p, ca, cb)
	}
	na, err := a.Nearest(p)
	if err != nil {
		return err
	}
	nb, err := b.Nearest(p)
	if err != nil {
		return err
	}
	if (na == nil) != (nb == nil) {
		return fmt.Errorf("nearest %v: %v vs %v", p, na, nb)
	}
	if na != nil && p.DistanceSquaredTo(*na) != p.DistanceSquaredTo(*nb) {
		return fmt.Errorf("nearest %v: %v vs %v", p, *na, *nb)
	}
	return nil
}
