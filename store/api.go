package store

import (
	"context"

	"github.com/viant/pointset/geom"
	"github.com/viant/pointset/index"
)

// Store defines durable storage for named point datasets.
type Store interface {
	// AddPoints appends pts to dataset, skipping points already stored in it,
	// and returns how many were new.
	AddPoints(ctx context.Context, dataset string, pts []geom.Point) (int, error)

	// Points returns the dataset in insertion order.
	Points(ctx context.Context, dataset string) ([]geom.Point, error)

	// Range returns the dataset points inside the closed rectangle, ordered
	// by (x, y).
	Range(ctx context.Context, dataset string, rect geom.Rect) ([]geom.Point, error)

	// Nearest returns a dataset point closest to p, or nil for an empty
	// dataset. Ties resolve to the smallest point in (x, y) order.
	Nearest(ctx context.Context, dataset string, p geom.Point) (*geom.Point, error)

	// Count returns the number of points in dataset.
	Count(ctx context.Context, dataset string) (int, error)

	// Datasets lists dataset names in lexical order.
	Datasets(ctx context.Context) ([]string, error)

	// Remove deletes every point of dataset.
	Remove(ctx context.Context, dataset string) error

	// LoadInto inserts the dataset, in insertion order, into idx and returns
	// how many points idx gained.
	LoadInto(ctx context.Context, dataset string, idx index.PointIndex) (int, error)
}
