package pointset

import (
	"fmt"

	"github.com/viant/pointset/geom"
	"github.com/viant/pointset/index"
	"github.com/viant/pointset/index/bruteforce"
	"github.com/viant/pointset/index/kdtree"
)

// New returns an empty index of the given kind using the default palette.
func New(kind Kind) (index.PointIndex, error) {
	return Build(Options{Kind: kind, Palette: index.DefaultPalette()})
}

// Build returns an empty index configured by opts.
func Build(opts Options) (index.PointIndex, error) {
	switch opts.Kind {
	case KindKd, "":
		return kdtree.New(kdtree.WithPalette(opts.Palette)), nil
	case KindBrute:
		return bruteforce.New(bruteforce.WithPalette(opts.Palette)), nil
	}
	return nil, fmt.Errorf("pointset: unknown index kind %q", opts.Kind)
}

// Open parses args with ParseOptions and builds the index they describe.
func Open(args ...string) (index.PointIndex, error) {
	opts, err := ParseOptions(args)
	if err != nil {
		return nil, err
	}
	return Build(opts)
}

// InsertAll inserts pts in order and returns how many were not already
// stored.
func InsertAll(idx index.PointIndex, pts []geom.Point) (int, error) {
	if idx == nil {
		return 0, fmt.Errorf("pointset: nil index: %w", index.ErrInvalidArgument)
	}
	before := idx.Size()
	for i := range pts {
		if err := idx.Insert(&pts[i]); err != nil {
			return idx.Size() - before, err
		}
	}
	return idx.Size() - before, nil
}
