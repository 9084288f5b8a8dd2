package ptvtab

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/viant/pointset/index"
	"github.com/viant/pointset/pointset"
	"github.com/viant/pointset/store"
)

// Loader builds the index for a dataset the Catalog does not hold yet.
type Loader func(ctx context.Context, dataset string, opts pointset.Options) (index.PointIndex, error)

// Catalog maps dataset names to indexes shared by every table and cursor of
// a module. Indexes are only read through the catalog.
type Catalog struct {
	mu     sync.RWMutex
	byName map[string]index.PointIndex
	load   Loader
}

// NewCatalog returns an empty catalog. load may be nil, in which case
// unknown datasets are an error.
func NewCatalog(load Loader) *Catalog {
	return &Catalog{byName: make(map[string]index.PointIndex), load: load}
}

// Put registers idx under dataset, replacing any previous index.
func (c *Catalog) Put(dataset string, idx index.PointIndex) {
	c.mu.Lock()
	c.byName[dataset] = idx
	c.mu.Unlock()
}

// Invalidate drops dataset so the next lookup reloads it. It reports
// whether an index was dropped.
func (c *Catalog) Invalidate(dataset string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.byName[dataset]
	delete(c.byName, dataset)
	return ok
}

// Names returns the cached dataset names in lexical order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	out := make([]string, 0, len(c.byName))
	for name := range c.byName {
		out = append(out, name)
	}
	c.mu.RUnlock()
	sort.Strings(out)
	return out
}

// Get returns the index for dataset, loading it on a miss. When two callers
// miss concurrently the first stored index wins.
func (c *Catalog) Get(ctx context.Context, dataset string, opts pointset.Options) (index.PointIndex, error) {
	c.mu.RLock()
	idx := c.byName[dataset]
	c.mu.RUnlock()
	if idx != nil {
		return idx, nil
	}
	if c.load == nil {
		return nil, fmt.Errorf("ptvtab: unknown dataset %q", dataset)
	}
	built, err := c.load(ctx, dataset, opts)
	if err != nil {
		return nil, fmt.Errorf("ptvtab: load %q: %w", dataset, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if idx = c.byName[dataset]; idx == nil {
		idx = built
		c.byName[dataset] = idx
	}
	return idx, nil
}

// StoreLoader returns a Loader that builds an index of the requested kind
// from a dataset kept in s.
func StoreLoader(s store.Store) Loader {
	return func(ctx context.Context, dataset string, opts pointset.Options) (index.PointIndex, error) {
		idx, err := pointset.Build(opts)
		if err != nil {
			return nil, err
		}
		if _, err := s.LoadInto(ctx, dataset, idx); err != nil {
			return nil, err
		}
		return idx, nil
	}
}
