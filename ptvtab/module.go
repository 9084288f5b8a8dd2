package ptvtab

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"modernc.org/sqlite/vtab"

	"github.com/viant/pointset/geom"
	"github.com/viant/pointset/pointset"
)

// ModuleName is the name Register installs the module under.
const ModuleName = "pt_query"

const (
	idxScan = iota
	idxMatch
)

// Module creates pt_query tables. Columns are query (the MATCH target), x, y
// and dist, the distance to the query point for nearest and knearest.
type Module struct {
	catalog atomic.Pointer[Catalog]
}

// Table is a pt_query table instance.
type Table struct {
	module *Module
	name   string
	opts   pointset.Options
}

// Cursor iterates the hits of one MATCH query.
type Cursor struct {
	table *Table
	rows  []hit
	pos   int
}

type hit struct {
	point geom.Point
	dist  float64
}

var modules = struct {
	mu     sync.Mutex
	byName map[string]*Module
}{byName: make(map[string]*Module)}

// Register installs the pt_query module backed by catalog.
func Register(db *sql.DB, catalog *Catalog) error {
	return RegisterAs(db, ModuleName, catalog)
}

// RegisterAs installs the module under name. Module names are global to the
// driver, so registering a name again only swaps the catalog its tables
// read from. Registration applies to connections opened afterwards.
func RegisterAs(db *sql.DB, name string, catalog *Catalog) error {
	if catalog == nil {
		return fmt.Errorf("ptvtab: nil catalog")
	}
	modules.mu.Lock()
	defer modules.mu.Unlock()
	if m, ok := modules.byName[name]; ok {
		m.catalog.Store(catalog)
		return nil
	}
	m := &Module{}
	m.catalog.Store(catalog)
	if err := vtab.RegisterModule(db, name, m); err != nil {
		if !strings.Contains(err.Error(), "already registered") {
			return err
		}
	}
	modules.byName[name] = m
	return nil
}

// Create declares the table schema. Module arguments are option strings
// understood by pointset.ParseOptions and select the backend the catalog
// loader builds.
func (m *Module) Create(ctx vtab.Context, args []string) (vtab.Table, error) {
	return m.connect(ctx, args)
}

// Connect attaches to an existing table.
func (m *Module) Connect(ctx vtab.Context, args []string) (vtab.Table, error) {
	return m.connect(ctx, args)
}

func (m *Module) connect(ctx vtab.Context, args []string) (vtab.Table, error) {
	if len(args) < 3 {
		return nil, fmt.Errorf("ptvtab: need at least 3 args, got %d", len(args))
	}
	if err := ctx.EnableConstraintSupport(); err != nil {
		return nil, fmt.Errorf("ptvtab: EnableConstraintSupport failed: %w", err)
	}
	opts, err := pointset.ParseOptions(args[3:])
	if err != nil {
		return nil, err
	}
	if err := ctx.Declare(fmt.Sprintf("CREATE TABLE %s(query TEXT, x REAL, y REAL, dist REAL)", args[2])); err != nil {
		return nil, err
	}
	return &Table{module: m, name: args[2], opts: opts}, nil
}

// BestIndex pushes a MATCH on the query column into Filter.
func (t *Table) BestIndex(info *vtab.IndexInfo) error {
	for i := range info.Constraints {
		c := &info.Constraints[i]
		if !c.Usable || c.Column != 0 || c.Op != vtab.OpMATCH {
			continue
		}
		c.ArgIndex = 0
		c.Omit = true
		info.IdxNum = idxMatch
		info.EstimatedCost = 10
		return nil
	}
	info.IdxNum = idxScan
	info.EstimatedCost = 1e12
	return nil
}

func (t *Table) Open() (vtab.Cursor, error) { return &Cursor{table: t}, nil }
func (t *Table) Disconnect() error          { return nil }
func (t *Table) Destroy() error             { return nil }

// Filter runs the MATCH query. Without a MATCH constraint the table is
// empty.
func (c *Cursor) Filter(idxNum int, idxStr string, vals []vtab.Value) error {
	_ = idxStr
	c.rows = nil
	c.pos = 0
	if idxNum != idxMatch || len(vals) == 0 || vals[0] == nil {
		return nil
	}
	var text string
	switch v := vals[0].(type) {
	case string:
		text = v
	case []byte:
		text = string(v)
	default:
		return fmt.Errorf("ptvtab: MATCH expects TEXT, got %T", vals[0])
	}
	q, err := parseQuery(text)
	if err != nil {
		return err
	}
	catalog := c.table.module.catalog.Load()
	idx, err := catalog.Get(context.Background(), q.dataset, c.table.opts)
	if err != nil {
		return err
	}

	switch q.op {
	case opRange:
		pts, err := idx.Range(&q.rect)
		if err != nil {
			return err
		}
		for _, p := range pts {
			c.rows = append(c.rows, hit{point: p})
		}
	case opNearest:
		p, err := idx.Nearest(&q.point)
		if err != nil {
			return err
		}
		if p != nil {
			c.rows = append(c.rows, hit{point: *p, dist: q.point.DistanceTo(*p)})
		}
	case opKNearest:
		pts, err := idx.KNearest(&q.point, q.k)
		if err != nil {
			return err
		}
		for _, p := range pts {
			c.rows = append(c.rows, hit{point: p, dist: q.point.DistanceTo(p)})
		}
	}
	return nil
}

func (c *Cursor) Next() error {
	if c.pos < len(c.rows) {
		c.pos++
	}
	return nil
}

func (c *Cursor) Eof() bool { return c.pos >= len(c.rows) }

func (c *Cursor) Column(col int) (vtab.Value, error) {
	if c.pos < 0 || c.pos >= len(c.rows) {
		return nil, fmt.Errorf("ptvtab: Column out of range")
	}
	h := c.rows[c.pos]
	switch col {
	case 1:
		return h.point.X, nil
	case 2:
		return h.point.Y, nil
	case 3:
		return h.dist, nil
	}
	return nil, nil
}

func (c *Cursor) Rowid() (int64, error) { return int64(c.pos + 1), nil }

func (c *Cursor) Close() error {
	c.rows = nil
	c.pos = 0
	return nil
}
