package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/viant/pointset/engine"
	"github.com/viant/pointset/geom"
	"github.com/viant/pointset/index"
)

// SQLiteStore implements Store on a SQLite database. Range and Nearest are
// evaluated by SQLite through the rect_contains and pt_dist2 functions, so
// the database must come from engine.Open or have been opened after
// engine.RegisterGeometryFunctions.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-backed Store. It ensures the points
// schema exists in the provided database.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	if err := engine.RegisterGeometryFunctions(db); err != nil {
		return nil, err
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("store: ensure schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func checkDataset(op, dataset string) error {
	if dataset == "" {
		return fmt.Errorf("store: %s called with empty dataset", op)
	}
	return nil
}

// AddPoints inserts pts in one transaction. Points already in the dataset,
// or repeated within pts, are ignored.
func (s *SQLiteStore) AddPoints(ctx context.Context, dataset string, pts []geom.Point) (int, error) {
	if err := checkDataset("AddPoints", dataset); err != nil {
		return 0, err
	}
	if len(pts) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) FROM points WHERE dataset_id = ?`, dataset).Scan(&seq); err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO points(dataset_id, seq, x, y) VALUES(?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	added := 0
	for _, p := range pts {
		res, err := stmt.ExecContext(ctx, dataset, seq+1, p.X, p.Y)
		if err != nil {
			return 0, fmt.Errorf("store: insert %v: %w", p, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		if n > 0 {
			seq++
			added++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

// Points returns the dataset ordered by insertion.
func (s *SQLiteStore) Points(ctx context.Context, dataset string) ([]geom.Point, error) {
	if err := checkDataset("Points", dataset); err != nil {
		return nil, err
	}
	return s.query(ctx, `SELECT x, y FROM points WHERE dataset_id = ? ORDER BY seq`, dataset)
}

// Range returns the points inside rect ordered by (x, y).
func (s *SQLiteStore) Range(ctx context.Context, dataset string, rect geom.Rect) ([]geom.Point, error) {
	if err := checkDataset("Range", dataset); err != nil {
		return nil, err
	}
	return s.query(ctx, `SELECT x, y FROM points
        WHERE dataset_id = ? AND rect_contains(?, ?, ?, ?, x, y)
        ORDER BY x, y`,
		dataset, rect.XMin, rect.YMin, rect.XMax, rect.YMax)
}

// Nearest returns the point minimising pt_dist2 to p.
func (s *SQLiteStore) Nearest(ctx context.Context, dataset string, p geom.Point) (*geom.Point, error) {
	if err := checkDataset("Nearest", dataset); err != nil {
		return nil, err
	}
	out, err := s.query(ctx, `SELECT x, y FROM points
        WHERE dataset_id = ?
        ORDER BY pt_dist2(?, ?, x, y), x, y
        LIMIT 1`,
		dataset, p.X, p.Y)
	if err != nil || len(out) == 0 {
		return nil, err
	}
	return &out[0], nil
}

// Count returns the dataset size.
func (s *SQLiteStore) Count(ctx context.Context, dataset string) (int, error) {
	if err := checkDataset("Count", dataset); err != nil {
		return 0, err
	}
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM points WHERE dataset_id = ?`, dataset).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Datasets lists the stored dataset names.
func (s *SQLiteStore) Datasets(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT dataset_id FROM points ORDER BY dataset_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// Remove deletes the dataset.
func (s *SQLiteStore) Remove(ctx context.Context, dataset string) error {
	if err := checkDataset("Remove", dataset); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM points WHERE dataset_id = ?`, dataset)
	return err
}

// LoadInto feeds the dataset into idx in insertion order.
func (s *SQLiteStore) LoadInto(ctx context.Context, dataset string, idx index.PointIndex) (int, error) {
	if idx == nil {
		return 0, fmt.Errorf("store: LoadInto called with nil index")
	}
	pts, err := s.Points(ctx, dataset)
	if err != nil {
		return 0, err
	}
	before := idx.Size()
	for i := range pts {
		if err := idx.Insert(&pts[i]); err != nil {
			return 0, err
		}
	}
	return idx.Size() - before, nil
}

func (s *SQLiteStore) query(ctx context.Context, q string, args ...any) ([]geom.Point, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []geom.Point
	for rows.Next() {
		var p geom.Point
		if err := rows.Scan(&p.X, &p.Y); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)
