package store

import (
	"context"
	"database/sql"
)

// seq preserves insertion order so an index rebuilt from the table has the
// shape the first insertions produced.
const pointsSchema = `
CREATE TABLE IF NOT EXISTS points (
    dataset_id TEXT NOT NULL,
    seq INTEGER NOT NULL,
    x REAL NOT NULL,
    y REAL NOT NULL,
    PRIMARY KEY(dataset_id, x, y)
);
CREATE INDEX IF NOT EXISTS points_seq ON points(dataset_id, seq);
`

// EnsureSchema creates the points table in the provided database if it does
// not already exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, pointsSchema)
	return err
}
