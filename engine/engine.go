package engine

import (
	"database/sql"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// Open opens a SQLite database using the modernc.org/sqlite driver with the
// geometry functions registered.
//
// For file-based databases, pass a path like "./db.sqlite". For in-memory
// databases, pass ":memory:".
func Open(dsn string) (*sql.DB, error) {
	if err := RegisterGeometryFunctions(nil); err != nil {
		return nil, err
	}
	return sql.Open("sqlite", dsn)
}
