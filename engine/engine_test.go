package engine

import (
	"path/filepath"
	"testing"
)

// TestOpenInMemory verifies that an in-memory database opens and that the
// geometry functions are usable in a WHERE clause.
func TestOpenInMemory(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("CREATE TABLE p(x REAL, y REAL)"); err != nil {
		t.Fatalf("CREATE TABLE failed: %v", err)
	}
	if _, err := db.Exec("INSERT INTO p(x, y) VALUES (0.1, 0.1), (0.5, 0.5), (0.9, 0.2)"); err != nil {
		t.Fatalf("INSERT failed: %v", err)
	}
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM p WHERE rect_contains(0, 0, 0.5, 0.5, x, y)").Scan(&n); err != nil {
		t.Fatalf("COUNT with rect_contains failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("rect_contains count = %d, want 2", n)
	}
}

func TestOpenFile(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "points.sqlite"))
	if err != nil {
		t.Fatalf("Open(file) failed: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
}
