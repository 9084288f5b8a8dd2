// Package store keeps named point datasets in SQLite and reads plain-text
// point files. It includes:
//   - Store interface and SQLiteStore backed by a points table
//   - Schema helper creating the points table
//   - Range and nearest queries answered in SQL, used as an oracle for the
//     in-memory indexes
//   - ReadPoints for whitespace separated "x y" files
package store
