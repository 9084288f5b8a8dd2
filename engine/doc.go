// Package engine provides helpers for working with the modernc.org/sqlite
// driver in this module: opening connections and registering the SQL
// geometry functions (pt_dist2, rect_contains) that the point store uses as
// its query oracle.
package engine
