// Package index defines the PointIndex contract shared by the point indexes
// in this module, together with the Canvas drawing capability they render
// onto and the palette they draw with.
//
// Implementations in this module include a brute-force baseline backed by an
// ordered set (index/bruteforce) and a 2-d tree (index/kdtree).
package index
