// Package geom defines the two value primitives shared by every point index in
// this module:
//   - Point: a location in the plane, ordered lexicographically by (x, y)
//   - Rect: a closed axis-aligned rectangle
//
// Both are plain values. Indexes accept pointers to them so that a missing
// argument can be told apart from the origin.
package geom
