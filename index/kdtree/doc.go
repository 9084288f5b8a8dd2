// Package kdtree provides a point index backed by a 2-d tree. Splitting axes
// alternate with depth, starting with x at the root, and each node records
// the region of the unit square its subtree covers. Range queries descend
// only into children whose region intersects the query; nearest-neighbour
// queries visit the child on the query's side first and skip any subtree
// whose region is no closer than the best candidate so far.
//
// All methods reject nil arguments with index.ErrInvalidArgument.
package kdtree
