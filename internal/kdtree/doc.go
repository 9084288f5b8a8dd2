// Package kdtree implements the node graph behind index/kdtree: a 2-d tree
// whose nodes cache the rectangle covering their subtree so that range and
// nearest-neighbour queries can discard whole subtrees with one test.
package kdtree
