// Package bruteforce provides a point index that answers every query by
// scanning all stored points. Points are kept in a B-tree ordered by (x, y),
// which makes membership a tree lookup and iteration deterministic. It serves
// as the reference the kd-tree is checked against.
package bruteforce
