// Package ptvtab implements a SQLite virtual table that answers point
// queries from in-memory indexes with MATCH semantics:
//
//	CREATE VIRTUAL TABLE q USING pt_query(index=kd);
//	SELECT x, y FROM q WHERE query MATCH 'range cities 0 0 0.5 0.5';
//	SELECT x, y, dist FROM q WHERE query MATCH 'nearest cities 0.3 0.7';
//	SELECT x, y, dist FROM q WHERE query MATCH 'knearest cities 5 0.3 0.7';
//
// Indexes are looked up by dataset name in a Catalog. A Catalog built with a
// Loader fills misses, for example from a store.Store.
package ptvtab
