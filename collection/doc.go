// Package collection wraps a plain slice in a Collection type that carries the
// sliceflow operations: synchronous single-pass aggregations (Amount,
// ReduceKeys, Group) and the cooperative async engines (AsyncFilter,
// AsyncEach). The wrapper exists so the operations live on an explicit type
// taking the slice as input, rather than on any shared built-in.
//
// The package also exposes the aggregations as free generic functions
// (Amount, ReduceKeys, GroupBy) for callers that want arbitrary comparable
// key types without constructing a Collection.
package collection
