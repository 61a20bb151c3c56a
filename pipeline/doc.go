// Package pipeline provides a lazy, pull-based query pipeline over
// in-memory sequences of records.
//
// Pipelines are lazy: no work happens until a terminal pulls values. Each
// stage pulls from the previous one on demand, so Limit can bound an
// infinite source such as Iterate. Operators never modify their source.
//
// # Sources
//
//   - FromSlice, Of, From, FromFunc
//   - Range, RangeClosed: integer ranges
//   - Iterate: infinite sequence seed, f(seed), f(f(seed)), ...
//
// # Operators
//
//   - Map, MapValue: transform each value
//   - FlatMap, FlatMapSlice: transform each value into many values
//   - Filter: keep values matching a predicate
//   - Limit, Skip: truncate or drop a prefix
//   - Distinct, DistinctBy: keep first occurrences
//   - Sorted: stable sort
//   - Tap: side-effect without altering the value
//   - Reduce: fold all values into one
//   - Concat: join pipelines sequentially
//   - Chunk: consecutive fixed-size slices
//
// # Terminals
//
//   - Collect, ForEach, Drain
//   - FindFirst, FindAny, Min, Max, FoldFirst: absent result (ok=false) on empty input
//   - Fold: always a value (the identity on empty input)
//   - Sum, Average, MinOf, MaxOf, Statistics: numeric projections, 0 on empty input
//   - Count, CountWhere, AnyMatch, AllMatch, NoneMatch
//   - GroupBy, GroupingBy: key-ordered Groups, optionally reduced by a Collector
//   - Join, ToSet, CollectWith
//
// # Usage
//
//	cheap := pipeline.Filter(pipeline.FromSlice(cars), func(c model.Car) bool {
//	    return c.Price <= 20000
//	})
//	avg, err := pipeline.Average(ctx, cheap, func(c model.Car) float64 { return c.Price })
//
//	byMake, err := pipeline.GroupBy(ctx, pipeline.FromSlice(cars), func(c model.Car) string {
//	    return c.Make
//	})
//	for mk, group := range byMake.All() {
//	    ...
//	}
package pipeline
