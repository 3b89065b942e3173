// Package sliceflow provides a high-level façade over the cooperative
// slice-processing engines and synchronous aggregations. Most applications
// interact with this package by:
//  1. Calling AsyncFilter / AsyncEach directly on a slice (optionally
//     overriding the default goroutine-per-task scheduler)
//  2. Using the synchronous helpers Amount, ReduceKeys and GroupBy
//  3. Or wrapping a slice in a collection.Collection to carry a scheduler and
//     logger across several operations
//
// The façade delegates the async work to engine.Filter and engine.Each while
// keeping setup ergonomics concise. Defaults are safe for local development
// and testing; callers with latency-sensitive work on the same process
// typically supply a schedule.Idle scheduler so element tasks run one at a
// time on a yielding background worker.
package sliceflow

import (
	"context"

	"github.com/hupe1980/sliceflow/collection"
	"github.com/hupe1980/sliceflow/engine"
	"github.com/hupe1980/sliceflow/logging"
	"github.com/hupe1980/sliceflow/schedule"
)

// Options configures the façade-level async operations.
type Options struct {
	// Scheduler runs the per-element tasks. Defaults to schedule.Goroutine.
	Scheduler schedule.Scheduler
	// Logger receives debug output from the engines. Defaults to NoOpLogger.
	Logger logging.Logger
}

func resolveOptions(optFns []func(o *Options)) Options {
	opts := Options{
		Scheduler: schedule.Goroutine{},
		Logger:    logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}

// AsyncFilter dispatches one predicate evaluation per element of s and
// resolves to the kept elements in their original relative order.
//
// The join is fail-fast: the first element fault observed (error or panic in
// pred) rejects the call with that fault, and the outcomes of tasks still in
// flight are discarded. Already-dispatched tasks are never cancelled. All
// len(s) tasks are dispatched at once with no throttling; bounding the load
// is the caller's responsibility.
func AsyncFilter[T any](ctx context.Context, s []T, pred engine.Predicate[T], optFns ...func(o *Options)) ([]T, error) {
	opts := resolveOptions(optFns)
	return engine.Filter(ctx, opts.Scheduler, s, pred, engine.WithLogger(opts.Logger))
}

// AsyncEach dispatches one callback invocation per element of s and resolves
// to exactly len(s) settled outcomes, index-aligned to the input.
//
// The join is settle-all: every element fault is captured in that element's
// Outcome and the call itself never fails because of one. Callers must
// inspect the returned outcomes individually. The same no-throttling caveat
// as AsyncFilter applies.
func AsyncEach[T, R any](ctx context.Context, s []T, cb engine.Callback[T, R], optFns ...func(o *Options)) ([]engine.Outcome[R], error) {
	opts := resolveOptions(optFns)
	return engine.Each(ctx, opts.Scheduler, s, cb, engine.WithLogger(opts.Logger))
}

// Amount returns the number of elements of s matching pred. Synchronous
// single pass.
func Amount[T any](s []T, pred func(element T) bool) int {
	return collection.Amount(s, pred)
}

// ReduceKeys builds a key-to-element mapping from s; later elements overwrite
// earlier ones sharing the same key.
func ReduceKeys[T any, K comparable](s []T, key func(element T) K) map[K]T {
	return collection.ReduceKeys(s, key)
}

// GroupBy partitions s into key-to-elements groups, preserving each group's
// insertion order.
func GroupBy[T any, K comparable](s []T, key func(element T) K) map[K][]T {
	return collection.GroupBy(s, key)
}
