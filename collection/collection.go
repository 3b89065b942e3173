package collection

import (
	"context"

	"github.com/hupe1980/sliceflow/engine"
	"github.com/hupe1980/sliceflow/logging"
	"github.com/hupe1980/sliceflow/schedule"
)

// Options configures a Collection.
type Options struct {
	// Scheduler runs the async operations' element tasks. Defaults to
	// schedule.Goroutine.
	Scheduler schedule.Scheduler
	// Logger receives debug output from the async engines. Defaults to
	// NoOpLogger.
	Logger logging.Logger
}

// Collection wraps an ordered slice of elements together with the scheduler
// its async operations dispatch on. The wrapped slice is treated as read-only;
// no operation mutates it.
type Collection[T any] struct {
	items  []T
	sched  schedule.Scheduler
	logger logging.Logger
}

// New creates a Collection over items with optional overrides.
func New[T any](items []T, optFns ...func(o *Options)) *Collection[T] {
	opts := Options{
		Scheduler: schedule.Goroutine{},
		Logger:    logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Collection[T]{items: items, sched: opts.Scheduler, logger: opts.Logger}
}

// Items returns a copy of the wrapped elements as a plain slice.
func (c *Collection[T]) Items() []T {
	return append([]T(nil), c.items...)
}

// Len returns the number of elements.
func (c *Collection[T]) Len() int { return len(c.items) }

// IsEmpty reports whether the collection contains no elements.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// Amount returns the number of elements matching pred. Single synchronous
// pass, no scheduling involved.
func (c *Collection[T]) Amount(pred func(element T) bool) int {
	return Amount(c.items, pred)
}

// ReduceKeys builds a key-to-element mapping using key to extract each
// element's key. When two elements share a key the later one wins.
func (c *Collection[T]) ReduceKeys(key func(element T) string) map[string]T {
	return ReduceKeys(c.items, key)
}

// Group partitions the elements into key-to-elements groups, preserving each
// group's insertion order.
func (c *Collection[T]) Group(key func(element T) string) map[string][]T {
	return GroupBy(c.items, key)
}

// AsyncFilter runs pred against every element on the collection's scheduler
// and resolves to the kept elements in original order. Fail-fast: the first
// element fault observed rejects the whole call. See engine.Filter.
func (c *Collection[T]) AsyncFilter(ctx context.Context, pred engine.Predicate[T]) ([]T, error) {
	return engine.Filter(ctx, c.sched, c.items, pred, engine.WithLogger(c.logger))
}

// AsyncEach runs cb for every element on the collection's scheduler and
// resolves to one Outcome per element, index-aligned to the input. Settle-all:
// element faults are captured per element and never fail the call. See
// engine.Each.
//
// The method form fixes the callback's result type to any; use engine.Each
// directly for a typed result.
func (c *Collection[T]) AsyncEach(ctx context.Context, cb engine.Callback[T, any]) ([]engine.Outcome[any], error) {
	return engine.Each(ctx, c.sched, c.items, cb, engine.WithLogger(c.logger))
}

// Amount returns the number of elements of s matching pred.
func Amount[T any](s []T, pred func(element T) bool) int {
	n := 0
	for _, element := range s {
		if pred(element) {
			n++
		}
	}
	return n
}

// ReduceKeys builds a key-to-element mapping from s. Later elements overwrite
// earlier ones sharing the same key (last write wins).
func ReduceKeys[T any, K comparable](s []T, key func(element T) K) map[K]T {
	out := make(map[K]T, len(s))
	for _, element := range s {
		out[key(element)] = element
	}
	return out
}

// GroupBy partitions s into groups keyed by key. Within each group, elements
// appear in their original input order.
func GroupBy[T any, K comparable](s []T, key func(element T) K) map[K][]T {
	out := make(map[K][]T)
	for _, element := range s {
		k := key(element)
		out[k] = append(out[k], element)
	}
	return out
}
