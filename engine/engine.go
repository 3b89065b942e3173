package engine

import (
	"errors"
	"fmt"

	"github.com/hupe1980/sliceflow/logging"
	"github.com/hupe1980/sliceflow/schedule"
)

// ErrElementPanic wraps the recovered value when an element function panics.
// The panic is captured inside the task so it settles like any other element
// fault instead of tearing down the scheduler's goroutine.
var ErrElementPanic = errors.New("element function panicked")

// Predicate decides whether an element is kept by Filter. It receives the
// element, its index, and the full input slice, which must be treated as
// read-only.
type Predicate[T any] func(element T, index int, s []T) (bool, error)

// Callback is the per-element function run by Each. Its return value is
// captured in the element's Outcome; its error (or panic) is recorded there
// too, never propagated.
type Callback[T, R any] func(element T, index int, s []T) (R, error)

// Options configures a single engine call.
type Options struct {
	// Logger receives debug output for fan-out and join. Defaults to NoOpLogger.
	Logger logging.Logger
}

// WithLogger sets the logger used for this call.
func WithLogger(logger logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = logger }
}

// completion carries one task's terminal state back to the join.
type completion[V any] struct {
	index int
	value V
	err   error
}

// fanOut dispatches one task per element of s onto sched and returns the
// channel the tasks report on. The channel is buffered to len(s) so tasks can
// always deliver their completion, even when the join has already returned.
func fanOut[T, V any](sched schedule.Scheduler, s []T, run func(element T, index int) (V, error)) <-chan completion[V] {
	done := make(chan completion[V], len(s))
	for i, element := range s {
		i, element := i, element
		sched.Schedule(func() {
			done <- settle(element, i, run)
		})
	}
	return done
}

// settle runs one element function, converting a panic into an element fault.
func settle[T, V any](element T, index int, run func(element T, index int) (V, error)) (c completion[V]) {
	defer func() {
		if r := recover(); r != nil {
			c = completion[V]{index: index, err: fmt.Errorf("%w: %v", ErrElementPanic, r)}
		}
	}()

	value, err := run(element, index)
	return completion[V]{index: index, value: value, err: err}
}
