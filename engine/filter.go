package engine

import (
	"context"
	"fmt"

	"github.com/hupe1980/sliceflow/internal/sentinel"
	"github.com/hupe1980/sliceflow/logging"
	"github.com/hupe1980/sliceflow/schedule"
)

// Filter evaluates pred against every element of s on the given scheduler and
// returns the kept elements in their original relative order.
//
// One task per element is dispatched up front; the join then waits for all of
// them with fail-fast semantics. The first element fault it observes (an error
// returned by pred, or a panic inside it) rejects the whole call. Tasks still
// in flight at that point are not cancelled; they run to completion and their
// outcomes are discarded.
//
// The input slice is never mutated. A nil ctx defaults to context.Background;
// a nil sched defaults to schedule.Goroutine. Cancelling ctx abandons the join
// but, as above, not the dispatched tasks.
func Filter[T any](ctx context.Context, sched schedule.Scheduler, s []T, pred Predicate[T], optFns ...func(o *Options)) ([]T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if sched == nil {
		sched = schedule.Goroutine{}
	}

	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	opts.Logger.Debug("filter fan-out", "tasks", len(s))

	// A kept element resolves to itself, a dropped one to the sentinel, so
	// the join can stay index-ordered without tracking drops separately.
	done := fanOut(sched, s, func(element T, index int) (any, error) {
		keep, err := pred(element, index, s)
		if err != nil {
			return nil, err
		}
		if !keep {
			return sentinel.Value(), nil
		}
		return element, nil
	})

	resolved := make([]any, len(s))
	for range s {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case c := <-done:
			if c.err != nil {
				opts.Logger.Debug("filter join rejected", "index", c.index)
				return nil, fmt.Errorf("filter element %d: %w", c.index, c.err)
			}
			resolved[c.index] = c.value
		}
	}

	kept := make([]T, 0, len(s))
	for i, v := range resolved {
		if sentinel.Is(v) {
			continue
		}
		kept = append(kept, s[i])
	}

	opts.Logger.Debug("filter join resolved", "kept", len(kept), "dropped", len(s)-len(kept))

	return kept, nil
}
