package engine

import (
	"context"

	"github.com/hupe1980/sliceflow/logging"
	"github.com/hupe1980/sliceflow/schedule"
)

// Each runs cb for every element of s on the given scheduler and returns one
// Outcome per element, index-aligned to the input.
//
// The join uses settle-all semantics: it waits for every task to reach a
// terminal state and always produces exactly len(s) outcomes, even when every
// callback fails. An error or panic in one callback is captured in that
// element's Outcome and never affects another element or the call as a whole.
// Callers must inspect the outcomes; no element fault is ever returned as the
// call's error.
//
// The error return covers only join abandonment via ctx; as with Filter,
// cancellation does not stop tasks that are already dispatched. A nil ctx
// defaults to context.Background; a nil sched defaults to schedule.Goroutine.
func Each[T, R any](ctx context.Context, sched schedule.Scheduler, s []T, cb Callback[T, R], optFns ...func(o *Options)) ([]Outcome[R], error) {
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

	opts.Logger.Debug("each fan-out", "tasks", len(s))

	done := fanOut(sched, s, func(element T, index int) (R, error) {
		return cb(element, index, s)
	})

	outcomes := make([]Outcome[R], len(s))
	rejected := 0
	for range s {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case c := <-done:
			if c.err != nil {
				outcomes[c.index] = Outcome[R]{State: Rejected, Err: c.err}
				rejected++
				continue
			}
			outcomes[c.index] = Outcome[R]{State: Fulfilled, Value: c.value}
		}
	}

	opts.Logger.Debug("each join resolved", "fulfilled", len(s)-rejected, "rejected", rejected)

	return outcomes, nil
}
