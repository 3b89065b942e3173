package schedule

// Scheduler dispatches a task for execution at an unspecified future point.
//
// Implementations must guarantee that an accepted task eventually runs, but
// make no promise about when, or in what order relative to other scheduled
// tasks. Schedule must not block the caller.
type Scheduler interface {
	Schedule(task func())
}

// Goroutine schedules each task on its own goroutine. It is the default
// scheduler used by the engines when none is supplied.
//
// Task execution order is entirely up to the Go runtime; two tasks scheduled
// back to back may run in either order, or truly in parallel.
type Goroutine struct{}

// Schedule runs task on a new goroutine.
func (Goroutine) Schedule(task func()) { go task() }

// Immediate runs each task synchronously inside Schedule, before Schedule
// returns. Useful for tests and for callers that want deterministic inline
// execution with no concurrency at all.
type Immediate struct{}

// Schedule runs task in the calling goroutine.
func (Immediate) Schedule(task func()) { task() }
