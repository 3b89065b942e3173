// Package schedule provides the cooperative scheduling primitive the sliceflow
// engines dispatch their per-element tasks on. It defines the core abstraction:
//
//   - Scheduler (a single Schedule method: run this function at some future point)
//
// and four implementations:
//
//   - Goroutine: runs each task on its own goroutine (the default)
//   - Idle: runs tasks one at a time on a single background worker, yielding
//     the processor between tasks so latency-sensitive work is not starved
//   - Immediate: runs tasks synchronously inside Schedule
//   - Manual: queues tasks for explicit, test-controlled execution
//
// The Scheduler contract is deliberately bare. Schedule never blocks and never
// sheds load; once accepted, a task eventually runs. No ordering is guaranteed
// between two Schedule calls, there are no priorities, no deadlines, and no way
// to cancel a task after it has been scheduled. Backpressure is a caller
// responsibility: scheduling a very large number of tasks, or tasks that run
// long, will crowd out everything else sharing the scheduler.
package schedule
