package schedule

import "sync"

// Manual is a test scheduler. Schedule only queues tasks; nothing runs until
// the test drives execution with Step, StepAt, Flush or FlushReverse. This
// makes out-of-order completion reproducible: schedule N tasks, then run them
// in whatever order the scenario needs.
//
// Manual is safe for concurrent use, so a test can flush from one goroutine
// while the code under test schedules and joins on another.
type Manual struct {
	mu    sync.Mutex
	queue []func()
}

// Schedule queues task without running it.
func (m *Manual) Schedule(task func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.queue = append(m.queue, task)
}

// Len returns the number of queued, not-yet-run tasks.
func (m *Manual) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.queue)
}

// Step runs the oldest queued task. It reports whether a task was run.
func (m *Manual) Step() bool {
	return m.StepAt(0)
}

// StepAt runs the queued task at position i (0 = oldest) and removes it from
// the queue. It reports whether a task was run; out-of-range indices are a
// no-op.
func (m *Manual) StepAt(i int) bool {
	m.mu.Lock()
	if i < 0 || i >= len(m.queue) {
		m.mu.Unlock()
		return false
	}
	task := m.queue[i]
	m.queue = append(m.queue[:i], m.queue[i+1:]...)
	m.mu.Unlock()

	task()

	return true
}

// Flush runs all queued tasks oldest-first, including tasks queued by the
// tasks themselves, and returns the number run.
func (m *Manual) Flush() int {
	n := 0
	for m.Step() {
		n++
	}
	return n
}

// FlushReverse runs all queued tasks newest-first and returns the number run.
// Useful for asserting that aggregated results stay index-ordered even when
// completion order is fully inverted.
func (m *Manual) FlushReverse() int {
	n := 0
	for {
		m.mu.Lock()
		last := len(m.queue) - 1
		m.mu.Unlock()
		if !m.StepAt(last) {
			return n
		}
		n++
	}
}
