package schedule

import (
	"runtime"
	"sync"

	"github.com/hupe1980/sliceflow/logging"
)

// IdleOptions configures an Idle scheduler.
type IdleOptions struct {
	// Logger receives debug output from the worker. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Idle runs tasks one at a time on a single background worker goroutine,
// yielding the processor after every task. It is the closest analog of a
// host-idle callback queue: tasks never run concurrently with each other,
// and the worker repeatedly steps aside so other goroutines get scheduled
// between tasks.
//
// The queue is unbounded and Schedule never blocks. A task accepted before
// Close is guaranteed to run; Close waits for the queue to drain.
type Idle struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []func()
	closed bool
	done   chan struct{}
	logger logging.Logger
}

// NewIdle creates an Idle scheduler and starts its worker goroutine.
func NewIdle(optFns ...func(o *IdleOptions)) *Idle {
	opts := IdleOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	s := &Idle{
		done:   make(chan struct{}),
		logger: opts.Logger,
	}
	s.cond = sync.NewCond(&s.mu)

	go s.run()

	return s
}

// Schedule appends task to the worker's queue. It never blocks. Tasks
// scheduled after Close are dropped with a warning.
func (s *Idle) Schedule(task func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		s.logger.Warn("idle scheduler: task scheduled after Close, dropping")
		return
	}

	s.queue = append(s.queue, task)
	s.cond.Signal()
}

// Len returns the number of tasks waiting to run. The task currently
// executing on the worker is not counted.
func (s *Idle) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.queue)
}

// Close stops the scheduler. Already-queued tasks still run; Close blocks
// until the queue has drained and the worker has exited.
func (s *Idle) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		<-s.done
		return
	}
	s.closed = true
	s.cond.Broadcast()
	s.mu.Unlock()

	<-s.done
}

// run is the worker loop: pop, execute, yield, repeat.
func (s *Idle) run() {
	for {
		s.mu.Lock()
		for len(s.queue) == 0 && !s.closed {
			s.cond.Wait()
		}
		if len(s.queue) == 0 {
			// Closed and drained.
			s.mu.Unlock()
			close(s.done)
			return
		}
		task := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		task()

		// Step aside between tasks so the worker never monopolizes a
		// processor while a backlog exists.
		runtime.Gosched()
	}
}
