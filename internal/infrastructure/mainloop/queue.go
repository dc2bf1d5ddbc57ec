// Package mainloop provides the single-threaded task queue that stands in
// for the host toolkit's event loop.
package mainloop

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Queue is a FIFO of UI tasks. Post may be called from any goroutine;
// tasks run one at a time on whichever goroutine drives the queue via
// Run or RunPending.
type Queue struct {
	mu     sync.Mutex
	tasks  []func()
	wake   chan struct{}
	closed bool
	logger zerolog.Logger
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		wake:   make(chan struct{}, 1),
		logger: zerolog.Nop(),
	}
}

// SetLogger sets the logger used to report recovered task panics.
func (q *Queue) SetLogger(logger zerolog.Logger) {
	q.mu.Lock()
	q.logger = logger.With().Str("component", "mainloop").Logger()
	q.mu.Unlock()
}

// Post appends fn. Tasks posted after Close are dropped.
func (q *Queue) Post(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.tasks = append(q.tasks, fn)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Len returns the number of queued tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// RunPending runs tasks until the queue is empty, including tasks posted
// by the tasks it runs. It returns the number of tasks executed.
func (q *Queue) RunPending() int {
	n := 0
	for {
		fn, ok := q.pop()
		if !ok {
			return n
		}
		q.exec(fn)
		n++
	}
}

// Run drives the queue until ctx is done or the queue is closed.
func (q *Queue) Run(ctx context.Context) error {
	for {
		q.RunPending()

		q.mu.Lock()
		closed := q.closed
		q.mu.Unlock()
		if closed {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.wake:
		}
	}
}

// Close stops accepting tasks and discards anything still queued.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.tasks = nil
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *Queue) pop() (func(), bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.tasks) == 0 {
		return nil, false
	}
	fn := q.tasks[0]
	q.tasks[0] = nil
	q.tasks = q.tasks[1:]
	return fn, true
}

func (q *Queue) exec(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			q.mu.Lock()
			logger := q.logger
			q.mu.Unlock()
			logger.Error().Interface("panic", r).Msg("ui task panicked")
		}
	}()
	fn()
}
