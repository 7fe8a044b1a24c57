// ABOUTME: Serial dispatch queue that stands in for the UI execution context
// ABOUTME: Dispatch never blocks and Run executes queued functions in submission order

package dispatch

import (
	"context"
	"sync"
)

// Queue is an unbounded FIFO of functions executed by a single goroutine
type Queue struct {
	mu     sync.Mutex
	items  []func()
	signal chan struct{}
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{signal: make(chan struct{}, 1)}
}

// Dispatch appends fn to the queue
func (q *Queue) Dispatch(fn func()) {
	if fn == nil {
		return
	}

	q.mu.Lock()
	q.items = append(q.items, fn)
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}
}

// Run executes queued functions on the calling goroutine until ctx ends.
// Functions still queued when ctx ends are not run.
func (q *Queue) Run(ctx context.Context) error {
	for {
		q.Drain()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.signal:
		}
	}
}

// Drain runs everything queued so far, including functions queued by the
// functions it runs, and returns how many ran
func (q *Queue) Drain() int {
	ran := 0
	for {
		q.mu.Lock()
		if len(q.items) == 0 {
			q.mu.Unlock()
			return ran
		}
		batch := q.items
		q.items = nil
		q.mu.Unlock()

		for _, fn := range batch {
			fn()
			ran++
		}
	}
}

// Len returns the number of functions waiting to run
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
