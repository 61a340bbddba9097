package event

import (
	"context"
	"sync"
)

// Queue is the unbounded FIFO every capture component appends to and the
// single forwarding loop drains. Put never blocks; Get blocks until an
// event arrives, the queue is closed, or ctx is done.
type Queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	events []Event
	closed bool
}

// NewQueue returns an empty open queue.
func NewQueue() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Put appends ev. Events put after Close are dropped.
func (q *Queue) Put(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.events = append(q.events, ev)
	q.cond.Signal()
}

// Get removes and returns the oldest event. It returns false when the queue
// has been closed and drained, or when ctx is cancelled first.
func (q *Queue) Get(ctx context.Context) (Event, bool) {
	// Wake the cond waiter when the context ends.
	stop := context.AfterFunc(ctx, func() {
		q.mu.Lock()
		q.cond.Broadcast()
		q.mu.Unlock()
	})
	defer stop()

	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.events) == 0 {
		if q.closed || ctx.Err() != nil {
			return nil, false
		}
		q.cond.Wait()
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, true
}

// Len reports how many events are waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Close marks the queue closed. Pending events remain retrievable.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.cond.Broadcast()
	q.mu.Unlock()
}
