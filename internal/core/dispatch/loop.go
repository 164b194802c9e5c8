// Package dispatch serializes device callbacks onto a single goroutine.
package dispatch

import (
	"context"
	"errors"
	"sync"
)

// ErrLoopClosed is returned by Run when the loop was already closed.
var ErrLoopClosed = errors.New("dispatch loop closed")

// Dispatcher runs handlers one at a time, in submission order.
type Dispatcher interface {
	Dispatch(fn func())
}

// Inline runs every handler immediately on the calling goroutine.
// Callers must not invoke it from more than one goroutine.
type Inline struct{}

// Dispatch runs fn.
func (Inline) Dispatch(fn func()) {
	fn()
}

// Loop is a mailbox drained by a single goroutine.
type Loop struct {
	queue chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoop creates a loop with the given mailbox capacity.
func NewLoop(buffer int) *Loop {
	if buffer <= 0 {
		buffer = 1
	}
	return &Loop{
		queue: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
}

// Dispatch enqueues fn. It blocks while the mailbox is full and drops fn
// once the loop has stopped.
func (loop *Loop) Dispatch(fn func()) {
	select {
	case <-loop.done:
		return
	default:
	}
	select {
	case loop.queue <- fn:
	case <-loop.done:
	}
}

// Run drains the mailbox until ctx is cancelled. Each handler runs to
// completion before the next one starts.
func (loop *Loop) Run(ctx context.Context) error {
	select {
	case <-loop.done:
		return ErrLoopClosed
	default:
	}
	defer loop.close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-loop.queue:
			fn()
		}
	}
}

func (loop *Loop) close() {
	loop.once.Do(func() {
		close(loop.done)
	})
}
