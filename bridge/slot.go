package bridge

import (
	"context"
	"sync"
)

// Loop is the host's serialized callback queue: a capability to submit
// a zero-argument unit of work for eventual execution on the host's
// single thread, in submission order.
type Loop interface {
	Submit(fn func())
}

// LoopFunc adapts a plain function to the Loop interface.
type LoopFunc func(fn func())

// Submit calls f(fn).
func (f LoopFunc) Submit(fn func()) { f(fn) }

// Slot is a single-assignment result cell shared between the goroutine
// issuing a cross-boundary call and the loop closure that completes it.
//
// A slot is completed at most once. Further completion attempts are
// no-ops: the first writer's value is preserved and no error is raised.
// The zero value is not usable; use NewSlot.
type Slot[T any] struct {
	mu    sync.Mutex
	done  chan struct{}
	value T
	err   error
}

// NewSlot returns an empty, uncompleted slot.
func NewSlot[T any]() *Slot[T] {
	return &Slot[T]{done: make(chan struct{})}
}

// Complete records a success value. It reports whether this call was
// the effective completion; false means the slot was already completed
// and the value was discarded.
func (s *Slot[T]) Complete(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.done:
		return false
	default:
	}
	s.value = v
	close(s.done)
	return true
}

// Fail records a failure. Like Complete, it is idempotent and reports
// whether this call was the effective completion.
func (s *Slot[T]) Fail(err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.done:
		return false
	default:
	}
	s.err = err
	close(s.done)
	return true
}

// Done returns a channel closed when the slot is completed.
func (s *Slot[T]) Done() <-chan struct{} {
	return s.done
}

// Completed reports whether the slot has been completed.
func (s *Slot[T]) Completed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the slot is completed and returns its value or
// error. There is no timeout: a slot whose closure never completes
// blocks forever.
func (s *Slot[T]) Wait() (T, error) {
	<-s.done
	return s.value, s.err
}

// WaitContext blocks until the slot is completed or ctx is done. On
// cancellation it returns ctx.Err(); the slot itself stays pending and
// may still complete later.
func (s *Slot[T]) WaitContext(ctx context.Context) (T, error) {
	select {
	case <-s.done:
		return s.value, s.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
