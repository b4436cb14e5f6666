package bridge

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/dshills/nvimkit/logging"
)

// PanicError carries a panic recovered from a function executed on the
// loop, so the calling side sees it as an ordinary error.
type PanicError struct {
	// Value is the value the function panicked with.
	Value any
	// Stack is the stack trace captured at recovery, on the loop.
	Stack []byte
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic on host loop: %v", e.Value)
}

// submit queues fn on the loop and returns the slot it will complete.
// The closure writes exactly one completion; a panic in fn is recovered
// and recorded as a *PanicError.
func submit[T any](loop Loop, fn func() (T, error)) *Slot[T] {
	slot := NewSlot[T]()
	loop.Submit(func() {
		defer func() {
			if r := recover(); r != nil {
				slot.Fail(&PanicError{Value: r, Stack: debug.Stack()})
			}
		}()
		v, err := fn()
		if err != nil {
			slot.Fail(err)
		} else {
			slot.Complete(v)
		}
	})
	return slot
}

// Call runs fn on the loop and blocks until its result is available.
// The error returned by fn is propagated verbatim.
//
// Call must not be used from the loop goroutine itself; the wait would
// never be serviced and the caller would deadlock.
func Call[T any](loop Loop, fn func() (T, error)) (T, error) {
	return submit(loop, fn).Wait()
}

// CallContext runs fn on the loop and waits for its result until ctx is
// done. Cancellation abandons the wait only: the submitted closure
// still runs to completion on the loop.
func CallContext[T any](ctx context.Context, loop Loop, fn func() (T, error)) (T, error) {
	return submit(loop, fn).WaitContext(ctx)
}

// Run runs fn on the loop and blocks until it finishes. It is Call for
// functions with no result.
func Run(loop Loop, fn func() error) error {
	_, err := Call(loop, func() (struct{}, error) { return struct{}{}, fn() })
	return err
}

// RunContext is CallContext for functions with no result.
func RunContext(ctx context.Context, loop Loop, fn func() error) error {
	_, err := CallContext(ctx, loop, func() (struct{}, error) { return struct{}{}, fn() })
	return err
}

// Go submits fn to the loop fire-and-forget. Errors and panics are
// logged through log and never propagated. A nil log discards them.
func Go(loop Loop, log *logging.Logger, fn func() error) {
	if log == nil {
		log = logging.NullLogger
	}
	loop.Submit(func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic on host loop: %v\n%s", r, debug.Stack())
			}
		}()
		if err := fn(); err != nil {
			log.Error("detached call failed: %v", err)
		}
	})
}
