package bridge

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSlot_CompleteOnce(t *testing.T) {
	slot := NewSlot[int]()

	if !slot.Complete(1) {
		t.Fatal("first Complete should be effective")
	}
	if slot.Complete(2) {
		t.Error("second Complete should be ignored")
	}
	if slot.Fail(errors.New("late")) {
		t.Error("Fail after Complete should be ignored")
	}

	v, err := slot.Wait()
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if v != 1 {
		t.Errorf("Wait() = %d, want first writer's value 1", v)
	}
}

func TestSlot_FailOnce(t *testing.T) {
	slot := NewSlot[string]()
	want := errors.New("boom")

	if !slot.Fail(want) {
		t.Fatal("first Fail should be effective")
	}
	if slot.Complete("late") {
		t.Error("Complete after Fail should be ignored")
	}

	_, err := slot.Wait()
	if !errors.Is(err, want) {
		t.Errorf("Wait() error = %v, want %v", err, want)
	}
}

func TestSlot_Completed(t *testing.T) {
	slot := NewSlot[int]()
	if slot.Completed() {
		t.Error("new slot should not be completed")
	}
	slot.Complete(0)
	if !slot.Completed() {
		t.Error("slot should be completed after Complete")
	}
}

func TestSlot_WaitBlocksUntilComplete(t *testing.T) {
	slot := NewSlot[int]()

	go func() {
		time.Sleep(10 * time.Millisecond)
		slot.Complete(42)
	}()

	v, err := slot.Wait()
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if v != 42 {
		t.Errorf("Wait() = %d, want 42", v)
	}
}

func TestSlot_WaitContextCancelled(t *testing.T) {
	slot := NewSlot[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := slot.WaitContext(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("WaitContext() error = %v, want context.Canceled", err)
	}

	// Cancellation does not retract the pending completion.
	slot.Complete(7)
	v, err := slot.WaitContext(context.Background())
	if err != nil {
		t.Fatalf("WaitContext() after completion error = %v", err)
	}
	if v != 7 {
		t.Errorf("WaitContext() = %d, want 7", v)
	}
}

func TestSlot_ConcurrentCompletion(t *testing.T) {
	slot := NewSlot[int]()

	effective := make(chan int, 8)
	for i := 0; i < 8; i++ {
		go func(n int) {
			if slot.Complete(n) {
				effective <- n
			}
		}(i)
	}

	winner := <-effective
	select {
	case extra := <-effective:
		t.Fatalf("two effective completions: %d and %d", winner, extra)
	case <-time.After(20 * time.Millisecond):
	}

	v, err := slot.Wait()
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if v != winner {
		t.Errorf("Wait() = %d, want the effective writer's value %d", v, winner)
	}
}
