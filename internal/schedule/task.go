// Package schedule runs a function once after a delay, with a handle that can
// cancel it. It replaces fire-and-forget timers for the app's simulated
// "processing" steps: a caller that starts a new step can cancel the old one
// and know for certain the old one will never run.
package schedule

import (
	"sync/atomic"
	"time"
)

// State is where a Task is in its lifecycle.
type State int32

const (
	StatePending   State = iota // Waiting for the delay to elapse
	StateRunning                // The function is executing
	StateFired                  // The function ran to completion
	StateCancelled              // Cancelled before it ran; the function never runs
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateRunning:
		return "running"
	case StateFired:
		return "fired"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Task is a handle on one scheduled call.
type Task struct {
	state atomic.Int32
	timer *time.Timer
	done  chan struct{}
}

// After schedules fn to run once, d from now, on its own goroutine.
func After(d time.Duration, fn func()) *Task {
	t := &Task{done: make(chan struct{})}
	t.timer = time.AfterFunc(d, func() {
		// Only one of fire and Cancel can win the transition out of pending.
		if !t.state.CompareAndSwap(int32(StatePending), int32(StateRunning)) {
			return
		}
		defer close(t.done)
		defer t.state.Store(int32(StateFired))
		fn()
	})
	return t
}

// Cancel stops the task if it has not started. It reports whether this call
// cancelled it; false means it already ran, is running, or was cancelled before.
func (t *Task) Cancel() bool {
	if !t.state.CompareAndSwap(int32(StatePending), int32(StateCancelled)) {
		return false
	}
	t.timer.Stop()
	close(t.done)
	return true
}

// Done is closed once the task has fired or been cancelled.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// State reports the task's current state.
func (t *Task) State() State {
	return State(t.state.Load())
}
