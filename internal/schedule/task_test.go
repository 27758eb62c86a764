package schedule

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTaskFires(t *testing.T) {
	t.Parallel()

	var ran atomic.Bool
	task := After(time.Millisecond, func() { ran.Store(true) })

	select {
	case <-task.Done():
	case <-time.After(time.Second):
		t.Fatal("task never fired")
	}
	require.True(t, ran.Load())
	require.Equal(t, StateFired, task.State())
	require.False(t, task.Cancel(), "cancel after firing must report false")
}

func TestCancelledTaskNeverRuns(t *testing.T) {
	t.Parallel()

	var ran atomic.Bool
	task := After(time.Hour, func() { ran.Store(true) })

	require.True(t, task.Cancel())
	require.False(t, task.Cancel(), "second cancel is a no-op")
	require.Equal(t, StateCancelled, task.State())

	select {
	case <-task.Done():
	default:
		t.Fatal("done channel should be closed after cancel")
	}
	require.False(t, ran.Load())
}

func TestStateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state State
		want  string
	}{
		{StatePending, "pending"},
		{StateRunning, "running"},
		{StateFired, "fired"},
		{StateCancelled, "cancelled"},
		{State(42), "unknown"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.state.String())
	}
}
