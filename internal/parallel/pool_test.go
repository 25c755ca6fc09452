package parallel

import (
	"sync/atomic"
	"testing"
)

// TestPoolRunsAllTasks verifies that every submitted task executes
// before Close returns.
func TestPoolRunsAllTasks(t *testing.T) {
	p := New(4)

	var count atomic.Int64
	for i := 0; i < 100; i++ {
		p.Submit(func() {
			count.Add(1)
		})
	}
	p.Close()

	if got := count.Load(); got != 100 {
		t.Errorf("ran %d tasks, want 100", got)
	}
}

// TestPoolDefaultWorkers verifies that a non-positive worker count
// still yields a working pool.
func TestPoolDefaultWorkers(t *testing.T) {
	p := New(0)

	done := false
	p.Submit(func() { done = true })
	p.Close()

	if !done {
		t.Error("task did not run")
	}
}

// TestPoolNilTask verifies nil tasks are ignored.
func TestPoolNilTask(t *testing.T) {
	p := New(2)
	p.Submit(nil)
	p.Close()
}

// TestPoolDoubleClose verifies Close is idempotent.
func TestPoolDoubleClose(t *testing.T) {
	p := New(2)
	p.Close()
	p.Close()
}
