package status

import (
	"context"
	"sync"
)

// Task is one in-flight or completed status activation.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}

	mu     sync.RWMutex
	report Report
}

func newTask(target string, cancel context.CancelFunc) *Task {
	return &Task{
		cancel: cancel,
		done:   make(chan struct{}),
		report: Report{
			State:  StateChecking,
			Text:   TextChecking,
			Target: target,
		},
	}
}

// Current returns the latest report: StateChecking until Done is closed,
// the terminal report afterwards.
func (t *Task) Current() Report {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.report
}

// Done is closed once the task reaches a terminal state.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task resolves or ctx ends. Giving up on the wait
// does not cancel the task.
func (t *Task) Wait(ctx context.Context) (Report, error) {
	select {
	case <-t.done:
		return t.Current(), nil
	case <-ctx.Done():
		return t.Current(), ctx.Err()
	}
}

// Cancel aborts an in-flight query. The task then resolves as unavailable.
// Calling Cancel after completion, or more than once, has no effect.
func (t *Task) Cancel() {
	t.cancel()
}

func (t *Task) finish(report Report) {
	t.mu.Lock()
	t.report = report
	t.mu.Unlock()
	close(t.done)
}
