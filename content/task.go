package content

import (
	"context"
	"sync/atomic"
)

// Task runs one fetch in the background. Cancelling it tears down the
// fetch; a result that arrives after cancellation is discarded instead of
// being delivered.
type Task[T any] struct {
	cancel    context.CancelFunc
	done      chan struct{}
	val       T
	err       error
	discarded atomic.Bool
}

// Start runs fn in its own goroutine with a context derived from ctx.
func Start[T any](ctx context.Context, fn func(context.Context) (T, error)) *Task[T] {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task[T]{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(t.done)
		defer cancel()
		v, err := fn(ctx)
		if ctx.Err() != nil {
			t.discarded.Store(true)
			t.err = ctx.Err()
			return
		}
		t.val, t.err = v, err
	}()
	return t
}

// Wait blocks until the task settles and returns its outcome.
func (t *Task[T]) Wait() (T, error) {
	<-t.done
	return t.val, t.err
}

// Done is closed once the task has settled.
func (t *Task[T]) Done() <-chan struct{} { return t.done }

// Cancel tears the task down. It is safe to call more than once.
func (t *Task[T]) Cancel() { t.cancel() }

// Discarded reports whether the result was dropped because the task was
// cancelled before it settled.
func (t *Task[T]) Discarded() bool { return t.discarded.Load() }
