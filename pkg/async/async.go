package async

import (
	"context"
	"sync"
	"time"
)

// Result is the future outcome of an asynchronous computation.
// It settles exactly once; later Complete or Fail calls are ignored.
type Result[T any] struct {
	value T
	err   error
	once  sync.Once
	done  chan struct{}
}

// New returns an unsettled future for a producer to settle later.
func New[T any]() *Result[T] {
	return &Result[T]{done: make(chan struct{})}
}

// Complete settles the future with a value.
func (r *Result[T]) Complete(value T) {
	r.once.Do(func() {
		r.value = value
		close(r.done)
	})
}

// Fail settles the future with an error.
func (r *Result[T]) Fail(err error) {
	r.once.Do(func() {
		r.err = err
		close(r.done)
	})
}

// Await blocks until the future settles or ctx is canceled.
// Cancellation abandons the wait, not the underlying computation.
func (r *Result[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-r.done:
		return r.value, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// AwaitTimeout blocks until the future settles or the timeout elapses,
// returning ErrTimeout in the latter case. It lets hosts race a slow
// producer against a deadline without canceling it.
func (r *Result[T]) AwaitTimeout(timeout time.Duration) (T, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-r.done:
		return r.value, r.err
	case <-timer.C:
		var zero T
		return zero, ErrTimeout
	}
}

// Done exposes the settlement channel for select-based callers.
func (r *Result[T]) Done() <-chan struct{} {
	return r.done
}

// Settled reports whether the future has settled, without blocking.
func (r *Result[T]) Settled() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

// Run executes fn on a new goroutine and returns a future that settles
// with its outcome. fn owns its panic recovery; an unrecovered panic
// crashes the process as it would anywhere else.
func Run[T any](ctx context.Context, fn func(context.Context) (T, error)) *Result[T] {
	r := New[T]()

	go func() {
		// Pre-canceled context short-circuits without invoking fn.
		select {
		case <-ctx.Done():
			r.Fail(ctx.Err())
			return
		default:
		}

		v, err := fn(ctx)
		if err != nil {
			r.Fail(err)
			return
		}
		r.Complete(v)
	}()

	return r
}

// All waits for every future to settle and returns the values in order.
// The first error encountered (in argument order) is returned alongside
// the values gathered so far; remaining futures are still awaited.
func All[T any](ctx context.Context, futures ...*Result[T]) ([]T, error) {
	values := make([]T, len(futures))

	var firstErr error
	for i, f := range futures {
		v, err := f.Await(ctx)
		values[i] = v
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return values, firstErr
}
