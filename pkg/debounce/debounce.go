package debounce

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tripfolio/formkit/pkg/async"
)

// Func is any single-argument validator the debouncer can wrap.
type Func[T, R any] func(ctx context.Context, arg T) (R, error)

// Debouncer collapses bursts of Call invocations into one trailing
// execution of the wrapped function. Zero value is not usable; construct
// with New.
type Debouncer[T, R any] struct {
	fn    Func[T, R]
	delay time.Duration

	mu sync.Mutex
	// pending burst state; all nil/zero while idle.
	timer     *time.Timer
	future    *async.Result[R]
	latestCtx context.Context
	latestArg T
}

// New wraps fn with trailing-debounce semantics. A non-positive delay
// still defers execution to the timer goroutine but coalesces only calls
// arriving in the same instant.
func New[T, R any](fn Func[T, R], delay time.Duration) *Debouncer[T, R] {
	if fn == nil {
		panic(fmt.Errorf("debounce: nil function"))
	}
	return &Debouncer[T, R]{fn: fn, delay: delay}
}

// Call records the newest argument and returns the burst's shared future.
// Every call within one burst receives the same future, which settles with
// the outcome of the single underlying invocation made from the last
// call's arguments. The ctx of the last call is the one passed through.
func (d *Debouncer[T, R]) Call(ctx context.Context, arg T) *async.Result[R] {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.latestCtx = ctx
	d.latestArg = arg

	if d.future == nil {
		// idle -> pending
		d.future = async.New[R]()
		d.timer = time.AfterFunc(d.delay, d.fire)
	} else {
		d.timer.Reset(d.delay)
	}

	return d.future
}

// Pending reports whether a burst is waiting to fire.
func (d *Debouncer[T, R]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.future != nil
}

// fire runs on the timer goroutine when the burst's delay elapses.
func (d *Debouncer[T, R]) fire() {
	d.mu.Lock()
	future := d.future
	ctx := d.latestCtx
	arg := d.latestArg

	// pending -> idle; the next Call starts a new burst while the wrapped
	// function runs for this one.
	d.timer = nil
	d.future = nil
	d.latestCtx = nil
	var zero T
	d.latestArg = zero
	d.mu.Unlock()

	if future == nil {
		return
	}

	v, err := d.fn(ctx, arg)
	if err != nil {
		future.Fail(err)
		return
	}
	future.Complete(v)
}
