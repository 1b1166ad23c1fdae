// Package debounce coalesces rapid repeated invocations of a validator
// into a single trailing call.
//
// A Debouncer wraps any function of one argument. Calls arriving within
// the configured delay of each other collapse into one underlying
// invocation that uses the arguments of the last call in the burst; every
// caller in the burst receives the same future and therefore the same
// outcome. After the delay elapses with no further calls, the next call
// starts a fresh burst.
//
// The debouncer is an explicit two-state machine, idle and pending, so the
// trailing-call guarantee does not depend on timer interleaving. It is an
// optional layer: the form validator keeps its own staleness guard and
// works correctly without debouncing upstream.
//
// # Usage
//
//	check := debounce.New(func(ctx context.Context, email string) (form.FieldResult, error) {
//	    return v.ValidateField(ctx, "email", email)
//	}, 300*time.Millisecond)
//
//	future := check.Call(ctx, input)  // as the user types
//	res, err := future.Await(ctx)
package debounce
