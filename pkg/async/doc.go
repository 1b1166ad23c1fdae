// Package async provides a minimal future type used to coordinate
// asynchronous validation work.
//
// A Result represents the eventual outcome of a computation that settles
// exactly once, either with a value (Complete) or an error (Fail). Futures
// are created in one of two ways: Run spawns a goroutine around a function
// and settles the future with its return values, while New hands the caller
// an unsettled future to complete later, which is what a timer-driven
// producer such as a debouncer needs.
//
// # Usage
//
//	f := async.Run(ctx, func(ctx context.Context) (string, error) {
//	    return lookup(ctx, id)
//	})
//	v, err := f.Await(ctx)
//
// Await honors context cancellation; a canceled wait returns the context's
// error while the future itself stays pending until its producer settles it.
// AwaitTimeout is a convenience for hosts that want to race a slow producer
// against a deadline without canceling it.
package async
