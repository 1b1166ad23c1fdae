package async

import "errors"

var (
	// ErrTimeout is returned by AwaitTimeout when the future does not settle in time.
	ErrTimeout = errors.New("async: await timed out")
)
