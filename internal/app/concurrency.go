package app

import (
	"context"
	"sync"
)

// PartialResult holds a result or an error for partial success patterns.
type PartialResult[T any] struct {
	Value T
	Err   error
}

// OK reports whether the call succeeded.
func (r PartialResult[T]) OK() bool {
	return r.Err == nil
}

// Parallel2Partial runs two differently typed functions concurrently and
// returns both outcomes. Neither failure affects the other call.
//
// Example:
//
//	todos, quote := Parallel2Partial(ctx, api.ListTodos, api.RandomQuote)
func Parallel2Partial[T1, T2 any](
	ctx context.Context,
	fn1 func(context.Context) (T1, error),
	fn2 func(context.Context) (T2, error),
) (PartialResult[T1], PartialResult[T2]) {
	var (
		r1 PartialResult[T1]
		r2 PartialResult[T2]
		wg sync.WaitGroup
	)

	wg.Go(func() {
		r1.Value, r1.Err = fn1(ctx)
	})

	wg.Go(func() {
		r2.Value, r2.Err = fn2(ctx)
	})

	wg.Wait()

	return r1, r2
}
