// Package fanout runs a function over a slice with bounded concurrency and
// returns one result per item in input order. It backs the health registry,
// which probes every registered checker on each readiness request.
package fanout

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome for a single item.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for each item using at most limit goroutines and blocks until
// every call returns. Items that have not started when ctx is done record
// ctx.Err() and fn is not called for them. A limit below one is treated as one.
func Run[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(limit, 1))

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Value, results[i].Err = fn(ctx, item)
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// Errors joins the non-nil errors in results, or returns nil.
func Errors[R any](results []Result[R]) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}
