// Package batch runs independent resolutions concurrently and returns their
// results in input order.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Jobs returns the effective parallelism for n items: jobs, or GOMAXPROCS
// when jobs is not positive, never more than n.
func Jobs(jobs, n int) int {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	return max(1, min(jobs, n))
}

// Map applies fn to every item with at most jobs calls in flight. Results
// are stored at the index of their item; fn reports per-item failures inside
// R, so one item never stops the others. The only error is the context's,
// when it is cancelled before all items have started.
func Map[T, R any](ctx context.Context, jobs int, items []T, fn func(context.Context, T) R) ([]R, error) {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results, ctx.Err()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(Jobs(jobs, len(items)))

	for i, item := range items {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			// indexes are unique per goroutine, no lock needed
			results[i] = fn(gctx, item)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, ctx.Err()
}
