package tour

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SolveBatch solves every request concurrently, at most parallelism at a time
// (parallelism < 1 means one per request). Each request gets its own session;
// a failing or invalid request never affects the others. Responses keep the
// order of reqs. Cancelling ctx cancels every request still running.
// Hooks passed in extra are shared by all sessions and must be safe for
// concurrent use.
func SolveBatch(ctx context.Context, reqs []Request, parallelism int, extra ...Option) []Response {
	out := make([]Response, len(reqs))
	if len(reqs) == 0 {
		return out
	}

	var g errgroup.Group
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for i := range reqs {
		g.Go(func() error {
			out[i] = Solve(ctx, reqs[i], extra...)
			return nil
		})
	}
	// Workers always return nil: failures travel in each Response.
	_ = g.Wait()

	return out
}
