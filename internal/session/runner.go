package session

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Drive runs fetches concurrently, applies each result to c and keeps going
// with follow-up fetches until nothing is left in flight. Directory failures
// are recorded in the session state, not returned; Drive only fails when ctx
// is done.
func Drive(ctx context.Context, c *Coordinator, fetches ...Fetch) error {
	var g errgroup.Group

	var run func(f Fetch)
	run = func(f Fetch) {
		g.Go(func() error {
			r := f.Run(ctx)
			_, next := c.Apply(r)
			for _, n := range next {
				run(n)
			}
			return nil
		})
	}

	for _, f := range fetches {
		run(f)
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
