package concurrent

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

type JobFunc[T, G any] func(ctx context.Context, job T) (G, error)

type Result[G any] struct {
	Value G
	Err   error
}

// FanOut runs jobFunc for every job, at most limit at a time (limit <= 0 runs all at once),
// and returns only after every job has settled. results[i] belongs to jobs[i].
// A failing or panicking job never cancels its siblings.
func FanOut[T, G any](ctx context.Context, limit int, jobs []T, jobFunc JobFunc[T, G]) []Result[G] {
	results := make([]Result[G], len(jobs))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, job := range jobs {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					results[i] = Result[G]{Err: fmt.Errorf("job panicked: %v", r)}
				}
			}()
			v, err := jobFunc(ctx, job)
			results[i] = Result[G]{Value: v, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}
