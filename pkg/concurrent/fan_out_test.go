package concurrent

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFanOut(t *testing.T) {
	t.Run("results keep job order and failures stay isolated", func(t *testing.T) {
		jobs := []int{1, 2, 3, 4, 5}
		results := FanOut(context.Background(), 0, jobs, func(ctx context.Context, job int) (int, error) {
			if job == 3 {
				return 0, errors.New("boom")
			}
			return job * 10, nil
		})

		require.Len(t, results, len(jobs))
		for i, job := range jobs {
			if job == 3 {
				assert.EqualError(t, results[i].Err, "boom")
				continue
			}
			assert.NoError(t, results[i].Err)
			assert.Equal(t, job*10, results[i].Value)
		}
	})

	t.Run("panic becomes an error", func(t *testing.T) {
		results := FanOut(context.Background(), 0, []string{"a", "b"}, func(ctx context.Context, job string) (string, error) {
			if job == "a" {
				panic("bad job")
			}
			return job, nil
		})

		assert.Error(t, results[0].Err)
		assert.Equal(t, "b", results[1].Value)
	})

	t.Run("limit bounds jobs in flight", func(t *testing.T) {
		var inFlight, maxInFlight int32
		jobs := make([]int, 12)

		FanOut(context.Background(), 3, jobs, func(ctx context.Context, job int) (struct{}, error) {
			n := atomic.AddInt32(&inFlight, 1)
			for {
				old := atomic.LoadInt32(&maxInFlight)
				if n <= old || atomic.CompareAndSwapInt32(&maxInFlight, old, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&inFlight, -1)
			return struct{}{}, nil
		})

		assert.LessOrEqual(t, atomic.LoadInt32(&maxInFlight), int32(3))
	})

	t.Run("no jobs", func(t *testing.T) {
		results := FanOut(context.Background(), 0, []int{}, func(ctx context.Context, job int) (int, error) {
			return job, nil
		})
		assert.Empty(t, results)
	})
}
