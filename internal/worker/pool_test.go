package worker

import (
	"context"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRun_OneResultPerItem(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	res := Run(context.Background(), New(3), items, func(_ context.Context, n int) int { return n * n })

	require.Len(t, res, len(items))
	var idx []int
	for _, r := range res {
		require.NoError(t, r.Err)
		require.Equal(t, items[r.Index]*items[r.Index], r.Value)
		idx = append(idx, r.Index)
	}
	sort.Ints(idx)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, idx)
}

func TestRun_BoundsConcurrency(t *testing.T) {
	const size, n = 3, 20
	var inFlight, peak atomic.Int32

	items := make([]int, n)
	res := Run(context.Background(), New(size), items, func(context.Context, int) bool {
		cur := inFlight.Add(1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return true
	})

	require.Len(t, res, n)
	require.LessOrEqual(t, peak.Load(), int32(size))
	require.Greater(t, peak.Load(), int32(1), "work should overlap")
}

func TestRun_CompletionOrder(t *testing.T) {
	delays := []time.Duration{60 * time.Millisecond, 0, 30 * time.Millisecond}
	res := Run(context.Background(), New(len(delays)), delays, func(_ context.Context, d time.Duration) time.Duration {
		time.Sleep(d)
		return d
	})

	require.Len(t, res, 3)
	require.Equal(t, 1, res[0].Index)
	require.Equal(t, 0, res[2].Index)
}

func TestRun_PanicBecomesError(t *testing.T) {
	items := []string{"ok", "boom", "ok"}
	res := Run(context.Background(), New(2), items, func(_ context.Context, s string) string {
		if s == "boom" {
			panic("kaboom")
		}
		return s
	})

	require.Len(t, res, 3)
	var failed int
	for _, r := range res {
		if r.Err != nil {
			failed++
			require.Equal(t, 1, r.Index)
			require.Contains(t, r.Err.Error(), "kaboom")
			continue
		}
		require.Equal(t, "ok", r.Value)
	}
	require.Equal(t, 1, failed)
}

func TestRun_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	res := Run(ctx, New(2), []int{1, 2, 3}, func(context.Context, int) int {
		calls.Add(1)
		return 0
	})

	require.Len(t, res, 3)
	require.EqualValues(t, 0, calls.Load())
	for _, r := range res {
		require.ErrorIs(t, r.Err, context.Canceled)
	}
}

func TestRun_Empty(t *testing.T) {
	res := Run(context.Background(), New(5), []int(nil), func(context.Context, int) int { return 0 })
	require.Empty(t, res)
}

func TestNew_ClampsSize(t *testing.T) {
	require.Equal(t, 1, New(0).Size)
	require.Equal(t, 1, New(-3).Size)
	require.Equal(t, 5, New(5).Size)
}
