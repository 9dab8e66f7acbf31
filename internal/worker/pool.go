// Package worker runs independent tasks on a fixed number of goroutines.
package worker

import (
	"context"

	"github.com/go-faster/errors"
	"golang.org/x/sync/errgroup"
)

// Pool is a fixed-size set of workers pulling from a shared queue.
type Pool struct {
	Size int
}

func New(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{Size: size}
}

// Result is what a worker reports for one item. Err is set only when the
// task could not produce a value: it panicked, or ctx was done before it
// started.
type Result[R any] struct {
	Index int
	Value R
	Err   error
}

// Run applies fn to every item using at most p.Size concurrent calls and
// returns once all workers have exited. There is exactly one Result per
// item, in completion order.
func Run[T, R any](ctx context.Context, p *Pool, items []T, fn func(context.Context, T) R) []Result[R] {
	size := p.Size
	if size < 1 {
		size = 1
	}
	if size > len(items) {
		size = len(items)
	}

	queue := make(chan int, len(items))
	for i := range items {
		queue <- i
	}
	close(queue)

	done := make(chan Result[R], len(items))
	var g errgroup.Group
	for w := 0; w < size; w++ {
		g.Go(func() error {
			for i := range queue {
				done <- runOne(ctx, i, items[i], fn)
			}
			return nil
		})
	}
	_ = g.Wait()
	close(done)

	out := make([]Result[R], 0, len(items))
	for r := range done {
		out = append(out, r)
	}
	return out
}

func runOne[T, R any](ctx context.Context, i int, item T, fn func(context.Context, T) R) (res Result[R]) {
	res.Index = i
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	defer func() {
		if p := recover(); p != nil {
			res.Err = errors.Errorf("task %d panicked: %v", i, p)
		}
	}()
	res.Value = fn(ctx, item)
	return res
}
