package worker

import (
	"context"
	"sync"
)

type ErrorJob func() error

type Group interface {
	Do(ErrorJob)
	Wait() error
}

type group struct {
	ctxCancel context.CancelFunc
	pool      Pool

	errOnce   sync.Once
	errResult error
}

// NewGroup returns a fail-fast group: the first job error cancels the returned context.
func NewGroup(ctx context.Context) (context.Context, Group) {
	return WithinGroup(ctx, NewPool(MaxWorkersCountUnlimited))
}

func WithinGroup(ctx context.Context, pool Pool) (context.Context, Group) {
	ctx, cancel := context.WithCancel(ctx)
	return ctx, &group{
		ctxCancel: cancel,
		pool:      pool,
	}
}

func (g *group) Do(job ErrorJob) {
	g.pool.Do(func() {
		err := job()
		if err == nil {
			return
		}

		g.errOnce.Do(func() {
			g.errResult = err
			g.ctxCancel()
		})
	})
}

func (g *group) Wait() error {
	g.pool.Wait()
	g.ctxCancel()
	return g.errResult
}
