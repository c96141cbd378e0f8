package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/tagabukid-property/pkg/log"
	"github.com/klwxsrx/tagabukid-property/pkg/worker"
)

func TestPool_LimitsConcurrentWorkers(t *testing.T) {
	pool := worker.NewPool(2)

	var current, maxSeen int32
	for i := 0; i < 10; i++ {
		pool.Do(func() {
			n := atomic.AddInt32(&current, 1)
			for {
				seen := atomic.LoadInt32(&maxSeen)
				if n <= seen || atomic.CompareAndSwapInt32(&maxSeen, seen, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&current, -1)
		})
	}
	pool.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&maxSeen), int32(2))
}

func TestGroup_FirstErrorCancelsContext(t *testing.T) {
	errExpected := errors.New("unexpected")
	ctx, group := worker.NewGroup(context.Background())

	group.Do(func() error {
		<-ctx.Done()
		return nil
	})
	group.Do(func() error {
		return errExpected
	})

	assert.ErrorIs(t, group.Wait(), errExpected)
}

func TestGroup_WaitReturnsNilWhenAllSucceeded(t *testing.T) {
	_, group := worker.NewGroup(context.Background())

	var calls int32
	for i := 0; i < 3; i++ {
		group.Do(func() error {
			atomic.AddInt32(&calls, 1)
			return nil
		})
	}

	require.NoError(t, group.Wait())
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestPeriodicalJob_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var calls int32
	job := worker.PeriodicalJob(func(context.Context) error {
		if atomic.AddInt32(&calls, 1) == 2 {
			cancel()
		}
		return errors.New("logged and ignored")
	}, time.Millisecond, log.New(log.LevelDisabled))

	err := job(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(2))
}
