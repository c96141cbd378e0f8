package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/klwxsrx/tagabukid-property/pkg/log"
	"github.com/klwxsrx/tagabukid-property/pkg/worker"
)

func MustRun(ctx context.Context, logger log.Logger, jobs ...worker.ContextJob) {
	if err := Run(ctx, logger, jobs...); err != nil {
		panic(fmt.Errorf("some of the jobs completed with error: %w", err))
	}
}

// Run starts every job and returns once any of them completes, cancelling the others.
func Run(ctx context.Context, logger log.Logger, jobs ...worker.ContextJob) error {
	errCompleted := errors.New("job completed")

	groupCtx, group := worker.NewGroup(ctx)
	for _, job := range jobs {
		group.Do(func() error {
			err := job(groupCtx)
			if err == nil || errors.Is(err, groupCtx.Err()) {
				return errCompleted
			}

			logger.WithError(err).Error(groupCtx, "running job completed with error")
			return err
		})
	}

	err := group.Wait()
	if errors.Is(err, errCompleted) {
		return nil
	}

	return err
}
