package worker

import (
	"context"
	"time"

	"github.com/klwxsrx/tagabukid-property/pkg/log"
)

type ContextJob func(context.Context) error

// PeriodicalJob runs job every interval until ctx is done, logging job errors.
func PeriodicalJob(job ContextJob, every time.Duration, logger log.Logger) ContextJob {
	return func(ctx context.Context) error {
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := job(ctx); err != nil {
					logger.WithError(err).Error(ctx, "periodical job completed with error")
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
