package cmd_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/tagabukid-property/pkg/cmd"
	"github.com/klwxsrx/tagabukid-property/pkg/log"
)

func TestRun_StopsOtherJobsWhenOneCompletes(t *testing.T) {
	logger := log.New(log.LevelDisabled)

	stopped := make(chan struct{})
	err := cmd.Run(context.Background(), logger,
		func(ctx context.Context) error {
			<-ctx.Done()
			close(stopped)
			return ctx.Err()
		},
		func(context.Context) error {
			return nil
		},
	)

	assert.NoError(t, err)
	<-stopped
}

func TestRun_ReturnsJobError(t *testing.T) {
	errExpected := errors.New("listener failed")

	err := cmd.Run(context.Background(), log.New(log.LevelDisabled),
		func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
		func(context.Context) error {
			return errExpected
		},
	)

	assert.ErrorIs(t, err, errExpected)
}
