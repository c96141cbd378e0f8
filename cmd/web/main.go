package main

import (
	"context"
	"fmt"
	"time"

	"github.com/klwxsrx/tagabukid-property/internal/account"
	"github.com/klwxsrx/tagabukid-property/internal/dashboard"
	commoncmd "github.com/klwxsrx/tagabukid-property/internal/pkg/cmd"
	"github.com/klwxsrx/tagabukid-property/internal/site"
	pkgcmd "github.com/klwxsrx/tagabukid-property/pkg/cmd"
	pkgenv "github.com/klwxsrx/tagabukid-property/pkg/env"
	pkgworker "github.com/klwxsrx/tagabukid-property/pkg/worker"
)

const formStateEvictionInterval = time.Minute

func main() {
	ctx := context.Background()
	if err := pkgenv.LoadDotEnv(); err != nil {
		panic(fmt.Errorf("load environment: %w", err))
	}

	infra := commoncmd.NewInfrastructureContainer(ctx)
	logger := infra.Logger.MustLoad()
	defer pkgcmd.HandleAppPanic(ctx, logger)
	defer infra.Close(ctx)

	logger.Info(ctx, "app is starting")

	accountContainer := account.NewDependencyContainer(
		infra.DB,
		infra.DBMigrations,
		infra.HTTPClientFactory,
		infra.Renderer,
		infra.Permissions,
		infra.Clock,
		infra.Logger,
	)
	dashboardContainer := dashboard.NewDependencyContainer(infra.Renderer, infra.Permissions)
	siteContainer := site.NewDependencyContainer(infra.Renderer)

	httpServer := infra.HTTPServer.MustLoad()
	siteContainer.MustRegisterHTTPHandlers(httpServer)
	accountContainer.MustRegisterHTTPHandlers(httpServer)
	dashboardContainer.MustRegisterHTTPHandlers(httpServer)

	logger.Info(ctx, "app is ready")
	pkgcmd.MustRun(
		ctx,
		logger,
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
		pkgworker.PeriodicalJob(
			accountContainer.FormRegistry.MustLoad().EvictIdle,
			formStateEvictionInterval,
			logger,
		),
	)
	logger.Info(ctx, "app is stopped")
}
