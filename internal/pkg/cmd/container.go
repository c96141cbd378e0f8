package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/klwxsrx/tagabukid-property/internal/pkg/auth"
	commonhttp "github.com/klwxsrx/tagabukid-property/internal/pkg/http"
	"github.com/klwxsrx/tagabukid-property/internal/pkg/view"
	pkgauth "github.com/klwxsrx/tagabukid-property/pkg/auth"
	"github.com/klwxsrx/tagabukid-property/pkg/env"
	"github.com/klwxsrx/tagabukid-property/pkg/http"
	"github.com/klwxsrx/tagabukid-property/pkg/lazy"
	"github.com/klwxsrx/tagabukid-property/pkg/log"
	"github.com/klwxsrx/tagabukid-property/pkg/metric"
	"github.com/klwxsrx/tagabukid-property/pkg/observability"
	"github.com/klwxsrx/tagabukid-property/pkg/sql"
	pkgtime "github.com/klwxsrx/tagabukid-property/pkg/time"
)

type InfrastructureContainer struct {
	HTTPServer        lazy.Loader[http.Server]
	HTTPClientFactory lazy.Loader[HTTPClientFactory]
	DBMigrations      lazy.Loader[SQLMigrations]
	DB                lazy.Loader[sql.Database]
	Renderer          lazy.Loader[view.Renderer]
	Permissions       lazy.Loader[auth.PermissionService]
	Clock             lazy.Loader[pkgtime.Clock]
	Metrics           lazy.Loader[metric.Metrics]
	Logger            lazy.Loader[log.Logger]
}

func NewInfrastructureContainer(ctx context.Context) *InfrastructureContainer {
	metrics := metricsProvider()
	logger := loggerProvider()
	observer := observerProvider(logger)

	db := sqlDatabaseProvider(ctx, logger)

	return &InfrastructureContainer{
		HTTPServer:        httpServerProvider(observer, metrics, logger),
		HTTPClientFactory: httpClientFactoryProvider(observer, metrics, logger),
		DBMigrations:      sqlMigrationsProvider(ctx, db, logger),
		DB:                db,
		Renderer:          rendererProvider(),
		Permissions:       permissionsProvider(),
		Clock:             lazy.Value[pkgtime.Clock](pkgtime.NewClock()),
		Metrics:           metrics,
		Logger:            logger,
	}
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	i.DB.IfLoaded(func(db sql.Database) { db.Close(ctx) })
}

func metricsProvider() lazy.Loader[metric.Metrics] {
	return lazy.New(func() (metric.Metrics, error) {
		return metric.NewStub(), nil
	})
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		logLevelStr, err := env.Parse[string]("LOG_LEVEL")
		if err != nil {
			return log.New(log.LevelInfo), nil
		}

		logLevel, ok := log.ParseLevel(logLevelStr)
		if !ok {
			logLevel = log.LevelInfo
		}

		return log.New(logLevel), nil
	})
}

func observerProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[observability.Observer] {
	return lazy.New(func() (observability.Observer, error) {
		return observability.New(
			observability.WithFieldsLogging(logger.MustLoad(), observability.FieldRequestID),
		), nil
	})
}

func sqlDatabaseProvider(
	ctx context.Context,
	logger lazy.Loader[log.Logger],
) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		sqlConfig := sql.Config{
			DSN: sql.DSN{
				User:     env.Must(env.Parse[string]("SQL_USER")),
				Password: env.Must(env.Parse[string]("SQL_PASSWORD")),
				Address:  env.Must(env.Parse[string]("SQL_ADDRESS")),
				Database: env.Must(env.Parse[string]("SQL_DATABASE")),
			},
			MaxOpenConnections: env.Must(env.ParseWithDefault[int]("SQL_MAX_OPEN_CONNECTIONS", 10)),
			MaxIdleConnections: env.Must(env.ParseWithDefault[int]("SQL_MAX_IDLE_CONNECTIONS", 5)),
		}
		sqlConnTimeout := env.Must(env.ParseOptional[time.Duration]("SQL_CONNECTION_TIMEOUT"))
		if sqlConnTimeout != nil {
			sqlConfig.ConnectionTimeout = *sqlConnTimeout
		}

		db, err := sql.NewDatabase(ctx, sqlConfig, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open sql connection: %w", err))
		}

		return db, nil
	})
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(ctx, db.MustLoad(), logger.MustLoad()), nil
	})
}

func rendererProvider() lazy.Loader[view.Renderer] {
	return lazy.New(func() (view.Renderer, error) {
		renderer, err := view.NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("init view renderer: %w", err)
		}

		return renderer, nil
	})
}

func permissionsProvider() lazy.Loader[auth.PermissionService] {
	return lazy.New(func() (auth.PermissionService, error) {
		return pkgauth.NewPermissionService[auth.Principal](), nil
	})
}

func httpServerProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[http.Server] {
	return lazy.New(func() (http.Server, error) {
		jwtSecret := env.Must(env.Parse[string]("SUPABASE_JWT_SECRET"))

		return http.NewServer(
			env.Must(env.ParseWithDefault[string]("HTTP_ADDRESS", http.DefaultServerAddress)),
			http.WithHealthCheck(nil),
			http.WithObservability(
				observer.MustLoad(),
				http.ObservabilityFieldExtractors{
					observability.FieldRequestID: {
						http.ObservabilityFieldHeaderExtractor(commonhttp.RequestIDHeader),
						http.ObservabilityFieldRandomUUIDExtractor(),
					},
				},
			),
			http.WithMetrics(metrics.MustLoad()),
			http.WithLogging(logger.MustLoad(), log.LevelInfo, log.LevelError),
			http.WithAuth(
				auth.NewSessionProvider([]byte(jwtSecret)),
				commonhttp.SessionCookieTokenProvider,
				commonhttp.BearerTokenProvider,
			),
		), nil
	})
}

func httpClientFactoryProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[HTTPClientFactory] {
	return lazy.New(func() (HTTPClientFactory, error) {
		return NewHTTPClientFactory(
			http.WithRequestObservability(observer.MustLoad(), map[observability.Field]string{
				observability.FieldRequestID: commonhttp.RequestIDHeader,
			}),
			http.WithRequestMetrics(metrics.MustLoad()),
			http.WithRequestLogging(logger.MustLoad(), log.LevelInfo, log.LevelWarn),
		), nil
	})
}
