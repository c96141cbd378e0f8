package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/klwxsrx/tagabukid-property/pkg/log"
	"github.com/klwxsrx/tagabukid-property/pkg/sql"
)

type (
	// SQLMigrations runs the migrations of every bounded context that stores data in Postgres.
	// A source is executed once per process, repeated registrations by name are skipped.
	SQLMigrations interface {
		MustRegister(sources ...sql.MigrationSource)
	}

	sqlMigrations struct {
		ctx    context.Context
		db     sql.Database
		logger log.Logger

		mu         sync.Mutex
		registered map[string]struct{}
	}
)

func NewSQLMigrations(
	ctx context.Context,
	db sql.Database,
	logger log.Logger,
) SQLMigrations {
	return &sqlMigrations{
		ctx:        ctx,
		db:         db,
		logger:     logger,
		registered: make(map[string]struct{}),
	}
}

func (s *sqlMigrations) MustRegister(sources ...sql.MigrationSource) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make([]sql.MigrationSource, 0, len(sources))
	names := make([]string, 0, len(sources))
	for _, source := range sources {
		if _, ok := s.registered[source.Name]; ok {
			continue
		}
		s.registered[source.Name] = struct{}{}
		pending = append(pending, source)
		names = append(names, source.Name)
	}
	if len(pending) == 0 {
		return
	}

	err := sql.NewMigrator(s.db, s.logger).Execute(s.ctx, pending...)
	if err != nil {
		panic(fmt.Errorf("execute migrations of %v: %w", names, err))
	}

	s.logger.WithField("sources", names).Info(s.ctx, "sql migrations registered")
}
