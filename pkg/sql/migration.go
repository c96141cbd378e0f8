package sql

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/klwxsrx/tagabukid-property/pkg/log"
)

const (
	migrationLock  = "perform_migration_lock"
	querySeparator = ";\n"

	migrationTableDDL = `
		CREATE TABLE IF NOT EXISTS migration (
			id text PRIMARY KEY,
			executed_at timestamptz NOT NULL DEFAULT now()
		)
	`
)

// MigrationSource is a named directory of sql files executed in lexical order.
type MigrationSource struct {
	Name       string
	Migrations fs.ReadDirFS
}

type Migrator struct {
	db     TxClient
	logger log.Logger
}

func NewMigrator(db TxClient, logger log.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
	}
}

func (m *Migrator) Execute(ctx context.Context, sources ...MigrationSource) (err error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("start migration tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	err = withTransactionLevelLock(ctx, migrationLock, tx)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, migrationTableDDL)
	if err != nil {
		return fmt.Errorf("create migration table: %w", err)
	}

	performedIDs, err := getPerformedMigrationIDs(ctx, tx)
	if err != nil {
		return fmt.Errorf("get performed migrations: %w", err)
	}

	executedIDs := make([]string, 0)
	for _, source := range sources {
		var ids []string
		ids, err = m.executeSource(ctx, tx, source, performedIDs)
		if err != nil {
			return err
		}
		executedIDs = append(executedIDs, ids...)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit migration tx: %w", err)
	}

	for _, id := range executedIDs {
		m.logger.WithField("migrationID", id).Info(ctx, "migration executed successfully")
	}

	return nil
}

func (m *Migrator) executeSource(
	ctx context.Context,
	tx ClientTx,
	source MigrationSource,
	performedIDs map[string]struct{},
) ([]string, error) {
	entries, err := source.Migrations.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("read migrations of %s: %w", source.Name, err)
	}

	executedIDs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		migrationID := fmt.Sprintf("%s/%s", source.Name, entry.Name())
		if _, ok := performedIDs[migrationID]; ok {
			continue
		}

		content, err := fs.ReadFile(source.Migrations, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", migrationID, err)
		}

		err = executeMigration(ctx, tx, migrationID, string(content))
		if err != nil {
			return nil, fmt.Errorf("migration %s failed: %w", migrationID, err)
		}

		executedIDs = append(executedIDs, migrationID)
	}

	return executedIDs, nil
}

func executeMigration(ctx context.Context, tx ClientTx, migrationID, migrationSQL string) error {
	if strings.TrimSpace(migrationSQL) == "" {
		return errors.New("empty migration")
	}

	for _, query := range strings.Split(migrationSQL, querySeparator) {
		if strings.TrimSpace(query) == "" {
			continue
		}

		_, err := tx.ExecContext(ctx, query)
		if err != nil {
			return err
		}
	}

	query, args, err := sq.Insert("migration").
		Columns("id").
		Values(migrationID).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

func getPerformedMigrationIDs(ctx context.Context, client Client) (map[string]struct{}, error) {
	query, args, err := sq.Select("id").From("migration").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var ids []string
	err = client.SelectContext(ctx, &ids, query, args...)
	if err != nil {
		return nil, err
	}

	result := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		result[id] = struct{}{}
	}

	return result, nil
}
