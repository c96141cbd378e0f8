package sql_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/tagabukid-property/pkg/log"
	"github.com/klwxsrx/tagabukid-property/pkg/sql"
	pkgsqlmock "github.com/klwxsrx/tagabukid-property/pkg/sql/mock"
)

var testMigrations = sql.MigrationSource{
	Name: "account",
	Migrations: fstest.MapFS{
		"0001_init.sql":   {Data: []byte("CREATE TABLE profile (id int)")},
		"0002_bio.sql":    {Data: []byte("ALTER TABLE profile ADD COLUMN bio text;\nCREATE INDEX profile_bio ON profile (bio)")},
		"README.md":       {Data: []byte("not a migration")},
		"archive/old.sql": {Data: []byte("DROP TABLE profile")},
	},
}

func expectMigrationPreamble(tx *pkgsqlmock.ClientTx, performed []string) *gomock.Call {
	return tx.EXPECT().SelectContext(gomock.Any(), gomock.Any(), "SELECT id FROM migration").
		After(tx.EXPECT().ExecContext(gomock.Any(), gomock.Any()).Return(nil, nil).
			After(tx.EXPECT().ExecContext(gomock.Any(), "SELECT pg_advisory_xact_lock($1)", gomock.Any()).Return(nil, nil))).
		DoAndReturn(func(_ context.Context, dest any, _ string, _ ...any) error {
			*dest.(*[]string) = performed
			return nil
		})
}

func TestMigrator_Execute_RunsOnlyNewMigrations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := pkgsqlmock.NewClientTx(ctrl)
	db := pkgsqlmock.NewTxClient(ctrl)
	db.EXPECT().Begin(gomock.Any()).Return(tx, nil)

	preamble := expectMigrationPreamble(tx, []string{"account/0001_init.sql"})
	gomock.InOrder(
		preamble,
		tx.EXPECT().ExecContext(gomock.Any(), "ALTER TABLE profile ADD COLUMN bio text").Return(nil, nil),
		tx.EXPECT().ExecContext(gomock.Any(), "CREATE INDEX profile_bio ON profile (bio)").Return(nil, nil),
		tx.EXPECT().ExecContext(gomock.Any(), "INSERT INTO migration (id) VALUES ($1)", "account/0002_bio.sql").Return(nil, nil),
		tx.EXPECT().Commit().Return(nil),
	)

	err := sql.NewMigrator(db, log.New(log.LevelDisabled)).Execute(context.Background(), testMigrations)
	require.NoError(t, err)
}

func TestMigrator_Execute_RollsBackOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := pkgsqlmock.NewClientTx(ctrl)
	db := pkgsqlmock.NewTxClient(ctrl)
	db.EXPECT().Begin(gomock.Any()).Return(tx, nil)

	preamble := expectMigrationPreamble(tx, nil)
	gomock.InOrder(
		preamble,
		tx.EXPECT().ExecContext(gomock.Any(), "CREATE TABLE profile (id int)").Return(nil, errors.New("syntax error")),
		tx.EXPECT().Rollback().Return(nil),
	)

	err := sql.NewMigrator(db, log.New(log.LevelDisabled)).Execute(context.Background(), testMigrations)
	assert.ErrorContains(t, err, "account/0001_init.sql")
}
