package sql

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/tagabukid-property/internal/account/domain"
	pkgsqlmock "github.com/klwxsrx/tagabukid-property/pkg/sql/mock"
)

func TestProfileRepository_Upsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := pkgsqlmock.NewClient(ctrl)
	db.EXPECT().
		ExecContext(
			gomock.Any(),
			gomock.Any(),
			"user-1", "Juan", "Dela Cruz", "juan_dc", int64(9351234567), "1995-06-12", "", "",
		).
		DoAndReturn(func(_ context.Context, query string, _ ...any) (sql.Result, error) {
			assert.True(t, strings.HasPrefix(query, "INSERT INTO profiles (user_id,first_name,last_name,username,contact,date_of_birth,address,bio) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)"))
			assert.Contains(t, query, "ON CONFLICT (user_id) DO UPDATE SET")
			return nil, nil
		})

	err := NewProfileRepository(db).Upsert(context.Background(), &domain.Profile{
		UserID:      "user-1",
		FirstName:   "Juan",
		LastName:    "Dela Cruz",
		Username:    "juan_dc",
		Contact:     9351234567,
		DateOfBirth: "1995-06-12",
	})
	assert.NoError(t, err)
}

func TestProfileRepository_Upsert_ReturnsStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := pkgsqlmock.NewClient(ctrl)
	db.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &pq.Error{Code: "23505", Message: `duplicate key value violates unique constraint "profiles_user_id_idx"`})

	err := NewProfileRepository(db).Upsert(context.Background(), &domain.Profile{UserID: "user-1"})
	assert.Equal(t, `duplicate key value violates unique constraint "profiles_user_id_idx"`, domain.StorageErrorMessage(err))
}

func TestProfileRepository_FindByUserID_Returns(t *testing.T) {
	tests := []struct {
		name   string
		db     func(ctrl *gomock.Controller) *pkgsqlmock.Client
		expect func(t *testing.T, profile *domain.Profile, err error)
	}{
		{
			name: "profile",
			db: func(ctrl *gomock.Controller) *pkgsqlmock.Client {
				mock := pkgsqlmock.NewClient(ctrl)
				mock.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), "user-1").
					DoAndReturn(func(_ context.Context, dest any, query string, _ ...any) error {
						assert.Contains(t, query, "FROM profiles WHERE user_id = $1")
						*dest.(*sqlxProfile) = sqlxProfile{
							UserID:      "user-1",
							FirstName:   "Juan",
							Contact:     9351234567,
							DateOfBirth: "1995-06-12",
						}
						return nil
					})
				return mock
			},
			expect: func(t *testing.T, profile *domain.Profile, err error) {
				require.NoError(t, err)
				assert.Equal(t, &domain.Profile{
					UserID:      "user-1",
					FirstName:   "Juan",
					Contact:     9351234567,
					DateOfBirth: "1995-06-12",
				}, profile)
			},
		},
		{
			name: "not_found",
			db: func(ctrl *gomock.Controller) *pkgsqlmock.Client {
				mock := pkgsqlmock.NewClient(ctrl)
				mock.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)
				return mock
			},
			expect: func(t *testing.T, _ *domain.Profile, err error) {
				assert.ErrorIs(t, err, domain.ErrProfileNotFound)
			},
		},
		{
			name: "storage_error",
			db: func(ctrl *gomock.Controller) *pkgsqlmock.Client {
				mock := pkgsqlmock.NewClient(ctrl)
				mock.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset by peer"))
				return mock
			},
			expect: func(t *testing.T, _ *domain.Profile, err error) {
				var storageErr *domain.StorageError
				require.ErrorAs(t, err, &storageErr)
				assert.Equal(t, "connection reset by peer", storageErr.Message)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			profile, err := NewProfileRepository(tc.db(ctrl)).FindByUserID(context.Background(), "user-1")
			tc.expect(t, profile, err)
		})
	}
}
