package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/klwxsrx/tagabukid-property/internal/account/domain"
	pkgsql "github.com/klwxsrx/tagabukid-property/pkg/sql"
)

const profilesTable = "profiles"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type profileRepository struct {
	db pkgsql.Client
}

func NewProfileRepository(db pkgsql.Client) domain.ProfileRepository {
	return profileRepository{db: db}
}

func (r profileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	query, args, err := psql.
		Insert(profilesTable).
		Columns("user_id", "first_name", "last_name", "username", "contact", "date_of_birth", "address", "bio").
		Values(
			string(profile.UserID),
			profile.FirstName,
			profile.LastName,
			profile.Username,
			profile.Contact,
			profile.DateOfBirth,
			profile.Address,
			profile.Bio,
		).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			username = excluded.username,
			contact = excluded.contact,
			date_of_birth = excluded.date_of_birth,
			address = excluded.address,
			bio = excluded.bio,
			updated_at = now()
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return toStorageError(err)
	}

	return nil
}

func (r profileRepository) FindByUserID(ctx context.Context, userID domain.UserID) (*domain.Profile, error) {
	query, args, err := psql.
		Select(
			"user_id",
			"first_name",
			"last_name",
			"username",
			"contact",
			"to_char(date_of_birth, 'YYYY-MM-DD') AS date_of_birth",
			"address",
			"bio",
		).
		From(profilesTable).
		Where(sq.Eq{"user_id": string(userID)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sqlxProfile
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, toStorageError(err)
	}

	return row.toDomain(), nil
}

func toStorageError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return &domain.StorageError{Message: pqErr.Message}
	}

	return &domain.StorageError{Message: err.Error()}
}

type sqlxProfile struct {
	UserID      string `db:"user_id"`
	FirstName   string `db:"first_name"`
	LastName    string `db:"last_name"`
	Username    string `db:"username"`
	Contact     int64  `db:"contact"`
	DateOfBirth string `db:"date_of_birth"`
	Address     string `db:"address"`
	Bio         string `db:"bio"`
}

func (p sqlxProfile) toDomain() *domain.Profile {
	return &domain.Profile{
		UserID:      domain.UserID(p.UserID),
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Username:    p.Username,
		Contact:     p.Contact,
		DateOfBirth: p.DateOfBirth,
		Address:     p.Address,
		Bio:         p.Bio,
	}
}
