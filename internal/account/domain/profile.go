//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "ProfileRepository=ProfileRepository"
package domain

import (
	"context"
	"errors"
)

const Name = "account"

var ErrProfileNotFound = errors.New("profile not found")

type (
	Profile struct {
		UserID      UserID
		FirstName   string
		LastName    string
		Username    string
		Contact     int64
		DateOfBirth string
		Address     string
		Bio         string
	}

	ProfileRepository interface {
		Upsert(context.Context, *Profile) error
		FindByUserID(context.Context, UserID) (*Profile, error)
	}

	UserID string
)

// ResolveUserID keeps the identity the profile was first saved with.
func ResolveUserID(existing, session UserID) UserID {
	if existing == "" {
		return session
	}

	return existing
}

// StorageError carries a message the storage backend wants shown to the user.
type StorageError struct {
	Message string
}

func (e *StorageError) Error() string {
	return e.Message
}

func StorageErrorMessage(err error) string {
	var storageErr *StorageError
	if errors.As(err, &storageErr) {
		return storageErr.Message
	}

	return err.Error()
}
