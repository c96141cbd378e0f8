package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/tagabukid-property/internal/account/domain"
)

func TestResolveUserID(t *testing.T) {
	assert.Equal(t, domain.UserID("session"), domain.ResolveUserID("", "session"))
	assert.Equal(t, domain.UserID("existing"), domain.ResolveUserID("existing", "session"))
}

func TestStorageErrorMessage(t *testing.T) {
	wrapped := fmt.Errorf("upsert profile: %w", &domain.StorageError{Message: "duplicate key value violates unique constraint"})
	assert.Equal(t, "duplicate key value violates unique constraint", domain.StorageErrorMessage(wrapped))
	assert.Equal(t, "network error", domain.StorageErrorMessage(errors.New("network error")))
}
