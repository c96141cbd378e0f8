package auth

import (
	"github.com/klwxsrx/tagabukid-property/pkg/auth"
)

const (
	PrincipalTypeUser      auth.PrincipalType = "user"
	PrincipalTypeAdminUser auth.PrincipalType = "adminUser"
)

// SessionToken is a backend-issued access token, the server only verifies it.
type SessionToken struct {
	AccessToken string
}

func (t SessionToken) Type() auth.PrincipalType {
	return PrincipalTypeUser
}
