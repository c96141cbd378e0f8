package auth

import (
	"github.com/klwxsrx/tagabukid-property/pkg/auth"
)

func UserPermission() auth.Permission[Principal] {
	return func(authentication auth.Authentication[Principal]) (bool, error) {
		principal := authentication.Principal()
		return principal != nil && principal.UserID != nil, nil
	}
}

func AdminPermission() auth.Permission[Principal] {
	return func(authentication auth.Authentication[Principal]) (bool, error) {
		principal := authentication.Principal()
		return principal != nil && principal.Admin, nil
	}
}

type PermissionService = auth.PermissionService[Principal]
