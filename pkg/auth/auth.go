package auth

import (
	"context"
	"errors"
)

var (
	ErrUnauthenticated        = errors.New("not authenticated")
	ErrAuthenticationNotFound = errors.New("authentication not found")
)

type (
	Provider[T Principal] interface {
		Authenticate(context.Context, Token) (Authentication[T], error)
	}

	Token interface {
		Type() PrincipalType
	}

	Authentication[T Principal] interface {
		IsAuthenticated() bool
		Principal() *T
	}

	Principal interface {
		Type() PrincipalType
		ID() *string
	}

	Auth[T Principal] struct {
		AuthPrincipal *T
	}

	PrincipalType string
)

func (a Auth[T]) IsAuthenticated() bool {
	return a.AuthPrincipal != nil
}

func (a Auth[T]) Principal() *T {
	return a.AuthPrincipal
}

type contextKey int

const authenticationContextKey contextKey = iota

func WithAuthentication[T Principal](ctx context.Context, auth Authentication[T]) context.Context {
	var principal *Principal
	if auth.Principal() != nil {
		p := Principal(*auth.Principal())
		principal = &p
	}

	return context.WithValue(ctx, authenticationContextKey, Auth[Principal]{AuthPrincipal: principal})
}

func GetAuthentication[T Principal](ctx context.Context) (Authentication[T], bool) {
	authentication, ok := ctx.Value(authenticationContextKey).(Auth[Principal])
	if !ok {
		return nil, false
	}

	if authentication.AuthPrincipal == nil {
		return Auth[T]{}, true
	}

	principal, ok := (*authentication.AuthPrincipal).(T)
	if !ok {
		return nil, false
	}

	return Auth[T]{AuthPrincipal: &principal}, true
}

// GetPrincipal returns the authenticated principal of type T or ErrUnauthenticated.
func GetPrincipal[T Principal](ctx context.Context) (T, error) {
	var blank T
	authentication, ok := GetAuthentication[T](ctx)
	if !ok {
		return blank, ErrAuthenticationNotFound
	}
	if !authentication.IsAuthenticated() {
		return blank, ErrUnauthenticated
	}

	return *authentication.Principal(), nil
}

func IsAuthenticated(ctx context.Context) (bool, error) {
	result, ok := ctx.Value(authenticationContextKey).(Auth[Principal])
	if !ok {
		return false, ErrAuthenticationNotFound
	}

	return result.IsAuthenticated(), nil
}
