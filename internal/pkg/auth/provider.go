package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"

	"github.com/klwxsrx/tagabukid-property/pkg/auth"
)

const adminRole = "admin"

type (
	Principal struct {
		UserID      *string
		Email       string
		Admin       bool
		AccessToken string
	}

	sessionClaims struct {
		jwt.RegisteredClaims
		Email       string `json:"email"`
		AppMetadata struct {
			Role string `json:"role"`
		} `json:"app_metadata"`
	}

	sessionProvider struct {
		jwtSecret []byte
	}
)

func NewSessionProvider(jwtSecret []byte) auth.Provider[Principal] {
	return sessionProvider{jwtSecret: jwtSecret}
}

// Authenticate returns an anonymous authentication for expired or forged tokens.
func (p sessionProvider) Authenticate(_ context.Context, token auth.Token) (auth.Authentication[Principal], error) {
	sessionToken, ok := token.(SessionToken)
	if !ok {
		return nil, fmt.Errorf("unknown token with type %s", token.Type())
	}

	var claims sessionClaims
	_, err := jwt.ParseWithClaims(
		sessionToken.AccessToken,
		&claims,
		func(*jwt.Token) (any, error) { return p.jwtSecret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	var validationErr *jwt.ValidationError
	if errors.As(err, &validationErr) {
		return auth.Auth[Principal]{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse session token: %w", err)
	}
	if claims.Subject == "" {
		return auth.Auth[Principal]{}, nil
	}

	return auth.Auth[Principal]{AuthPrincipal: &Principal{
		UserID:      &claims.Subject,
		Email:       claims.Email,
		Admin:       claims.AppMetadata.Role == adminRole,
		AccessToken: sessionToken.AccessToken,
	}}, nil
}

func (p Principal) Type() auth.PrincipalType {
	if p.Admin {
		return PrincipalTypeAdminUser
	}

	return PrincipalTypeUser
}

func (p Principal) ID() *string {
	return p.UserID
}
