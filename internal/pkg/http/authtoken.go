package http

import (
	"net/http"
	"strings"

	"github.com/klwxsrx/tagabukid-property/internal/pkg/auth"
	pkgauth "github.com/klwxsrx/tagabukid-property/pkg/auth"
	pkghttp "github.com/klwxsrx/tagabukid-property/pkg/http"
)

const (
	SessionCookieName = "sb-access-token"
	bearerPrefix      = "Bearer "
)

// SessionCookieTokenProvider reads the access token from the Supabase session cookie.
func SessionCookieTokenProvider(r *http.Request) (pkgauth.Token, bool) {
	accessToken, err := pkghttp.ParseRequest(r, pkghttp.CookieValue[string](SessionCookieName), nil)
	if err != nil || accessToken == "" {
		return nil, false
	}

	return auth.SessionToken{AccessToken: accessToken}, true
}

// BearerTokenProvider reads the access token from the Authorization header.
func BearerTokenProvider(r *http.Request) (pkgauth.Token, bool) {
	header, err := pkghttp.ParseRequest(r, pkghttp.Header[string]("Authorization"), nil)
	if err != nil || !strings.HasPrefix(header, bearerPrefix) {
		return nil, false
	}

	accessToken := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if accessToken == "" {
		return nil, false
	}

	return auth.SessionToken{AccessToken: accessToken}, true
}
