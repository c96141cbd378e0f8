package http

import (
	"context"
	"net/http"

	"github.com/klwxsrx/tagabukid-property/pkg/auth"
)

type AuthTokenProvider func(*http.Request) (auth.Token, bool)

// WithAuth authenticates the request with the tokens of the providers in order.
// The first token that authenticates wins; the request is anonymous when none does.
func WithAuth[T auth.Principal](provider auth.Provider[T], tokenProviders ...AuthTokenProvider) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var authData auth.Authentication[T] = auth.Auth[T]{}
			for _, tokenProvider := range tokenProviders {
				token, ok := tokenProvider(r)
				if !ok {
					continue
				}

				tokenAuth, err := provider.Authenticate(r.Context(), token)
				if err != nil {
					writeHandlerResult(r.Context(), w, http.StatusInternalServerError, err)
					return
				}
				if tokenAuth.IsAuthenticated() {
					authData = tokenAuth
					break
				}
			}

			r = r.WithContext(auth.WithAuthentication(r.Context(), authData))
			handler.ServeHTTP(w, r)
		})
	})
}

func WithAuthenticationRequirement() ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			isAuthenticated, err := auth.IsAuthenticated(r.Context())
			if err != nil {
				writeHandlerResult(r.Context(), w, http.StatusInternalServerError, err)
				return
			}

			if !isAuthenticated {
				writeHandlerResult(r.Context(), w, http.StatusUnauthorized, auth.ErrUnauthenticated)
				return
			}

			handler.ServeHTTP(w, r)
		})
	})
}

func writeHandlerResult(ctx context.Context, w http.ResponseWriter, httpCode int, err error) {
	meta := getHandlerMetadata(ctx)
	meta.Code = httpCode
	meta.Error = err

	http.Error(w, http.StatusText(httpCode), httpCode)
}
