package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkghttp "github.com/klwxsrx/tagabukid-property/pkg/http"
	"github.com/klwxsrx/tagabukid-property/pkg/observability"
)

func TestClientFactory_InitClient(t *testing.T) {
	var received http.Header
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer backend.Close()

	observer := observability.New()
	factory := pkghttp.NewClientFactory(
		pkghttp.WithRequestObservability(observer, map[observability.Field]string{
			observability.FieldRequestID: pkghttp.DefaultRequestIDHeader,
		}),
	)
	client := factory.InitClient("backend", backend.URL, pkghttp.WithRequestHeader("apikey", "anon"))

	ctx := observer.WithField(context.Background(), observability.FieldRequestID, "req-1")
	resp, err := client.NewRequest(ctx).Get("/ping")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "req-1", received.Get(pkghttp.DefaultRequestIDHeader))
	assert.Equal(t, "anon", received.Get("apikey"))

	resp, err = client.With(pkghttp.WithRequestHeader("apikey", "other")).NewRequest(ctx).Get("/ping")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "other", received.Get("apikey"))
}
