package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/tagabukid-property/internal/account/api"
	"github.com/klwxsrx/tagabukid-property/internal/account/api/mock"
	"github.com/klwxsrx/tagabukid-property/internal/account/app/form"
	"github.com/klwxsrx/tagabukid-property/internal/account/app/schema"
	"github.com/klwxsrx/tagabukid-property/internal/account/app/service"
	accounthttp "github.com/klwxsrx/tagabukid-property/internal/account/infra/http"
	"github.com/klwxsrx/tagabukid-property/internal/pkg/auth"
	"github.com/klwxsrx/tagabukid-property/internal/pkg/view"
	pkgauth "github.com/klwxsrx/tagabukid-property/pkg/auth"
	pkghttp "github.com/klwxsrx/tagabukid-property/pkg/http"
)

type testContext struct {
	accountService *mock.AccountService
	server         pkghttp.Server
}

func newTestContext(t *testing.T) *testContext {
	t.Helper()
	ctrl := gomock.NewController(t)
	accountService := mock.NewAccountService(ctrl)

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	server := pkghttp.NewServer(pkghttp.DefaultServerAddress)
	server.Register(accounthttp.NewProfileFormHandler(accountService, renderer))
	server.Register(accounthttp.NewEditProfileHandler(accountService))
	server.Register(accounthttp.NewCancelProfileEditHandler(accountService))
	server.Register(accounthttp.NewSubmitProfileHandler(accountService))

	return &testContext{
		accountService: accountService,
		server:         server,
	}
}

func (c *testContext) serve(r *http.Request) *httptest.ResponseRecorder {
	userID := "2b1c7a52-30cf-4e5c-9a4a-0d6fd0f0b8a1"
	r = r.WithContext(pkgauth.WithAuthentication(r.Context(), pkgauth.Auth[auth.Principal]{
		AuthPrincipal: &auth.Principal{UserID: &userID, Email: "juan@example.com"},
	}))

	w := httptest.NewRecorder()
	c.server.ServeHTTP(w, r)
	return w
}

func postForm(path string, values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestProfileFormHandler_RendersFormWithToasts(t *testing.T) {
	c := newTestContext(t)
	c.accountService.EXPECT().ProfileForm(gomock.Any()).Return(&service.ProfileFormData{
		Form: form.FormView{
			State: form.StateEdit,
			Values: schema.ProfileValues{
				FirstName: "Juan",
				Contact:   "935",
			},
			Errors: schema.FieldErrors{
				schema.FieldUsername: "Username is required",
			},
		},
		Notifications: []form.Notification{
			{Kind: form.NotificationError, Title: form.TitlePersistenceFailed, Description: "duplicate key value"},
		},
	}, nil)

	w := c.serve(httptest.NewRequest(http.MethodGet, "/account", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, "juan@example.com")
	assert.Contains(t, body, `value="Juan"`)
	assert.Contains(t, body, `value="935"`)
	assert.Contains(t, body, `placeholder="ex. 935XXXXXXX"`)
	assert.Contains(t, body, "Username is required")
	assert.Contains(t, body, "toast-destructive")
	assert.Contains(t, body, "duplicate key value")
	assert.Contains(t, body, ">Save")
}

func TestProfileFormHandler_ReturnsServiceError(t *testing.T) {
	c := newTestContext(t)
	c.accountService.EXPECT().ProfileForm(gomock.Any()).Return(nil, errors.New("storage unavailable"))

	w := c.serve(httptest.NewRequest(http.MethodGet, "/account", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestEditAndCancelHandlers(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		err      error
		expected int
	}{
		{name: "edit", path: "/account/edit", expected: http.StatusSeeOther},
		{name: "edit while submitting", path: "/account/edit", err: api.ErrSubmissionInProgress, expected: http.StatusConflict},
		{name: "cancel", path: "/account/cancel", expected: http.StatusSeeOther},
		{name: "cancel while submitting", path: "/account/cancel", err: api.ErrSubmissionInProgress, expected: http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t)
			if strings.HasSuffix(tt.path, "/edit") {
				c.accountService.EXPECT().EditProfile(gomock.Any()).Return(tt.err)
			} else {
				c.accountService.EXPECT().CancelProfileEdit(gomock.Any()).Return(tt.err)
			}

			w := c.serve(httptest.NewRequest(http.MethodPost, tt.path, nil))
			assert.Equal(t, tt.expected, w.Code)
			if tt.expected == http.StatusSeeOther {
				assert.Equal(t, "/account", w.Header().Get("Location"))
			}
		})
	}
}

func TestSubmitProfileHandler_DecodesTrimmedFormValues(t *testing.T) {
	c := newTestContext(t)
	c.accountService.EXPECT().SubmitProfile(gomock.Any(), schema.ProfileValues{
		FirstName:   "Juan",
		LastName:    "Dela Cruz",
		Username:    "juan_dc",
		Contact:     "9351234567",
		DateOfBirth: "1995-06-12",
		Address:     "Fortich St.",
		Bio:         "",
	}).Return(nil)

	w := c.serve(postForm("/account", url.Values{
		"first_name":    {" Juan "},
		"last_name":     {"Dela Cruz"},
		"username":      {"juan_dc"},
		"contact":       {"9351234567"},
		"date_of_birth": {"1995-06-12"},
		"address":       {"Fortich St."},
	}))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/account", w.Header().Get("Location"))
}

func TestSubmitProfileHandler_MapsOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "invalid values", err: api.ErrInvalidProfile, expected: http.StatusSeeOther},
		{name: "persistence failed", err: errors.Join(api.ErrPersistenceFailed, errors.New("duplicate key")), expected: http.StatusSeeOther},
		{name: "submission in progress", err: api.ErrSubmissionInProgress, expected: http.StatusConflict},
		{name: "read only", err: api.ErrReadOnly, expected: http.StatusConflict},
		{name: "unauthenticated", err: pkgauth.ErrUnauthenticated, expected: http.StatusUnauthorized},
		{name: "unexpected", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t)
			c.accountService.EXPECT().SubmitProfile(gomock.Any(), gomock.Any()).Return(tt.err)

			w := c.serve(postForm("/account", url.Values{"first_name": {"Juan"}}))
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestProfileFormHandler_WithoutPrincipalRendersNoEmail(t *testing.T) {
	c := newTestContext(t)
	c.accountService.EXPECT().ProfileForm(gomock.Any()).Return(&service.ProfileFormData{}, nil)

	w := httptest.NewRecorder()
	c.server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/account", nil).WithContext(context.Background()))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "@example.com")
	assert.Contains(t, w.Body.String(), `action="/account/edit"`)
}
