package http

import (
	"fmt"
	"net/http"

	"github.com/klwxsrx/tagabukid-property/internal/account/api"
	"github.com/klwxsrx/tagabukid-property/internal/pkg/auth"
	"github.com/klwxsrx/tagabukid-property/internal/pkg/view"
	pkgauth "github.com/klwxsrx/tagabukid-property/pkg/auth"
	pkghttp "github.com/klwxsrx/tagabukid-property/pkg/http"
)

const accountPath = "/account"

type profileFormHandler struct {
	accountService api.AccountService
	renderer       view.Renderer
}

func NewProfileFormHandler(accountService api.AccountService, renderer view.Renderer) pkghttp.Handler {
	return profileFormHandler{
		accountService: accountService,
		renderer:       renderer,
	}
}

func (h profileFormHandler) Method() string {
	return http.MethodGet
}

func (h profileFormHandler) Path() string {
	return accountPath
}

func (h profileFormHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	data, err := h.accountService.ProfileForm(r.Context())
	if err != nil {
		return err
	}

	var email string
	if principal, err := pkgauth.GetPrincipal[auth.Principal](r.Context()); err == nil {
		email = principal.Email
	}

	page, err := h.renderer.Render(view.PageAccount, view.AccountPage{
		Email:  email,
		Form:   toProfileFormView(data.Form),
		Toasts: toToasts(data.Notifications),
	})
	if err != nil {
		return fmt.Errorf("render account page: %w", err)
	}

	w.SetHeader("Cache-Control", "no-store")
	w.SetHTMLBody(page)
	return nil
}
