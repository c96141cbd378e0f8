package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/tagabukid-property/internal/account/api"
	pkghttp "github.com/klwxsrx/tagabukid-property/pkg/http"
)

type editProfileHandler struct {
	accountService api.AccountService
}

func NewEditProfileHandler(accountService api.AccountService) pkghttp.Handler {
	return editProfileHandler{accountService: accountService}
}

func (h editProfileHandler) Method() string {
	return http.MethodPost
}

func (h editProfileHandler) Path() string {
	return accountPath + "/edit"
}

func (h editProfileHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	err := h.accountService.EditProfile(r.Context())
	if errors.Is(err, api.ErrSubmissionInProgress) {
		w.SetStatusCode(http.StatusConflict)
	}
	if err != nil {
		return err
	}

	w.Redirect(accountPath, http.StatusSeeOther)
	return nil
}

type cancelProfileEditHandler struct {
	accountService api.AccountService
}

func NewCancelProfileEditHandler(accountService api.AccountService) pkghttp.Handler {
	return cancelProfileEditHandler{accountService: accountService}
}

func (h cancelProfileEditHandler) Method() string {
	return http.MethodPost
}

func (h cancelProfileEditHandler) Path() string {
	return accountPath + "/cancel"
}

func (h cancelProfileEditHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	err := h.accountService.CancelProfileEdit(r.Context())
	if errors.Is(err, api.ErrSubmissionInProgress) {
		w.SetStatusCode(http.StatusConflict)
	}
	if err != nil {
		return err
	}

	w.Redirect(accountPath, http.StatusSeeOther)
	return nil
}
