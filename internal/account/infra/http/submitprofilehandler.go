package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/klwxsrx/tagabukid-property/internal/account/api"
	"github.com/klwxsrx/tagabukid-property/internal/account/app/schema"
	pkghttp "github.com/klwxsrx/tagabukid-property/pkg/http"
)

type submitProfileHandler struct {
	accountService api.AccountService
}

func NewSubmitProfileHandler(accountService api.AccountService) pkghttp.Handler {
	return submitProfileHandler{accountService: accountService}
}

func (h submitProfileHandler) Method() string {
	return http.MethodPost
}

func (h submitProfileHandler) Path() string {
	return accountPath
}

// Handle redirects back to the form on validation and storage failures, the outcome is shown there.
func (h submitProfileHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	values, err := pkghttp.ParseRequest(r, pkghttp.FormBody(decodeProfileValues), err)
	if err != nil {
		return err
	}

	err = h.accountService.SubmitProfile(r.Context(), values)
	switch {
	case err == nil,
		errors.Is(err, api.ErrInvalidProfile),
		errors.Is(err, api.ErrPersistenceFailed):
		w.Redirect(accountPath, http.StatusSeeOther)
		return nil
	case errors.Is(err, api.ErrSubmissionInProgress),
		errors.Is(err, api.ErrReadOnly):
		w.SetStatusCode(http.StatusConflict)
		return err
	default:
		return err
	}
}

func decodeProfileValues(get func(key string) string) schema.ProfileValues {
	value := func(field schema.Field) string {
		return strings.TrimSpace(get(string(field)))
	}

	return schema.ProfileValues{
		FirstName:   value(schema.FieldFirstName),
		LastName:    value(schema.FieldLastName),
		Username:    value(schema.FieldUsername),
		Contact:     value(schema.FieldContact),
		DateOfBirth: value(schema.FieldDateOfBirth),
		Address:     value(schema.FieldAddress),
		Bio:         value(schema.FieldBio),
	}
}
