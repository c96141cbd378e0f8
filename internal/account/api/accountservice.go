//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "AccountService=AccountService"
package api

import (
	"context"

	"github.com/klwxsrx/tagabukid-property/internal/account/app/form"
	"github.com/klwxsrx/tagabukid-property/internal/account/app/schema"
	"github.com/klwxsrx/tagabukid-property/internal/account/app/service"
)

var (
	ErrSubmissionInProgress = form.ErrSubmissionInProgress
	ErrReadOnly             = form.ErrReadOnly
	ErrInvalidProfile       = form.ErrInvalidProfile
	ErrPersistenceFailed    = form.ErrPersistenceFailed
)

type AccountService interface {
	ProfileForm(context.Context) (*service.ProfileFormData, error)
	EditProfile(context.Context) error
	CancelProfileEdit(context.Context) error
	SubmitProfile(context.Context, schema.ProfileValues) error
}
