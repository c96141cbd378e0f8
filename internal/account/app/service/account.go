package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/klwxsrx/tagabukid-property/internal/account/app/form"
	"github.com/klwxsrx/tagabukid-property/internal/account/app/schema"
	"github.com/klwxsrx/tagabukid-property/internal/account/domain"
	"github.com/klwxsrx/tagabukid-property/internal/pkg/auth"
	pkgauth "github.com/klwxsrx/tagabukid-property/pkg/auth"
)

type (
	Account interface {
		ProfileForm(context.Context) (*ProfileFormData, error)
		EditProfile(context.Context) error
		CancelProfileEdit(context.Context) error
		SubmitProfile(context.Context, schema.ProfileValues) error
	}

	ProfileFormData struct {
		Form          form.FormView
		Notifications []form.Notification
	}

	accountService struct {
		forms       form.Registry
		profileRepo domain.ProfileRepository
		permissions auth.PermissionService
	}
)

func NewAccount(
	forms form.Registry,
	profileRepo domain.ProfileRepository,
	permissions auth.PermissionService,
) Account {
	return &accountService{
		forms:       forms,
		profileRepo: profileRepo,
		permissions: permissions,
	}
}

// ProfileForm reloads the stored profile and drains pending notifications.
// A profile saved while the load was in flight is kept over the loaded one.
func (s *accountService) ProfileForm(ctx context.Context) (*ProfileFormData, error) {
	controller, userID, err := s.controller(ctx)
	if err != nil {
		return nil, err
	}

	revision := controller.Revision()
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		controller.SetProfile(nil, revision)
	case err != nil:
		return nil, fmt.Errorf("find profile by user id: %w", err)
	default:
		controller.SetProfile(profile, revision)
	}

	return &ProfileFormData{
		Form:          controller.View(),
		Notifications: controller.PopNotifications(),
	}, nil
}

func (s *accountService) EditProfile(ctx context.Context) error {
	controller, _, err := s.controller(ctx)
	if err != nil {
		return err
	}

	return controller.Edit()
}

func (s *accountService) CancelProfileEdit(ctx context.Context) error {
	controller, _, err := s.controller(ctx)
	if err != nil {
		return err
	}

	return controller.Cancel()
}

func (s *accountService) SubmitProfile(ctx context.Context, values schema.ProfileValues) error {
	controller, _, err := s.controller(ctx)
	if err != nil {
		return err
	}

	return controller.Submit(ctx, values)
}

func (s *accountService) controller(ctx context.Context) (form.Controller, domain.UserID, error) {
	if err := s.permissions.Check(ctx, auth.UserPermission()); err != nil {
		return nil, "", err
	}

	principal, err := pkgauth.GetPrincipal[auth.Principal](ctx)
	if err != nil {
		return nil, "", err
	}

	userID := domain.UserID(*principal.UserID)
	return s.forms.Get(ctx, userID), userID, nil
}
