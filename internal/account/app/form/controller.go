package form

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/klwxsrx/tagabukid-property/internal/account/app/schema"
	"github.com/klwxsrx/tagabukid-property/internal/account/domain"
)

var (
	ErrSubmissionInProgress = errors.New("profile submission in progress")
	ErrReadOnly             = errors.New("profile form is read-only")
	ErrInvalidProfile       = errors.New("invalid profile values")
	ErrPersistenceFailed    = errors.New("profile persistence failed")
)

const (
	TitlePersistenceFailed = "Uh oh! Something went wrong."
	DescriptionSaved       = "Successfully updated your profile"
)

type State int

const (
	StateView State = iota
	StateEdit
	StateSubmitting
)

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

type (
	Notification struct {
		Kind        NotificationKind
		Title       string
		Description string
	}

	FormView struct {
		State  State
		Values schema.ProfileValues
		Errors schema.FieldErrors
	}

	Controller interface {
		Revision() uint64
		SetProfile(profile *domain.Profile, revision uint64) bool
		Edit() error
		Cancel() error
		Submit(context.Context, schema.ProfileValues) error
		View() FormView
		PopNotifications() []Notification
	}
)

func (v FormView) Editable() bool {
	return v.State != StateView
}

func (v FormView) Submitting() bool {
	return v.State == StateSubmitting
}

func (v FormView) ReadOnly() bool {
	return !v.Editable() || v.Submitting()
}

type controller struct {
	mu            sync.Mutex
	sessionUserID domain.UserID
	profileRepo   domain.ProfileRepository

	state         State
	profile       *domain.Profile
	revision      uint64
	values        schema.ProfileValues
	errors        schema.FieldErrors
	notifications []Notification
}

func NewController(sessionUserID domain.UserID, profileRepo domain.ProfileRepository) Controller {
	return newController(sessionUserID, profileRepo)
}

func newController(sessionUserID domain.UserID, profileRepo domain.ProfileRepository) *controller {
	return &controller{
		sessionUserID: sessionUserID,
		profileRepo:   profileRepo,
		state:         StateView,
	}
}

// Revision changes whenever the stored profile known to the form changes.
func (c *controller) Revision() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.revision
}

// SetProfile records an externally loaded profile, nil when none is stored.
// It is ignored when the form has moved past revision since the load started,
// the shown values follow it only in view mode.
func (c *controller) SetProfile(profile *domain.Profile, revision uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if revision != c.revision {
		return false
	}

	c.profile = profile
	c.revision++
	if c.state == StateView {
		c.values = profileValues(profile)
	}

	return true
}

func (c *controller) Edit() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateSubmitting:
		return ErrSubmissionInProgress
	case StateView:
		c.state = StateEdit
	}

	return nil
}

func (c *controller) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateSubmitting:
		return ErrSubmissionInProgress
	case StateEdit:
		c.state = StateView
		c.values = profileValues(c.profile)
		c.errors = nil
	}

	return nil
}

func (c *controller) Submit(ctx context.Context, values schema.ProfileValues) error {
	profile, err := c.startSubmission(values)
	if err != nil {
		return err
	}

	err = c.profileRepo.Upsert(ctx, &profile)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.state = StateEdit
		c.notifications = append(c.notifications, Notification{
			Kind:        NotificationError,
			Title:       TitlePersistenceFailed,
			Description: domain.StorageErrorMessage(err),
		})
		return fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}

	c.state = StateView
	c.profile = &profile
	c.revision++
	c.values = schema.ToProfileValues(profile)
	c.notifications = append(c.notifications, Notification{
		Kind:        NotificationSuccess,
		Description: DescriptionSaved,
	})
	return nil
}

func (c *controller) View() FormView {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs schema.FieldErrors
	if len(c.errors) > 0 {
		errs = make(schema.FieldErrors, len(c.errors))
		for field, message := range c.errors {
			errs[field] = message
		}
	}

	return FormView{
		State:  c.state,
		Values: c.values,
		Errors: errs,
	}
}

func (c *controller) PopNotifications() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	notifications := c.notifications
	c.notifications = nil
	return notifications
}

func (c *controller) submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state == StateSubmitting
}

func (c *controller) startSubmission(values schema.ProfileValues) (domain.Profile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateSubmitting:
		return domain.Profile{}, ErrSubmissionInProgress
	case StateView:
		return domain.Profile{}, ErrReadOnly
	}

	c.values = values
	c.errors = schema.Validate(values)
	if len(c.errors) > 0 {
		return domain.Profile{}, ErrInvalidProfile
	}

	var existingUserID domain.UserID
	if c.profile != nil {
		existingUserID = c.profile.UserID
	}

	profile, err := schema.ToProfile(values, domain.ResolveUserID(existingUserID, c.sessionUserID))
	if err != nil {
		c.errors = schema.FieldErrors{schema.FieldContact: "Contact number must contain digits only"}
		return domain.Profile{}, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	c.state = StateSubmitting
	return profile, nil
}

func profileValues(profile *domain.Profile) schema.ProfileValues {
	if profile == nil {
		return schema.ProfileValues{}
	}

	return schema.ToProfileValues(*profile)
}
