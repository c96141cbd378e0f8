package postgrest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/klwxsrx/tagabukid-property/internal/account/domain"
	"github.com/klwxsrx/tagabukid-property/internal/pkg/auth"
	pkgauth "github.com/klwxsrx/tagabukid-property/pkg/auth"
	pkghttp "github.com/klwxsrx/tagabukid-property/pkg/http"
)

const (
	profilesPath = "/rest/v1/profiles"

	headerAPIKey = "apikey"
	headerPrefer = "Prefer"

	preferUpsert      = "resolution=merge-duplicates,return=minimal"
	singleObjectMedia = "application/vnd.pgrst.object+json"
)

type profileRepository struct {
	client  pkghttp.Client
	anonKey string
}

func NewProfileRepository(client pkghttp.Client, anonKey string) domain.ProfileRepository {
	return profileRepository{
		client:  client.With(pkghttp.WithRequestHeader(headerAPIKey, anonKey)),
		anonKey: anonKey,
	}
}

func (r profileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	resp, err := r.newRequest(ctx).
		SetQueryParam("on_conflict", "user_id").
		SetHeader(headerPrefer, preferUpsert).
		SetBody(toProfileRow(profile)).
		Post(profilesPath)
	if err != nil {
		return &domain.StorageError{Message: err.Error()}
	}
	if resp.IsError() {
		return toStorageError(resp)
	}

	return nil
}

func (r profileRepository) FindByUserID(ctx context.Context, userID domain.UserID) (*domain.Profile, error) {
	var row profileRow
	resp, err := r.newRequest(ctx).
		SetQueryParams(map[string]string{
			"user_id": fmt.Sprintf("eq.%s", userID),
			"select":  "*",
		}).
		SetHeader("Accept", singleObjectMedia).
		SetResult(&row).
		Get(profilesPath)
	if err != nil {
		return nil, &domain.StorageError{Message: err.Error()}
	}
	if resp.StatusCode() == http.StatusNotAcceptable {
		return nil, domain.ErrProfileNotFound
	}
	if resp.IsError() {
		return nil, toStorageError(resp)
	}

	return row.toDomain(), nil
}

// newRequest acts on behalf of the signed-in user so row level policies apply.
func (r profileRepository) newRequest(ctx context.Context) *resty.Request {
	bearer := r.anonKey
	principal, err := pkgauth.GetPrincipal[auth.Principal](ctx)
	if err == nil && principal.AccessToken != "" {
		bearer = principal.AccessToken
	}

	return r.client.NewRequest(ctx).
		SetAuthToken(bearer).
		SetError(&errorOut{})
}

func toStorageError(resp *resty.Response) error {
	out, ok := resp.Error().(*errorOut)
	if ok && out.Message != "" {
		return &domain.StorageError{Message: out.Message}
	}

	return &domain.StorageError{Message: fmt.Sprintf("unexpected response status %d", resp.StatusCode())}
}

type (
	profileRow struct {
		UserID      string `json:"user_id"`
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
		Username    string `json:"username"`
		Contact     int64  `json:"contact"`
		DateOfBirth string `json:"date_of_birth"`
		Address     string `json:"address"`
		Bio         string `json:"bio"`
	}

	errorOut struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
		Hint    string `json:"hint"`
	}
)

func toProfileRow(profile *domain.Profile) profileRow {
	return profileRow{
		UserID:      string(profile.UserID),
		FirstName:   profile.FirstName,
		LastName:    profile.LastName,
		Username:    profile.Username,
		Contact:     profile.Contact,
		DateOfBirth: profile.DateOfBirth,
		Address:     profile.Address,
		Bio:         profile.Bio,
	}
}

func (r profileRow) toDomain() *domain.Profile {
	return &domain.Profile{
		UserID:      domain.UserID(r.UserID),
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Username:    r.Username,
		Contact:     r.Contact,
		DateOfBirth: r.DateOfBirth,
		Address:     r.Address,
		Bio:         r.Bio,
	}
}
