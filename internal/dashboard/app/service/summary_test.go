package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/tagabukid-property/internal/dashboard/app/service"
	"github.com/klwxsrx/tagabukid-property/internal/pkg/auth"
	pkgauth "github.com/klwxsrx/tagabukid-property/pkg/auth"
)

func withPrincipal(principal *auth.Principal) context.Context {
	return pkgauth.WithAuthentication(context.Background(), pkgauth.Auth[auth.Principal]{AuthPrincipal: principal})
}

func TestSummary_UserSummary(t *testing.T) {
	userID := "7f6d8a3e-5b0c-4d5e-9f2a-1b3c4d5e6f70"
	summary := service.NewSummary(pkgauth.NewPermissionService[auth.Principal]())

	t.Run("admin", func(t *testing.T) {
		result, err := summary.UserSummary(withPrincipal(&auth.Principal{UserID: &userID, Admin: true}))
		require.NoError(t, err)
		assert.Equal(t, 12138, result.Total)
		assert.Equal(t, []service.SubscriptionTier{
			{Name: "Free", Users: 11930, Trend: service.TrendDown},
			{Name: "Elite", Users: 11930, Trend: service.TrendDown},
			{Name: "Pro", Users: 54120, Trend: service.TrendUp},
			{Name: "Ultimate", Users: 150, Trend: service.TrendUp},
		}, result.Tiers)

		result.Tiers[0].Users = 0
		again, err := summary.UserSummary(withPrincipal(&auth.Principal{UserID: &userID, Admin: true}))
		require.NoError(t, err)
		assert.Equal(t, 11930, again.Tiers[0].Users)
	})

	t.Run("regular_user", func(t *testing.T) {
		_, err := summary.UserSummary(withPrincipal(&auth.Principal{UserID: &userID}))
		assert.ErrorIs(t, err, pkgauth.ErrPermissionDenied)
	})

	t.Run("anonymous", func(t *testing.T) {
		_, err := summary.UserSummary(withPrincipal(nil))
		assert.ErrorIs(t, err, pkgauth.ErrPermissionDenied)
	})
}
