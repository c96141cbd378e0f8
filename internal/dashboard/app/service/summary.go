package service

import (
	"context"

	"github.com/klwxsrx/tagabukid-property/internal/pkg/auth"
)

type Trend int

const (
	TrendDown Trend = iota
	TrendUp
)

type (
	Summary interface {
		UserSummary(context.Context) (*UserSummary, error)
	}

	UserSummary struct {
		Total int
		Tiers []SubscriptionTier
	}

	SubscriptionTier struct {
		Name  string
		Users int
		Trend Trend
	}
)

// Figures are fixed until subscription data is stored.
var userSummary = UserSummary{
	Total: 12138,
	Tiers: []SubscriptionTier{
		{Name: "Free", Users: 11930, Trend: TrendDown},
		{Name: "Elite", Users: 11930, Trend: TrendDown},
		{Name: "Pro", Users: 54120, Trend: TrendUp},
		{Name: "Ultimate", Users: 150, Trend: TrendUp},
	},
}

type summaryService struct {
	permissions auth.PermissionService
}

func NewSummary(permissions auth.PermissionService) Summary {
	return summaryService{permissions: permissions}
}

func (s summaryService) UserSummary(ctx context.Context) (*UserSummary, error) {
	if err := s.permissions.Check(ctx, auth.AdminPermission()); err != nil {
		return nil, err
	}

	summary := userSummary
	summary.Tiers = append([]SubscriptionTier(nil), userSummary.Tiers...)
	return &summary, nil
}
