package http

import (
	"fmt"
	"net/http"

	"github.com/klwxsrx/tagabukid-property/internal/dashboard/app/service"
	"github.com/klwxsrx/tagabukid-property/internal/pkg/view"
	pkghttp "github.com/klwxsrx/tagabukid-property/pkg/http"
)

type adminHandler struct {
	summary  service.Summary
	renderer view.Renderer
}

func NewAdminHandler(summary service.Summary, renderer view.Renderer) pkghttp.Handler {
	return adminHandler{
		summary:  summary,
		renderer: renderer,
	}
}

func (h adminHandler) Method() string {
	return http.MethodGet
}

func (h adminHandler) Path() string {
	return "/admin"
}

func (h adminHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	summary, err := h.summary.UserSummary(r.Context())
	if err != nil {
		return err
	}

	page, err := h.renderer.Render(view.PageAdmin, view.AdminPage{
		Search:  view.NewSearchWidget(false, nil),
		Summary: toSummaryCard(summary),
	})
	if err != nil {
		return fmt.Errorf("render admin page: %w", err)
	}

	w.SetHTMLBody(page)
	return nil
}

func toSummaryCard(summary *service.UserSummary) view.SummaryCard {
	tiers := make([]view.SummaryTier, 0, len(summary.Tiers))
	for _, tier := range summary.Tiers {
		trend := view.TrendDown
		if tier.Trend == service.TrendUp {
			trend = view.TrendUp
		}

		tiers = append(tiers, view.SummaryTier{
			Name:  tier.Name,
			Users: tier.Users,
			Trend: trend,
		})
	}

	return view.SummaryCard{
		Title:      "Users",
		TotalLabel: "Total Users",
		Total:      summary.Total,
		Tiers:      tiers,
	}
}
