package dashboard

import (
	"github.com/klwxsrx/tagabukid-property/internal/dashboard/app/service"
	"github.com/klwxsrx/tagabukid-property/internal/dashboard/infra/http"
	"github.com/klwxsrx/tagabukid-property/internal/pkg/auth"
	"github.com/klwxsrx/tagabukid-property/internal/pkg/view"
	pkghttp "github.com/klwxsrx/tagabukid-property/pkg/http"
	pkglazy "github.com/klwxsrx/tagabukid-property/pkg/lazy"
)

type DependencyContainer struct {
	Summary      pkglazy.Loader[service.Summary]
	AdminHandler pkglazy.Loader[pkghttp.Handler]
}

func NewDependencyContainer(
	renderer pkglazy.Loader[view.Renderer],
	permissions pkglazy.Loader[auth.PermissionService],
) *DependencyContainer {
	summary := pkglazy.New(func() (service.Summary, error) {
		return service.NewSummary(permissions.MustLoad()), nil
	})

	return &DependencyContainer{
		Summary: summary,
		AdminHandler: pkglazy.New(func() (pkghttp.Handler, error) {
			return http.NewAdminHandler(summary.MustLoad(), renderer.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.AdminHandler.MustLoad())
}
