package site

import (
	"github.com/klwxsrx/tagabukid-property/internal/pkg/view"
	"github.com/klwxsrx/tagabukid-property/internal/site/infra/http"
	pkghttp "github.com/klwxsrx/tagabukid-property/pkg/http"
	pkglazy "github.com/klwxsrx/tagabukid-property/pkg/lazy"
)

type DependencyContainer struct {
	HomeHandler pkglazy.Loader[pkghttp.Handler]
}

func NewDependencyContainer(renderer pkglazy.Loader[view.Renderer]) *DependencyContainer {
	return &DependencyContainer{
		HomeHandler: pkglazy.New(func() (pkghttp.Handler, error) {
			return http.NewHomeHandler(renderer.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.HomeHandler.MustLoad())
}
