package http

import (
	"fmt"
	"net/http"

	"github.com/klwxsrx/tagabukid-property/internal/pkg/view"
	pkghttp "github.com/klwxsrx/tagabukid-property/pkg/http"
)

var searchParams = []string{
	view.SearchParamLocation,
	view.SearchParamCategory,
	view.SearchParamPropertyType,
}

type homeHandler struct {
	renderer view.Renderer
}

func NewHomeHandler(renderer view.Renderer) pkghttp.Handler {
	return homeHandler{renderer: renderer}
}

func (h homeHandler) Method() string {
	return http.MethodGet
}

func (h homeHandler) Path() string {
	return "/"
}

// Handle renders the landing page, submitted search options stay selected.
func (h homeHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	selected := make(map[string]string, len(searchParams))
	for _, param := range searchParams {
		value := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[string](param), err)
		if value != nil {
			selected[param] = *value
		}
	}

	page, err := h.renderer.Render(view.PageHome, view.HomePage{
		Search: view.NewSearchWidget(true, selected),
	})
	if err != nil {
		return fmt.Errorf("render home page: %w", err)
	}

	w.SetHTMLBody(page)
	return nil
}
