package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/dustin/go-humanize"
)

type Page string

const (
	PageHome    Page = "home"
	PageAccount Page = "account"
	PageAdmin   Page = "admin"
)

var pages = []Page{PageHome, PageAccount, PageAdmin}

//go:embed templates
var templateFiles embed.FS

type Renderer interface {
	Render(Page, any) ([]byte, error)
}

type renderer struct {
	templates map[Page]*template.Template
}

func NewRenderer() (Renderer, error) {
	templates := make(map[Page]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New(string(page)).
			Funcs(template.FuncMap{
				"thousands": FormatThousands,
			}).
			ParseFS(
				templateFiles,
				"templates/layout.gohtml",
				"templates/partials/*.gohtml",
				fmt.Sprintf("templates/pages/%s.gohtml", page),
			)
		if err != nil {
			return nil, fmt.Errorf("parse %s page templates: %w", page, err)
		}

		templates[page] = tmpl
	}

	return renderer{templates: templates}, nil
}

func (r renderer) Render(page Page, data any) ([]byte, error) {
	tmpl, ok := r.templates[page]
	if !ok {
		return nil, fmt.Errorf("unknown page %s", page)
	}

	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, "layout", data)
	if err != nil {
		return nil, fmt.Errorf("render %s page: %w", page, err)
	}

	return buf.Bytes(), nil
}

// FormatThousands formats n with comma separated digit groups, 12138 becomes "12,138".
func FormatThousands(n int) string {
	return humanize.Comma(int64(n))
}
