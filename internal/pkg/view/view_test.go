package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/tagabukid-property/internal/pkg/view"
)

func newRenderer(t *testing.T) view.Renderer {
	t.Helper()
	renderer, err := view.NewRenderer()
	require.NoError(t, err)
	return renderer
}

func TestFormatThousands(t *testing.T) {
	tests := map[int]string{
		0:        "0",
		150:      "150",
		1000:     "1,000",
		12138:    "12,138",
		54120:    "54,120",
		1234567:  "1,234,567",
		-11930:   "-11,930",
		-1000000: "-1,000,000",
	}
	for n, expected := range tests {
		assert.Equal(t, expected, view.FormatThousands(n))
	}
}

func TestRenderer_HomePageContainsSearchAndFooter(t *testing.T) {
	page, err := newRenderer(t).Render(view.PageHome, view.HomePage{
		Search: view.NewSearchWidget(true, map[string]string{
			view.SearchParamCategory: "rent",
		}),
	})
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, "Find a property")
	assert.Contains(t, html, `name="location"`)
	assert.Contains(t, html, `name="property_type"`)
	assert.Contains(t, html, `<option value="rent" selected>For Rent</option>`)
	assert.Contains(t, html, `<option value="sale">For Sale</option>`)
	assert.Contains(t, html, "bg-opacity-75")

	assert.Contains(t, html, "Best Real Estate Deals")
	assert.Contains(t, html, "Terms &amp; Privacy")
	assert.Contains(t, html, "Fortich St. Malaybalay City")
	assert.Contains(t, html, "tagabukidproperty@gmail.com")
	assert.Contains(t, html, "© 2023 All rights reserved")
}

func TestRenderer_AdminPageContainsSummaryCard(t *testing.T) {
	page, err := newRenderer(t).Render(view.PageAdmin, view.AdminPage{
		Search: view.NewSearchWidget(false, nil),
		Summary: view.SummaryCard{
			Title:      "Users",
			TotalLabel: "Total Users",
			Total:      12138,
			Tiers: []view.SummaryTier{
				{Name: "Free", Users: 11930, Trend: view.TrendDown},
				{Name: "Pro", Users: 54120, Trend: view.TrendUp},
			},
		},
	})
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, "Total Users:")
	assert.Contains(t, html, "12,138")
	assert.Contains(t, html, "↓</span>")
	assert.Contains(t, html, "11,930 <br> Free")
	assert.Contains(t, html, "↑</span>")
	assert.Contains(t, html, "54,120 <br> Pro")
	assert.NotContains(t, html, "bg-opacity-75")
}

func TestRenderer_AccountPage(t *testing.T) {
	renderer := newRenderer(t)
	form := view.ProfileForm{
		Rows: [][]view.FormField{
			{
				{Name: "first_name", Label: "First Name", Type: "text", Value: "Juan", AutoCapitalize: true},
				{Name: "last_name", Label: "Last Name", Type: "text", Value: "<script>", Error: "Name should not contain numbers or special characters"},
			},
			{
				{Name: "bio", Label: "Bio", Placeholder: "Type your bio here.", Multiline: true},
			},
		},
	}

	t.Run("read_only", func(t *testing.T) {
		page, err := renderer.Render(view.PageAccount, view.AccountPage{Email: "juan@example.com", Form: form})
		require.NoError(t, err)

		html := string(page)
		assert.Contains(t, html, `action="/account/edit"`)
		assert.NotContains(t, html, `action="/account/cancel"`)
		assert.NotContains(t, html, ">Save")
		assert.Contains(t, html, "readonly")
		assert.Contains(t, html, `value="Juan"`)
		assert.Contains(t, html, `value="&lt;script&gt;"`)
		assert.Contains(t, html, "Name should not contain numbers or special characters")
		assert.Contains(t, html, `placeholder="Type your bio here."`)
		assert.NotContains(t, html, "toast-viewport")
	})

	t.Run("editable_with_toast", func(t *testing.T) {
		editable := form
		editable.Editable = true
		page, err := renderer.Render(view.PageAccount, view.AccountPage{
			Form: editable,
			Toasts: []view.Toast{
				{Variant: view.ToastDestructive, Title: "Uh oh! Something went wrong.", Description: "duplicate key"},
			},
		})
		require.NoError(t, err)

		html := string(page)
		assert.Contains(t, html, `action="/account/cancel"`)
		assert.Contains(t, html, ">Save")
		assert.NotContains(t, html, "readonly")
		assert.NotContains(t, html, "animate-spin")
		assert.Contains(t, html, "toast-destructive")
		assert.Contains(t, html, "Uh oh! Something went wrong.")
	})

	t.Run("submitting", func(t *testing.T) {
		submitting := form
		submitting.Editable = true
		submitting.Submitting = true
		page, err := renderer.Render(view.PageAccount, view.AccountPage{Form: submitting})
		require.NoError(t, err)

		html := string(page)
		assert.Contains(t, html, "animate-spin")
		assert.Contains(t, html, "disabled")
	})
}

func TestRenderer_UnknownPage(t *testing.T) {
	_, err := newRenderer(t).Render(view.Page("missing"), nil)
	assert.Error(t, err)
}
