package view

type (
	HomePage struct {
		Search SearchWidget
	}

	AccountPage struct {
		Email  string
		Form   ProfileForm
		Toasts []Toast
	}

	AdminPage struct {
		Search  SearchWidget
		Summary SummaryCard
	}
)

type (
	ProfileForm struct {
		Editable   bool
		Submitting bool
		Rows       [][]FormField
	}

	FormField struct {
		Name           string
		Label          string
		Type           string
		Value          string
		Placeholder    string
		Error          string
		Multiline      bool
		AutoCapitalize bool
	}

	ToastVariant string

	Toast struct {
		Variant     ToastVariant
		Title       string
		Description string
	}
)

const (
	ToastDefault     ToastVariant = "default"
	ToastDestructive ToastVariant = "destructive"
)

type (
	Trend string

	SummaryCard struct {
		Title      string
		TotalLabel string
		Total      int
		Tiers      []SummaryTier
	}

	SummaryTier struct {
		Name  string
		Users int
		Trend Trend
	}
)

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

func (t Trend) Arrow() string {
	if t == TrendUp {
		return "↑"
	}

	return "↓"
}
