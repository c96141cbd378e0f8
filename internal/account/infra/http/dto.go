package http

import (
	"github.com/klwxsrx/tagabukid-property/internal/account/app/form"
	"github.com/klwxsrx/tagabukid-property/internal/account/app/schema"
	"github.com/klwxsrx/tagabukid-property/internal/pkg/view"
)

type formFieldLayout struct {
	Label          string
	Type           string
	Placeholder    string
	Multiline      bool
	AutoCapitalize bool
}

var (
	profileFormRows = [][]schema.Field{
		{schema.FieldFirstName, schema.FieldLastName},
		{schema.FieldUsername},
		{schema.FieldBio},
		{schema.FieldDateOfBirth},
		{schema.FieldContact},
		{schema.FieldAddress},
	}

	profileFormLayout = map[schema.Field]formFieldLayout{
		schema.FieldFirstName:   {Label: "First name", Type: "text", AutoCapitalize: true},
		schema.FieldLastName:    {Label: "Last name", Type: "text", AutoCapitalize: true},
		schema.FieldUsername:    {Label: "Username", Type: "text"},
		schema.FieldBio:         {Label: "Bio", Placeholder: "Type your bio here.", Multiline: true},
		schema.FieldDateOfBirth: {Label: "Birth date", Type: "date"},
		schema.FieldContact:     {Label: "Contact Number", Type: "number", Placeholder: "ex. 935XXXXXXX"},
		schema.FieldAddress:     {Label: "Address", Type: "text"},
	}
)

func toProfileFormView(formView form.FormView) view.ProfileForm {
	rows := make([][]view.FormField, 0, len(profileFormRows))
	for _, fields := range profileFormRows {
		row := make([]view.FormField, 0, len(fields))
		for _, field := range fields {
			layout := profileFormLayout[field]
			row = append(row, view.FormField{
				Name:           string(field),
				Label:          layout.Label,
				Type:           layout.Type,
				Value:          formView.Values.Get(field),
				Placeholder:    layout.Placeholder,
				Error:          formView.Errors[field],
				Multiline:      layout.Multiline,
				AutoCapitalize: layout.AutoCapitalize,
			})
		}
		rows = append(rows, row)
	}

	return view.ProfileForm{
		Editable:   formView.Editable(),
		Submitting: formView.Submitting(),
		Rows:       rows,
	}
}

func toToasts(notifications []form.Notification) []view.Toast {
	if len(notifications) == 0 {
		return nil
	}

	toasts := make([]view.Toast, 0, len(notifications))
	for _, notification := range notifications {
		variant := view.ToastDefault
		if notification.Kind == form.NotificationError {
			variant = view.ToastDestructive
		}

		toasts = append(toasts, view.Toast{
			Variant:     variant,
			Title:       notification.Title,
			Description: notification.Description,
		})
	}

	return toasts
}
