package schema

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/klwxsrx/tagabukid-property/internal/account/domain"
)

const DateLayout = "2006-01-02"

type Field string

const (
	FieldFirstName   Field = "first_name"
	FieldLastName    Field = "last_name"
	FieldUsername    Field = "username"
	FieldContact     Field = "contact"
	FieldDateOfBirth Field = "date_of_birth"
	FieldAddress     Field = "address"
	FieldBio         Field = "bio"
)

// Fields lists the form fields in rendering order.
var Fields = []Field{
	FieldFirstName,
	FieldLastName,
	FieldUsername,
	FieldBio,
	FieldDateOfBirth,
	FieldContact,
	FieldAddress,
}

type (
	ProfileValues struct {
		FirstName   string `form:"first_name" validate:"required,min=2,max=50,personname"`
		LastName    string `form:"last_name" validate:"required,min=2,max=50,personname"`
		Username    string `form:"username" validate:"required,min=6,max=20,word"`
		Contact     string `form:"contact" validate:"required,max=10,digits"`
		DateOfBirth string `form:"date_of_birth" validate:"required,datetime=2006-01-02"`
		Address     string `form:"address" validate:"max=100"`
		Bio         string `form:"bio" validate:"max=100"`
	}

	// FieldErrors holds the first failed rule message of each invalid field.
	FieldErrors map[Field]string
)

var (
	personNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z ]+$`)
	wordPattern       = regexp.MustCompile(`^\w+$`)
	digitsPattern     = regexp.MustCompile(`^[0-9]+$`)

	labels = map[Field]string{
		FieldFirstName:   "First name",
		FieldLastName:    "Last name",
		FieldUsername:    "Username",
		FieldContact:     "Contact number",
		FieldDateOfBirth: "Birth date",
		FieldAddress:     "Address",
		FieldBio:         "Bio",
	}

	fieldTags = make(map[Field]string, len(Fields))

	validate = newValidator()
)

func init() {
	t := reflect.TypeOf(ProfileValues{})
	for i := 0; i < t.NumField(); i++ {
		fieldTags[Field(t.Field(i).Tag.Get("form"))] = t.Field(i).Tag.Get("validate")
	}
}

func Label(field Field) string {
	return labels[field]
}

func Validate(values ProfileValues) FieldErrors {
	err := validate.Struct(values)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		panic(fmt.Errorf("validate profile values: %w", err))
	}

	result := make(FieldErrors, len(validationErrs))
	for _, fieldErr := range validationErrs {
		field := Field(fieldErr.Field())
		if _, ok := result[field]; ok {
			continue
		}
		result[field] = message(field, fieldErr.Tag(), fieldErr.Param())
	}

	return result
}

func ValidateField(field Field, value string) (string, bool) {
	tag, ok := fieldTags[field]
	if !ok {
		return fmt.Sprintf("Unknown field %s", field), false
	}

	err := validate.Var(value, tag)
	if err == nil {
		return "", true
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		panic(fmt.Errorf("validate %s: %w", field, err))
	}

	return message(field, validationErrs[0].Tag(), validationErrs[0].Param()), false
}

func (v ProfileValues) Get(field Field) string {
	switch field {
	case FieldFirstName:
		return v.FirstName
	case FieldLastName:
		return v.LastName
	case FieldUsername:
		return v.Username
	case FieldContact:
		return v.Contact
	case FieldDateOfBirth:
		return v.DateOfBirth
	case FieldAddress:
		return v.Address
	case FieldBio:
		return v.Bio
	default:
		return ""
	}
}

func ToProfileValues(profile domain.Profile) ProfileValues {
	return ProfileValues{
		FirstName:   profile.FirstName,
		LastName:    profile.LastName,
		Username:    profile.Username,
		Contact:     strconv.FormatInt(profile.Contact, 10),
		DateOfBirth: profile.DateOfBirth,
		Address:     profile.Address,
		Bio:         profile.Bio,
	}
}

// ToProfile coerces the validated values into a profile owned by userID.
func ToProfile(values ProfileValues, userID domain.UserID) (domain.Profile, error) {
	contact, err := strconv.ParseInt(values.Contact, 10, 64)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("parse contact: %w", err)
	}

	return domain.Profile{
		UserID:      userID,
		FirstName:   values.FirstName,
		LastName:    values.LastName,
		Username:    values.Username,
		Contact:     contact,
		DateOfBirth: values.DateOfBirth,
		Address:     values.Address,
		Bio:         values.Bio,
	}, nil
}

func message(field Field, tag, param string) string {
	label := labels[field]
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, param)
	case "max":
		unit := "characters"
		if field == FieldContact {
			unit = "digits"
		}
		return fmt.Sprintf("%s must not exceed %s %s", label, param, unit)
	case "personname":
		return "Name should not contain numbers or special characters"
	case "word":
		return "Username may only contain letters, numbers and underscores"
	case "digits":
		return fmt.Sprintf("%s must contain digits only", label)
	case "datetime":
		return fmt.Sprintf("%s must be a valid date", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("form")
	})

	mustRegisterPattern(v, "personname", personNamePattern)
	mustRegisterPattern(v, "word", wordPattern)
	mustRegisterPattern(v, "digits", digitsPattern)
	return v
}

func mustRegisterPattern(v *validator.Validate, tag string, pattern *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Errorf("register %s validation: %w", tag, err))
	}
}
