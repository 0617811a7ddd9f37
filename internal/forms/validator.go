// Package forms validates dashboard form input before anything reaches the
// network.
package forms

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	appErrors "github.com/noah-isme/edu-admin-client/pkg/errors"
)

const notBlankTag = "notblank"

// Validator checks structs and reports English field messages keyed by the
// JSON field name.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// NewValidator builds a validator with English messages.
func NewValidator() (*Validator, error) {
	validate := validator.New()

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation(notBlankTag, notBlank); err != nil {
		return nil, err
	}
	err := validate.RegisterTranslation(notBlankTag, trans, func(ut.Translator) error { return nil },
		func(_ ut.Translator, fe validator.FieldError) string {
			return fe.Field() + " cannot be blank"
		})
	if err != nil {
		return nil, err
	}

	return &Validator{validate: validate, trans: trans}, nil
}

// Check validates payload. Failures come back as a VALIDATION_ERROR whose
// Fields hold one message per failed rule.
func (v *Validator) Check(payload interface{}) error {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, appErrors.ErrValidation.Message)
	}
	fields := make(map[string][]string, len(fieldErrs))
	first := ""
	for _, fe := range fieldErrs {
		msg := fe.Translate(v.trans)
		if first == "" {
			first = msg
		}
		fields[fe.Field()] = append(fields[fe.Field()], msg)
	}
	appErr := appErrors.Clone(appErrors.ErrValidation, first)
	appErr.Fields = fields
	return appErr
}

func notBlank(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return true
}
