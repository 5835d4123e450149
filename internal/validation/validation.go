// Package validation checks request inputs before anything reaches the store.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// MsgInvalidEmail is returned alone when an email address fails the grammar check.
const MsgInvalidEmail = "Email Address is missing or is not valid"

// messages maps a JSON field name to its "required" message.
var messages = map[string]string{
	"firstName":    "First name is required",
	"lastName":     "Last name is required",
	"emailAddress": "Email address is required",
	"password":     "Password is required",
	"title":        "Title is required",
	"description":  "Description is required",
}

// Validator collects field violations as human readable messages.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator whose errors are keyed by JSON field names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct validates s and returns every violation in field order.
// A nil slice means s is valid.
func (v *Validator) Struct(s any) ([]string, error) {
	err := v.validate.Struct(s)
	if err == nil {
		return nil, nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, err
	}
	out := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, message(fe))
	}
	return out, nil
}

func message(fe validator.FieldError) string {
	if msg, ok := messages[fe.Field()]; ok {
		return msg
	}
	return fe.Field() + " is not valid"
}
