package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Validate is the validator shared by the admin forms.
var Validate = validator.New() //nolint:gochecknoglobals

// ValidationMessages turns validator errors into messages for the form template.
func ValidationMessages(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, len(validationErrors))
	for i, ve := range validationErrors {
		messages[i] = "Field '" + ve.Field() + "' failed validation tag '" + ve.Tag() + "'"
	}

	return messages
}
