package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationMessages(t *testing.T) {
	type form struct {
		Title string `validate:"required"`
		Email string `validate:"omitempty,email"`
	}

	err := Validate.Struct(form{Email: "nope"})
	assert.Equal(t, []string{
		"Field 'Title' failed validation tag 'required'",
		"Field 'Email' failed validation tag 'email'",
	}, ValidationMessages(err))

	assert.Equal(t, []string{"boom"}, ValidationMessages(errors.New("boom")))
}
