package utils

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validationSample struct {
	FirstName string `binding:"required,max=50"`
	Document  string `binding:"required,len=9"`
	Email     string `binding:"omitempty,email"`
	Website   string `binding:"omitempty,url"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

func TestFieldErrorsSnakeCasesFieldNames(t *testing.T) {
	err := newValidator().Struct(validationSample{Document: "X1234567Y"})
	require.Error(t, err)

	fields := FieldErrors(err)
	require.NotNil(t, fields)
	assert.Contains(t, fields["first_name"], "is required")
	assert.NotContains(t, fields, "FirstName")
}

func TestFieldErrorsMessagesPerTag(t *testing.T) {
	err := newValidator().Struct(validationSample{
		FirstName: "Ada",
		Document:  "short",
		Email:     "not-an-email",
		Website:   "not a url",
	})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Contains(t, fields["document"], "must be exactly 9 characters")
	assert.Contains(t, fields["email"], "must be a valid email address")
	assert.Contains(t, fields["website"], "must be a valid URL")
}

func TestFieldErrorsIgnoresNonValidatorErrors(t *testing.T) {
	assert.Nil(t, FieldErrors(errors.New("unexpected EOF")))
}
