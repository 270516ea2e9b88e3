package dto

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleValidationError(t *testing.T) {
	t.Parallel()

	type form struct {
		Username string `validate:"required,min=3"`
		Email    string `validate:"omitempty,email"`
		Rank     string `validate:"required,oneof=Constable Sergeant Inspector Commissioner"`
	}

	v := validator.New()
	err := v.Struct(form{Email: "not-an-email", Rank: "General"})
	require.Error(t, err)

	detail := HandleValidationError(err)

	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
	assert.Equal(t, "This field is required", detail.Details["username"])
	assert.Equal(t, "Must be a valid email address", detail.Details["email"])
	assert.Equal(t, "Must be one of: Constable Sergeant Inspector Commissioner", detail.Details["rank"])
}

func TestHandleValidationErrorNonValidator(t *testing.T) {
	t.Parallel()

	detail := HandleValidationError(errors.New("unexpected EOF"))
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
	assert.Equal(t, "unexpected EOF", detail.Message)
	assert.Empty(t, detail.Details)
}
