package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// APIResponse is the envelope for every 2xx response body.
type APIResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// NewSuccessResponse wraps payload data in the standard envelope.
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{Data: data}
}

// NewMessageResponse wraps a plain message in the standard envelope.
func NewMessageResponse(message string) APIResponse {
	return APIResponse{Message: message}
}

// PaginationInfo describes the page window of a list response.
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
}

// HandleValidationError converts a validator error into a VAL_001 detail
// with one entry per failed field.
func HandleValidationError(err error) ErrorDetail {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewErrorDetail(ErrorCodeValidationFailed, err.Error())
	}

	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[strings.ToLower(fe.Field())] = validationMessage(fe)
	}
	return NewErrorDetail(ErrorCodeValidationFailed, "One or more fields failed validation").
		WithDetails(details)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	case "uuid":
		return "Must be a valid UUID"
	default:
		return fmt.Sprintf("Failed validation rule: %s", fe.Tag())
	}
}
