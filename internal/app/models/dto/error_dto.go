package dto

// ErrorCode identifies a class of API error in machine-readable form.
type ErrorCode string

const (
	// Authentication / authorization
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeUnauthorized       ErrorCode = "AUTH_002"
	ErrorCodeInvalidToken       ErrorCode = "AUTH_003"
	ErrorCodeAccountInactive    ErrorCode = "AUTH_004"
	ErrorCodeForbidden          ErrorCode = "AUTH_005"

	// Resources
	ErrorCodeResourceNotFound      ErrorCode = "RES_001"
	ErrorCodeResourceAlreadyExists ErrorCode = "RES_002"

	// Validation
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeInvalidRequest   ErrorCode = "VAL_002"

	// Server
	ErrorCodeInternalServer ErrorCode = "SRV_001"
)

// ErrorDetail is the error payload carried inside an ErrorResponse.
type ErrorDetail struct {
	Code    ErrorCode         `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// ErrorResponse is the envelope for every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// NewErrorDetail builds an ErrorDetail with no field details.
func NewErrorDetail(code ErrorCode, message string) ErrorDetail {
	return ErrorDetail{Code: code, Message: message}
}

// WithDetails attaches per-field messages to the detail.
func (e ErrorDetail) WithDetails(details map[string]string) ErrorDetail {
	e.Details = details
	return e
}
