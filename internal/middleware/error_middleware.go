// Package middleware holds the gin middleware for authentication and
// centralized error mapping.
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkoech/police-profiling/internal/app/models/dto"
	"github.com/mkoech/police-profiling/internal/pkg/apperrors"
	"github.com/mkoech/police-profiling/internal/pkg/logger"
)

// HandleAPIError maps a service error onto the HTTP error envelope.
// Every controller routes its failures through here so status codes and
// error codes stay consistent.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := mapError(err)

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
	}

	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: detail})
}

// HandleValidationError maps a binding error onto a 400 with per-field
// details.
func HandleValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: dto.HandleValidationError(err),
	})
}

func mapError(err error) (int, dto.ErrorDetail) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")

	case errors.Is(err, apperrors.ErrAuthenticationRequired),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrSessionRevoked):
		return http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")

	case errors.Is(err, apperrors.ErrAccountPendingActivation):
		return http.StatusForbidden,
			dto.NewErrorDetail(dto.ErrorCodeAccountInactive, err.Error())

	case errors.Is(err, apperrors.ErrNoOfficerProfile),
		errors.Is(err, apperrors.ErrRankNotAuthorized),
		errors.Is(err, apperrors.ErrTargetRankTooHigh),
		errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden,
			dto.NewErrorDetail(dto.ErrorCodeForbidden, err.Error())

	case errors.Is(err, apperrors.ErrUsernameExists):
		return http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
				WithDetails(map[string]string{"username": "An officer with this username already exists"})

	case errors.Is(err, apperrors.ErrBadgeNumberExists):
		return http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
				WithDetails(map[string]string{"badgeNumber": "An officer with this badge number already exists"})

	case errors.Is(err, apperrors.ErrFingerprintCodeExists):
		return http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
				WithDetails(map[string]string{"fingerprintCode": "A criminal with this fingerprint code already exists"})

	case errors.Is(err, apperrors.ErrDNAProfileExists):
		return http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
				WithDetails(map[string]string{"dnaProfile": "A criminal with this DNA profile already exists"})

	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return http.StatusConflict,
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())

	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())

	case errors.Is(err, apperrors.ErrInvalidRequest):
		return http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, err.Error())

	case errors.Is(err, apperrors.ErrOfficerNotFound),
		errors.Is(err, apperrors.ErrCriminalNotFound),
		errors.Is(err, apperrors.ErrCrimeNotFound),
		errors.Is(err, apperrors.ErrEvidenceNotFound),
		errors.Is(err, apperrors.ErrDocumentNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound,
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())

	default:
		return http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An unexpected error occurred")
	}
}
