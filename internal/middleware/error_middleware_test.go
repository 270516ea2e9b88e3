package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoech/police-profiling/internal/app/models/dto"
	"github.com/mkoech/police-profiling/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"auth required", apperrors.ErrAuthenticationRequired, http.StatusUnauthorized, dto.ErrorCodeUnauthorized},
		{"revoked session", apperrors.ErrSessionRevoked, http.StatusUnauthorized, dto.ErrorCodeUnauthorized},
		{"pending activation", apperrors.ErrAccountPendingActivation, http.StatusForbidden, dto.ErrorCodeAccountInactive},
		{"no officer profile", apperrors.ErrNoOfficerProfile, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"rank not authorized", apperrors.ErrRankNotAuthorized, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"officer not found", apperrors.ErrOfficerNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"criminal not found", apperrors.ErrCriminalNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"username taken", apperrors.ErrUsernameExists, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"invalid request", apperrors.ErrInvalidRequest, http.StatusBadRequest, dto.ErrorCodeInvalidRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleAPIErrorWrappedMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	err := apperrors.New(apperrors.ErrTargetRankTooHigh,
		"You cannot activate/deactivate an officer with rank Commissioner")
	HandleAPIError(c, err)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeForbidden, resp.Error.Code)
	assert.Equal(t, "You cannot activate/deactivate an officer with rank Commissioner", resp.Error.Message)
}

func TestHandleAPIErrorDuplicateDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", nil)

	HandleAPIError(c, apperrors.ErrFingerprintCodeExists)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "A criminal with this fingerprint code already exists", resp.Error.Details["fingerprintCode"])
}

func TestHandleAPIErrorHidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, errors.New("pq: connection refused"))

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "An unexpected error occurred", resp.Error.Message)
	assert.NotContains(t, resp.Error.Message, "connection refused")
}
