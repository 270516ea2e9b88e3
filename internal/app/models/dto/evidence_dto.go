package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/mkoech/police-profiling/internal/app/models"
)

// CreateEvidenceRequest is the multipart form accompanying an evidence
// upload.
type CreateEvidenceRequest struct {
	CriminalID   uuid.UUID `form:"criminalId" binding:"required"`
	EvidenceType string    `form:"evidenceType" binding:"required,oneof=PHOTO VIDEO AUDIO DOCUMENT WEAPON OTHER"`
	Description  string    `form:"description" binding:"required"`
}

// UpdateEvidenceRequest edits the evidence metadata.
type UpdateEvidenceRequest struct {
	EvidenceType *string `json:"evidenceType" binding:"omitempty,oneof=PHOTO VIDEO AUDIO DOCUMENT WEAPON OTHER"`
	Description  *string `json:"description"`
}

// EvidenceResponse is the evidence projection for list, detail and
// nesting.
type EvidenceResponse struct {
	ID            uuid.UUID           `json:"id"`
	CriminalID    uuid.UUID           `json:"criminalId"`
	EvidenceType  models.EvidenceType `json:"evidenceType"`
	FileURL       string              `json:"fileUrl"`
	Description   string              `json:"description"`
	DateCollected time.Time           `json:"dateCollected"`
	CollectedByID *int64              `json:"collectedById,omitempty"`
}

// NewEvidenceResponse projects a model onto the response form.
func NewEvidenceResponse(e *models.CriminalEvidence, baseURL string) EvidenceResponse {
	return EvidenceResponse{
		ID:            e.ID,
		CriminalID:    e.CriminalID,
		EvidenceType:  e.EvidenceType,
		FileURL:       baseURL + "/" + e.File,
		Description:   e.Description,
		DateCollected: e.DateCollected,
		CollectedByID: e.CollectedByID,
	}
}
