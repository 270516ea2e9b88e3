package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/mkoech/police-profiling/internal/app/models"
)

// CreateDocumentRequest is the multipart form accompanying a document
// upload.
type CreateDocumentRequest struct {
	CriminalID   uuid.UUID `form:"criminalId" binding:"required"`
	DocumentType string    `form:"documentType" binding:"required,oneof=ARREST_REPORT COURT_DOCUMENT MEDICAL_REPORT FINGERPRINT WARRANT OTHER"`
	Title        string    `form:"title" binding:"required,max=200"`
	Description  string    `form:"description"`
}

// UpdateDocumentRequest edits the document metadata.
type UpdateDocumentRequest struct {
	DocumentType *string `json:"documentType" binding:"omitempty,oneof=ARREST_REPORT COURT_DOCUMENT MEDICAL_REPORT FINGERPRINT WARRANT OTHER"`
	Title        *string `json:"title" binding:"omitempty,max=200"`
	Description  *string `json:"description"`
}

// DocumentResponse is the document projection for list, detail and
// nesting.
type DocumentResponse struct {
	ID           uuid.UUID           `json:"id"`
	CriminalID   uuid.UUID           `json:"criminalId"`
	DocumentType models.DocumentType `json:"documentType"`
	FileURL      string              `json:"fileUrl"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	DateUploaded time.Time           `json:"dateUploaded"`
	UploadedByID *int64              `json:"uploadedById,omitempty"`
}

// NewDocumentResponse projects a model onto the response form.
func NewDocumentResponse(d *models.CriminalDocument, baseURL string) DocumentResponse {
	return DocumentResponse{
		ID:           d.ID,
		CriminalID:   d.CriminalID,
		DocumentType: d.DocumentType,
		FileURL:      baseURL + "/" + d.File,
		Title:        d.Title,
		Description:  d.Description,
		DateUploaded: d.DateUploaded,
		UploadedByID: d.UploadedByID,
	}
}
