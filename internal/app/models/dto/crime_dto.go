package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/mkoech/police-profiling/internal/app/models"
)

// CreateCrimeRequest records a new offence against a criminal.
type CreateCrimeRequest struct {
	CriminalID    uuid.UUID `json:"criminalId" binding:"required"`
	CrimeType     string    `json:"crimeType" binding:"required,oneof=THEFT ASSAULT BURGLARY ROBBERY DRUGS FRAUD HOMICIDE OTHER"`
	Description   string    `json:"description" binding:"required"`
	DateCommitted string    `json:"dateCommitted" binding:"required,datetime=2006-01-02"`
	Location      string    `json:"location" binding:"required,max=200"`
	Status        string    `json:"status" binding:"omitempty,oneof=OPEN CLOSED CONVICTED"`
}

// UpdateCrimeRequest edits an existing crime record.
type UpdateCrimeRequest struct {
	CrimeType     *string `json:"crimeType" binding:"omitempty,oneof=THEFT ASSAULT BURGLARY ROBBERY DRUGS FRAUD HOMICIDE OTHER"`
	Description   *string `json:"description"`
	DateCommitted *string `json:"dateCommitted" binding:"omitempty,datetime=2006-01-02"`
	Location      *string `json:"location" binding:"omitempty,max=200"`
	Status        *string `json:"status" binding:"omitempty,oneof=OPEN CLOSED CONVICTED"`
}

// CrimeResponse is the crime projection for list, detail and nesting.
type CrimeResponse struct {
	ID                 uuid.UUID          `json:"id"`
	CriminalID         uuid.UUID          `json:"criminalId"`
	CrimeType          models.CrimeType   `json:"crimeType"`
	Description        string             `json:"description"`
	DateCommitted      time.Time          `json:"dateCommitted"`
	Location           string             `json:"location"`
	Status             models.CrimeStatus `json:"status"`
	ArrestingOfficerID *int64             `json:"arrestingOfficerId,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
}

// NewCrimeResponse projects a model onto the response form.
func NewCrimeResponse(c *models.Crime) CrimeResponse {
	return CrimeResponse{
		ID:                 c.ID,
		CriminalID:         c.CriminalID,
		CrimeType:          c.CrimeType,
		Description:        c.Description,
		DateCommitted:      c.DateCommitted,
		Location:           c.Location,
		Status:             c.Status,
		ArrestingOfficerID: c.ArrestingOfficerID,
		CreatedAt:          c.CreatedAt,
	}
}
