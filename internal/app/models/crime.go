package models

import (
	"time"

	"github.com/google/uuid"
)

// Crime is a single recorded offence attributed to a criminal.
type Crime struct {
	ID                 uuid.UUID   `json:"id"`
	CriminalID         uuid.UUID   `json:"criminalId"`
	CrimeType          CrimeType   `json:"crimeType"`
	Description        string      `json:"description"`
	DateCommitted      time.Time   `json:"dateCommitted"`
	Location           string      `json:"location"`
	Status             CrimeStatus `json:"status"`
	ArrestingOfficerID *int64      `json:"arrestingOfficerId,omitempty"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}
