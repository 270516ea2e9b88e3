package models

import (
	"time"

	"github.com/google/uuid"
)

// CriminalDocument is an official document attached to a criminal
// profile.
type CriminalDocument struct {
	ID           uuid.UUID    `json:"id"`
	CriminalID   uuid.UUID    `json:"criminalId"`
	DocumentType DocumentType `json:"documentType"`
	File         string       `json:"file"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	DateUploaded time.Time    `json:"dateUploaded"`
	UploadedByID *int64       `json:"uploadedById,omitempty"`
}
