package models

import (
	"time"

	"github.com/google/uuid"
)

// CriminalEvidence is a file-backed piece of evidence attached to a
// criminal profile.
type CriminalEvidence struct {
	ID            uuid.UUID    `json:"id"`
	CriminalID    uuid.UUID    `json:"criminalId"`
	EvidenceType  EvidenceType `json:"evidenceType"`
	File          string       `json:"file"`
	Description   string       `json:"description"`
	DateCollected time.Time    `json:"dateCollected"`
	CollectedByID *int64       `json:"collectedById,omitempty"`
}
