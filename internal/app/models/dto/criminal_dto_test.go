package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoech/police-profiling/internal/app/models"
)

const testBaseURL = "http://localhost:8080/uploads"

func TestNewCriminalSummary(t *testing.T) {
	t.Parallel()

	dob := time.Date(1985, time.April, 10, 0, 0, 0, 0, time.UTC)
	picture := "criminals/abc/images/pic.jpg"
	criminal := &models.Criminal{
		ID:             uuid.New(),
		FirstName:      "Carlos",
		LastName:       "Vargas",
		DateOfBirth:    &dob,
		Gender:         models.GenderMale,
		ThreatLevel:    models.ThreatHigh,
		IsIncarcerated: true,
		CrimesCount:    3,
		ProfilePicture: &picture,
	}

	now := time.Date(2026, time.August, 27, 12, 0, 0, 0, time.UTC)
	summary := NewCriminalSummary(criminal, now, testBaseURL)

	assert.Equal(t, "Carlos Vargas", summary.FullName)
	require.NotNil(t, summary.Age)
	assert.Equal(t, 41, *summary.Age)
	assert.Equal(t, 3, summary.CrimesCount)
	require.NotNil(t, summary.ProfilePictureURL)
	assert.Equal(t, testBaseURL+"/"+picture, *summary.ProfilePictureURL)
}

func TestNewCriminalSummaryWithoutOptionalFields(t *testing.T) {
	t.Parallel()

	summary := NewCriminalSummary(&models.Criminal{
		FirstName: "Unknown",
		LastName:  "Subject",
		Gender:    models.GenderUnknown,
	}, time.Now(), testBaseURL)

	assert.Nil(t, summary.Age)
	assert.Nil(t, summary.ProfilePictureURL)
}

func TestNewCriminalDetail(t *testing.T) {
	t.Parallel()

	criminalID := uuid.New()
	criminal := &models.Criminal{
		ID:             criminalID,
		FirstName:      "Carlos",
		LastName:       "Vargas",
		ThreatLevel:    models.ThreatExtreme,
		IsIncarcerated: false,
	}
	crimes := []*models.Crime{
		{ID: uuid.New(), CriminalID: criminalID, CrimeType: models.CrimeRobbery},
	}
	evidence := []*models.CriminalEvidence{
		{ID: uuid.New(), CriminalID: criminalID, EvidenceType: models.EvidencePhoto, File: "criminals/x/evidence/a.jpg"},
	}
	documents := []*models.CriminalDocument{}

	detail := NewCriminalDetail(criminal, crimes, evidence, documents, time.Now(), testBaseURL)

	assert.True(t, detail.IsHighRisk)
	assert.Equal(t, "At Large", detail.IncarcerationStatus)
	require.Len(t, detail.Crimes, 1)
	require.Len(t, detail.Evidence, 1)
	assert.Equal(t, testBaseURL+"/criminals/x/evidence/a.jpg", detail.Evidence[0].FileURL)
	assert.NotNil(t, detail.Documents)
	assert.Empty(t, detail.Documents)
}
