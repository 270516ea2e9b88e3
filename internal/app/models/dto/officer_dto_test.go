package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoech/police-profiling/internal/app/models"
)

func TestNewOfficerSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rank            models.Rank
		wantCanActivate bool
	}{
		{models.RankConstable, false},
		{models.RankSergeant, false},
		{models.RankInspector, true},
		{models.RankCommissioner, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.rank), func(t *testing.T) {
			t.Parallel()
			summary := NewOfficerSummary(&models.Officer{
				ID:          7,
				BadgeNumber: "B-1007",
				Rank:        tt.rank,
				Station:     "Central",
				IsActive:    true,
			})
			require.NotNil(t, summary)
			assert.Equal(t, tt.wantCanActivate, summary.CanActivateUsers)
			assert.Equal(t, "B-1007", summary.BadgeNumber)
		})
	}

	assert.Nil(t, NewOfficerSummary(nil))
}

func TestNewOfficerResponse(t *testing.T) {
	t.Parallel()

	email := "jdoe@police.gov"
	officer := &models.Officer{
		ID:          3,
		BadgeNumber: "B-1003",
		Rank:        models.RankSergeant,
		Station:     "North",
		IsActive:    false,
		User: &models.User{
			Username:  "jdoe",
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     &email,
		},
	}

	resp := NewOfficerResponse(officer)
	assert.Equal(t, "jdoe", resp.Username)
	assert.Equal(t, "Jane", resp.FirstName)
	assert.Equal(t, "Doe", resp.LastName)
	require.NotNil(t, resp.Email)
	assert.Equal(t, email, *resp.Email)
	assert.False(t, resp.IsActive)
}

func TestNewOfficerResponseWithoutUser(t *testing.T) {
	t.Parallel()

	resp := NewOfficerResponse(&models.Officer{ID: 1, BadgeNumber: "B-1"})
	assert.Empty(t, resp.Username)
	assert.Nil(t, resp.Email)
}
