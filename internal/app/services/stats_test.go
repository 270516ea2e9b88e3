package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkoech/police-profiling/internal/app/repositories"
)

func TestBuildStatsResponseZeroFills(t *testing.T) {
	t.Parallel()

	resp := BuildStatsResponse(&repositories.Stats{
		ByThreat: map[string]int64{},
		ByGender: map[string]int64{},
	})

	assert.Equal(t, map[string]int64{
		"LOW": 0, "MEDIUM": 0, "HIGH": 0, "EXTREME": 0,
	}, resp.ThreatLevels)
	assert.Equal(t, map[string]int64{
		"MALE": 0, "FEMALE": 0, "OTHER": 0, "UNKNOWN": 0,
	}, resp.Genders)
	assert.Zero(t, resp.TotalCriminals)
}

func TestBuildStatsResponse(t *testing.T) {
	t.Parallel()

	resp := BuildStatsResponse(&repositories.Stats{
		Total:        10,
		Incarcerated: 4,
		AtLarge:      6,
		ByThreat:     map[string]int64{"HIGH": 3, "LOW": 7},
		ByGender:     map[string]int64{"M": 8, "F": 2},
	})

	assert.Equal(t, int64(10), resp.TotalCriminals)
	assert.Equal(t, int64(4), resp.Incarcerated)
	assert.Equal(t, int64(6), resp.AtLarge)

	// Populated categories carry through, missing ones stay zero, and
	// gender keys use the long-form labels.
	assert.Equal(t, map[string]int64{
		"LOW": 7, "MEDIUM": 0, "HIGH": 3, "EXTREME": 0,
	}, resp.ThreatLevels)
	assert.Equal(t, map[string]int64{
		"MALE": 8, "FEMALE": 2, "OTHER": 0, "UNKNOWN": 0,
	}, resp.Genders)
}
