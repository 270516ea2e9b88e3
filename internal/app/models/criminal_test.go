package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCriminalAge(t *testing.T) {
	t.Parallel()

	now := date(2026, time.June, 15)

	tests := []struct {
		name string
		dob  *time.Time
		want *int
	}{
		{"birthday passed this year", ptr(date(1990, time.March, 1)), intPtr(36)},
		{"birthday later this year", ptr(date(1990, time.December, 1)), intPtr(35)},
		{"birthday today", ptr(date(1990, time.June, 15)), intPtr(36)},
		{"unknown", nil, nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := Criminal{DateOfBirth: tt.dob}
			got := c.Age(now)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestCriminalFullName(t *testing.T) {
	t.Parallel()

	c := Criminal{FirstName: "John", LastName: "Doe"}
	assert.Equal(t, "John Doe", c.FullName())
}

func TestCriminalIsHighRisk(t *testing.T) {
	t.Parallel()

	assert.False(t, (&Criminal{ThreatLevel: ThreatLow}).IsHighRisk())
	assert.False(t, (&Criminal{ThreatLevel: ThreatMedium}).IsHighRisk())
	assert.True(t, (&Criminal{ThreatLevel: ThreatHigh}).IsHighRisk())
	assert.True(t, (&Criminal{ThreatLevel: ThreatExtreme}).IsHighRisk())
}

func TestCriminalIncarcerationStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "In Custody", (&Criminal{IsIncarcerated: true}).IncarcerationStatus())
	assert.Equal(t, "At Large", (&Criminal{IsIncarcerated: false}).IncarcerationStatus())
}

func ptr(t time.Time) *time.Time { return &t }
func intPtr(i int) *int          { return &i }
