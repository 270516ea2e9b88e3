package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoech/police-profiling/internal/app/models"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func threatPtr(t models.ThreatLevel) *models.ThreatLevel { return &t }

func genderPtr(g models.Gender) *models.Gender { return &g }

func TestFreeTextCondition(t *testing.T) {
	t.Parallel()

	sql, args, err := FreeTextCondition("vargas").ToSql()
	require.NoError(t, err)

	// Every searchable column gets an ILIKE clause, OR-combined.
	assert.Contains(t, sql, "first_name ILIKE ?")
	assert.Contains(t, sql, "last_name ILIKE ?")
	assert.Contains(t, sql, "alias ILIKE ?")
	assert.Contains(t, sql, "nationality ILIKE ?")
	assert.Contains(t, sql, "description ILIKE ?")
	assert.Contains(t, sql, "known_associates ILIKE ?")
	assert.Contains(t, sql, "gang_affiliations ILIKE ?")
	assert.Contains(t, sql, " OR ")
	assert.NotContains(t, sql, " AND ")

	require.Len(t, args, 7)
	for _, arg := range args {
		assert.Equal(t, "%vargas%", arg)
	}
}

func TestApplyFilter(t *testing.T) {
	t.Parallel()

	base := psql.Select("id").From("criminals")

	t.Run("empty filter adds no conditions", func(t *testing.T) {
		t.Parallel()
		sql, args, err := ApplyFilter(base, CriminalFilter{}).ToSql()
		require.NoError(t, err)
		assert.Equal(t, "SELECT id FROM criminals", sql)
		assert.Empty(t, args)
	})

	t.Run("empty query string is ignored", func(t *testing.T) {
		t.Parallel()
		sql, _, err := ApplyFilter(base, CriminalFilter{Query: strPtr("")}).ToSql()
		require.NoError(t, err)
		assert.NotContains(t, sql, "ILIKE")
	})

	t.Run("filters are AND-combined", func(t *testing.T) {
		t.Parallel()
		filter := CriminalFilter{
			Query:          strPtr("cartel"),
			ThreatLevel:    threatPtr(models.ThreatHigh),
			IsIncarcerated: boolPtr(false),
			Gender:         genderPtr(models.GenderMale),
		}
		sql, args, err := ApplyFilter(base, filter).ToSql()
		require.NoError(t, err)

		assert.Contains(t, sql, "threat_level = $")
		assert.Contains(t, sql, "is_incarcerated = $")
		assert.Contains(t, sql, "gender = $")
		assert.Contains(t, sql, "ILIKE")
		// 7 free-text args + 3 equality args
		assert.Len(t, args, 10)
	})

	t.Run("boolean filter keeps explicit false", func(t *testing.T) {
		t.Parallel()
		sql, args, err := ApplyFilter(base, CriminalFilter{IsIncarcerated: boolPtr(false)}).ToSql()
		require.NoError(t, err)
		assert.Contains(t, sql, "is_incarcerated = $1")
		require.Len(t, args, 1)
		assert.Equal(t, false, args[0])
	})
}
