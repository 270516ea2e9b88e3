package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankLevelOrdering(t *testing.T) {
	t.Parallel()

	assert.Less(t, RankConstable.Level(), RankSergeant.Level())
	assert.Less(t, RankSergeant.Level(), RankInspector.Level())
	assert.Less(t, RankInspector.Level(), RankCommissioner.Level())
	assert.Zero(t, Rank("CAPTAIN").Level())
}

func TestRankIsValid(t *testing.T) {
	t.Parallel()

	for _, r := range AllRanks() {
		assert.True(t, r.IsValid(), r)
	}
	assert.False(t, Rank("").IsValid())
	assert.False(t, Rank("constable").IsValid())
}

func TestGenderLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "MALE", GenderMale.Label())
	assert.Equal(t, "FEMALE", GenderFemale.Label())
	assert.Equal(t, "OTHER", GenderOther.Label())
	assert.Equal(t, "UNKNOWN", GenderUnknown.Label())
	assert.Equal(t, "UNKNOWN", Gender("X").Label())
}

func TestThreatLevelIsValid(t *testing.T) {
	t.Parallel()

	for _, tl := range AllThreatLevels() {
		assert.True(t, tl.IsValid(), tl)
	}
	assert.False(t, ThreatLevel("SEVERE").IsValid())
	assert.False(t, ThreatLevel("").IsValid())
}
