package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkoech/police-profiling/internal/app/models"
)

func TestCanActivateOfficers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rank models.Rank
		want bool
	}{
		{models.RankConstable, false},
		{models.RankSergeant, false},
		{models.RankInspector, true},
		{models.RankCommissioner, true},
		{models.Rank("CHIEF"), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.rank), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CanActivateOfficers(tt.rank))
		})
	}
}

func TestCanActivateTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		actor  models.Rank
		target models.Rank
		want   bool
	}{
		{"commissioner on constable", models.RankCommissioner, models.RankConstable, true},
		{"commissioner on sergeant", models.RankCommissioner, models.RankSergeant, true},
		{"commissioner on inspector", models.RankCommissioner, models.RankInspector, true},
		{"commissioner on commissioner", models.RankCommissioner, models.RankCommissioner, true},
		{"inspector on constable", models.RankInspector, models.RankConstable, true},
		{"inspector on sergeant", models.RankInspector, models.RankSergeant, true},
		{"inspector on inspector", models.RankInspector, models.RankInspector, false},
		{"inspector on commissioner", models.RankInspector, models.RankCommissioner, false},
		{"sergeant on constable", models.RankSergeant, models.RankConstable, false},
		{"constable on constable", models.RankConstable, models.RankConstable, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CanActivateTarget(tt.actor, tt.target))
		})
	}
}

func TestActivationScope(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ActivationScope(models.RankConstable))
	assert.Nil(t, ActivationScope(models.RankSergeant))

	assert.Equal(t,
		[]models.Rank{models.RankConstable, models.RankSergeant},
		ActivationScope(models.RankInspector))

	assert.Equal(t,
		[]models.Rank{models.RankConstable, models.RankSergeant, models.RankInspector, models.RankCommissioner},
		ActivationScope(models.RankCommissioner))
}
