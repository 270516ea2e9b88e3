// Package auth holds the rank-based authorization rules for officer
// account management.
package auth

import (
	"github.com/mkoech/police-profiling/internal/app/models"
)

// CanActivateOfficers reports whether a rank carries the activation
// capability. Only Inspectors and Commissioners may activate or
// deactivate accounts.
func CanActivateOfficers(rank models.Rank) bool {
	return rank.Level() >= models.RankInspector.Level()
}

// CanActivateTarget reports whether an actor of the given rank may
// activate or deactivate an officer of the target rank. Commissioners
// may act on anyone; Inspectors only on Constables and Sergeants.
func CanActivateTarget(actor, target models.Rank) bool {
	switch actor {
	case models.RankCommissioner:
		return true
	case models.RankInspector:
		return target.Level() < models.RankInspector.Level()
	default:
		return false
	}
}

// ActivationScope returns the set of ranks whose inactive accounts an
// actor may see and act on, or nil when the actor has no activation
// capability.
func ActivationScope(actor models.Rank) []models.Rank {
	if !CanActivateOfficers(actor) {
		return nil
	}
	scope := make([]models.Rank, 0, 4)
	for _, r := range models.AllRanks() {
		if CanActivateTarget(actor, r) {
			scope = append(scope, r)
		}
	}
	return scope
}
