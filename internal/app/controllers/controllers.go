// Package controllers holds the gin handlers. Controllers bind and
// validate requests, delegate to services and map failures through the
// shared error middleware.
package controllers

import (
	"github.com/mkoech/police-profiling/internal/app/services"
)

// Controllers bundles every controller for route registration.
type Controllers struct {
	Auth      *AuthController
	Officers  *OfficerController
	Criminals *CriminalController
	Crimes    *CrimeController
	Evidence  *EvidenceController
	Documents *DocumentController
}

// NewControllers wires the controller layer.
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		Auth:      NewAuthController(svcs.Auth),
		Officers:  NewOfficerController(svcs.Officers),
		Criminals: NewCriminalController(svcs.Criminals),
		Crimes:    NewCrimeController(svcs.Crimes),
		Evidence:  NewEvidenceController(svcs.Evidence),
		Documents: NewDocumentController(svcs.Documents),
	}
}
