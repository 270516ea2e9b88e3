// Package services implements the business rules between the HTTP layer
// and the repositories.
package services

import (
	"strings"

	"github.com/mkoech/police-profiling/internal/app/repositories"
	"github.com/mkoech/police-profiling/internal/config"
	"github.com/mkoech/police-profiling/internal/db"
	"github.com/mkoech/police-profiling/internal/pkg/auth"
	"github.com/mkoech/police-profiling/internal/pkg/filestorage"
)

// Services bundles every service for dependency injection.
type Services struct {
	Auth      *AuthService
	Officers  *OfficerService
	Criminals *CriminalService
	Crimes    *CrimeService
	Evidence  *EvidenceService
	Documents *DocumentService
}

// NewServices wires the service layer.
func NewServices(repos *repositories.Repositories, database *db.PostgresDB, jwtService *auth.JWTService, storage filestorage.FileStorage, cfg *config.Config) *Services {
	uploadsBaseURL := strings.TrimRight(cfg.Server.BaseURL, "/") + "/uploads"

	return &Services{
		Auth:      NewAuthService(repos.Users, repos.Officers, repos.Sessions, database, jwtService),
		Officers:  NewOfficerService(repos.Officers, repos.Sessions),
		Criminals: NewCriminalService(repos.Criminals, repos.Crimes, repos.Evidence, repos.Documents, storage, uploadsBaseURL),
		Crimes:    NewCrimeService(repos.Crimes, repos.Criminals),
		Evidence:  NewEvidenceService(repos.Evidence, repos.Criminals, storage, uploadsBaseURL),
		Documents: NewDocumentService(repos.Documents, repos.Criminals, storage, uploadsBaseURL),
	}
}
