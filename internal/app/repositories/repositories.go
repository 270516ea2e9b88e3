// Package repositories implements data access over PostgreSQL with pgx
// and squirrel statement builders.
package repositories

import (
	"github.com/Masterminds/squirrel"

	"github.com/mkoech/police-profiling/internal/db"
)

// psql builds statements with PostgreSQL dollar placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repositories bundles every repository for dependency injection.
type Repositories struct {
	Users     *UserRepository
	Officers  *OfficerRepository
	Sessions  *SessionRepository
	Criminals *CriminalRepository
	Crimes    *CrimeRepository
	Evidence  *EvidenceRepository
	Documents *DocumentRepository
}

// NewRepositories wires every repository to the shared database.
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(database),
		Officers:  NewOfficerRepository(database),
		Sessions:  NewSessionRepository(database),
		Criminals: NewCriminalRepository(database),
		Crimes:    NewCrimeRepository(database),
		Evidence:  NewEvidenceRepository(database),
		Documents: NewDocumentRepository(database),
	}
}
