package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/mkoech/police-profiling/internal/db"
)

// SessionRepository stores issued session tokens so they can be revoked
// on logout.
type SessionRepository struct {
	db *db.PostgresDB
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(database *db.PostgresDB) *SessionRepository {
	return &SessionRepository{db: database}
}

// Create records a newly issued session token.
func (r *SessionRepository) Create(ctx context.Context, tokenID uuid.UUID, userID int64, expiresAt time.Time) error {
	query, args, err := psql.Insert("sessions").
		Columns("token_id", "user_id", "expires_at").
		Values(tokenID, userID, expiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build session insert: %w", err)
	}

	if _, err := r.db.Pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// IsActive reports whether a session token is still stored and unexpired.
func (r *SessionRepository) IsActive(ctx context.Context, tokenID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM sessions WHERE token_id = $1 AND expires_at > NOW())",
		tokenID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return exists, nil
}

// RevokeAllForUser removes every session belonging to a user. Removing
// zero rows is not an error.
func (r *SessionRepository) RevokeAllForUser(ctx context.Context, userID int64) error {
	query, args, err := psql.Delete("sessions").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build session delete: %w", err)
	}

	if _, err := r.db.Pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}
	return nil
}

// DeleteExpired clears out sessions past their expiry.
func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Pool.Exec(ctx, "DELETE FROM sessions WHERE expires_at <= NOW()")
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
