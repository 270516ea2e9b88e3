package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/mkoech/police-profiling/internal/app/models"
	"github.com/mkoech/police-profiling/internal/db"
	"github.com/mkoech/police-profiling/internal/pkg/apperrors"
)

// OfficerRepository accesses the officers table and its joined identity
// rows.
type OfficerRepository struct {
	db *db.PostgresDB
}

// NewOfficerRepository creates a new OfficerRepository.
func NewOfficerRepository(database *db.PostgresDB) *OfficerRepository {
	return &OfficerRepository{db: database}
}

// officerJoinColumns selects the officer row plus its user row.
var officerJoinColumns = []string{
	"o.id", "o.user_id", "o.badge_number", "o.rank", "o.station",
	"o.is_active", "o.created_at", "o.updated_at",
	"u.id", "u.username", "u.password", "u.first_name", "u.last_name",
	"u.email", "u.created_at", "u.updated_at",
}

func scanOfficerWithUser(row pgx.Row) (*models.Officer, error) {
	var o models.Officer
	var u models.User
	err := row.Scan(
		&o.ID, &o.UserID, &o.BadgeNumber, &o.Rank, &o.Station,
		&o.IsActive, &o.CreatedAt, &o.UpdatedAt,
		&u.ID, &u.Username, &u.Password, &u.FirstName, &u.LastName,
		&u.Email, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.User = &u
	return &o, nil
}

func (r *OfficerRepository) selectWithUser() squirrel.SelectBuilder {
	return psql.Select(officerJoinColumns...).
		From("officers o").
		Join("users u ON u.id = o.user_id")
}

// CreateTx inserts an officer inside an existing transaction.
func (r *OfficerRepository) CreateTx(ctx context.Context, tx pgx.Tx, officer *models.Officer) error {
	query, args, err := psql.Insert("officers").
		Columns("user_id", "badge_number", "rank", "station", "is_active").
		Values(officer.UserID, officer.BadgeNumber, officer.Rank, officer.Station, officer.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build officer insert: %w", err)
	}

	return tx.QueryRow(ctx, query, args...).Scan(&officer.ID, &officer.CreatedAt, &officer.UpdatedAt)
}

// GetByID fetches an officer and its user by officer id.
func (r *OfficerRepository) GetByID(ctx context.Context, id int64) (*models.Officer, error) {
	query, args, err := r.selectWithUser().Where(squirrel.Eq{"o.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build officer query: %w", err)
	}

	officer, err := scanOfficerWithUser(r.db.Pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrOfficerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query officer: %w", err)
	}
	return officer, nil
}

// GetByUserID fetches the officer profile belonging to a user account.
func (r *OfficerRepository) GetByUserID(ctx context.Context, userID int64) (*models.Officer, error) {
	query, args, err := r.selectWithUser().Where(squirrel.Eq{"o.user_id": userID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build officer query: %w", err)
	}

	officer, err := scanOfficerWithUser(r.db.Pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrOfficerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query officer: %w", err)
	}
	return officer, nil
}

// ExistsByBadgeNumber reports whether a badge number is taken.
func (r *OfficerRepository) ExistsByBadgeNumber(ctx context.Context, badgeNumber string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM officers WHERE badge_number = $1)", badgeNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check badge number: %w", err)
	}
	return exists, nil
}

// List returns a page of officers ordered by badge number, with the
// total count for pagination.
func (r *OfficerRepository) List(ctx context.Context, offset uint64, limit int) ([]*models.Officer, int64, error) {
	var total int64
	if err := r.db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM officers").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count officers: %w", err)
	}

	query, args, err := r.selectWithUser().
		OrderBy("o.badge_number ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build officer list query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list officers: %w", err)
	}
	defer rows.Close()

	officers := make([]*models.Officer, 0, limit)
	for rows.Next() {
		officer, err := scanOfficerWithUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan officer: %w", err)
		}
		officers = append(officers, officer)
	}
	return officers, total, rows.Err()
}

// ListInactiveByRanks returns every inactive officer whose rank is in
// the given scope, oldest registration first.
func (r *OfficerRepository) ListInactiveByRanks(ctx context.Context, ranks []models.Rank) ([]*models.Officer, error) {
	if len(ranks) == 0 {
		return []*models.Officer{}, nil
	}

	query, args, err := r.selectWithUser().
		Where(squirrel.Eq{"o.is_active": false}).
		Where(squirrel.Eq{"o.rank": ranks}).
		OrderBy("o.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build pending officer query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending officers: %w", err)
	}
	defer rows.Close()

	officers := make([]*models.Officer, 0)
	for rows.Next() {
		officer, err := scanOfficerWithUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan officer: %w", err)
		}
		officers = append(officers, officer)
	}
	return officers, rows.Err()
}

// SetActive flips an officer's active flag.
func (r *OfficerRepository) SetActive(ctx context.Context, id int64, isActive bool) error {
	query, args, err := psql.Update("officers").
		Set("is_active", isActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build officer update: %w", err)
	}

	tag, err := r.db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update officer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrOfficerNotFound
	}
	return nil
}

// Update edits the mutable officer fields.
func (r *OfficerRepository) Update(ctx context.Context, officer *models.Officer) error {
	query, args, err := psql.Update("officers").
		Set("rank", officer.Rank).
		Set("station", officer.Station).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": officer.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build officer update: %w", err)
	}

	tag, err := r.db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update officer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrOfficerNotFound
	}
	return nil
}

// Delete removes an officer and its user account. Weak references from
// criminal records are nulled by the schema.
func (r *OfficerRepository) Delete(ctx context.Context, id int64) error {
	officer, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Deleting the user cascades to the officer row.
	tag, err := r.db.Pool.Exec(ctx, "DELETE FROM users WHERE id = $1", officer.UserID)
	if err != nil {
		return fmt.Errorf("failed to delete officer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrOfficerNotFound
	}
	return nil
}
