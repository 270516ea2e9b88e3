package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mkoech/police-profiling/internal/app/models"
	"github.com/mkoech/police-profiling/internal/db"
	"github.com/mkoech/police-profiling/internal/pkg/apperrors"
)

// CrimeRepository accesses the crimes table.
type CrimeRepository struct {
	db *db.PostgresDB
}

// NewCrimeRepository creates a new CrimeRepository.
func NewCrimeRepository(database *db.PostgresDB) *CrimeRepository {
	return &CrimeRepository{db: database}
}

var crimeColumns = []string{
	"id", "criminal_id", "crime_type", "description", "date_committed",
	"location", "status", "arresting_officer", "created_at", "updated_at",
}

func scanCrime(row pgx.Row) (*models.Crime, error) {
	var c models.Crime
	err := row.Scan(
		&c.ID, &c.CriminalID, &c.CrimeType, &c.Description, &c.DateCommitted,
		&c.Location, &c.Status, &c.ArrestingOfficerID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new crime record.
func (r *CrimeRepository) Create(ctx context.Context, c *models.Crime) error {
	query, args, err := psql.Insert("crimes").
		Columns("criminal_id", "crime_type", "description", "date_committed",
			"location", "status", "arresting_officer").
		Values(c.CriminalID, c.CrimeType, c.Description, c.DateCommitted,
			c.Location, c.Status, c.ArrestingOfficerID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build crime insert: %w", err)
	}

	err = r.db.Pool.QueryRow(ctx, query, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert crime: %w", err)
	}
	return nil
}

// GetByID fetches a crime by primary key.
func (r *CrimeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Crime, error) {
	query, args, err := psql.Select(crimeColumns...).
		From("crimes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build crime query: %w", err)
	}

	crime, err := scanCrime(r.db.Pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrCrimeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query crime: %w", err)
	}
	return crime, nil
}

// List returns a page of crimes, most recent first.
func (r *CrimeRepository) List(ctx context.Context, criminalID *uuid.UUID, offset uint64, limit int) ([]*models.Crime, int64, error) {
	countBuilder := psql.Select("COUNT(*)").From("crimes")
	listBuilder := psql.Select(crimeColumns...).From("crimes")
	if criminalID != nil {
		countBuilder = countBuilder.Where(squirrel.Eq{"criminal_id": *criminalID})
		listBuilder = listBuilder.Where(squirrel.Eq{"criminal_id": *criminalID})
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build crime count query: %w", err)
	}
	var total int64
	if err := r.db.Pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count crimes: %w", err)
	}

	query, args, err := listBuilder.
		OrderBy("date_committed DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build crime list query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list crimes: %w", err)
	}
	defer rows.Close()

	crimes := make([]*models.Crime, 0, limit)
	for rows.Next() {
		crime, err := scanCrime(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan crime: %w", err)
		}
		crimes = append(crimes, crime)
	}
	return crimes, total, rows.Err()
}

// ListByCriminal returns every crime for a criminal, most recent first.
func (r *CrimeRepository) ListByCriminal(ctx context.Context, criminalID uuid.UUID) ([]*models.Crime, error) {
	query, args, err := psql.Select(crimeColumns...).
		From("crimes").
		Where(squirrel.Eq{"criminal_id": criminalID}).
		OrderBy("date_committed DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build crime query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list crimes: %w", err)
	}
	defer rows.Close()

	crimes := make([]*models.Crime, 0)
	for rows.Next() {
		crime, err := scanCrime(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan crime: %w", err)
		}
		crimes = append(crimes, crime)
	}
	return crimes, rows.Err()
}

// Update rewrites the mutable crime fields.
func (r *CrimeRepository) Update(ctx context.Context, c *models.Crime) error {
	query, args, err := psql.Update("crimes").
		Set("crime_type", c.CrimeType).
		Set("description", c.Description).
		Set("date_committed", c.DateCommitted).
		Set("location", c.Location).
		Set("status", c.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build crime update: %w", err)
	}

	tag, err := r.db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update crime: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCrimeNotFound
	}
	return nil
}

// Delete removes a crime record.
func (r *CrimeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx, "DELETE FROM crimes WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete crime: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCrimeNotFound
	}
	return nil
}
