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

// EvidenceRepository accesses the criminal_evidence table.
type EvidenceRepository struct {
	db *db.PostgresDB
}

// NewEvidenceRepository creates a new EvidenceRepository.
func NewEvidenceRepository(database *db.PostgresDB) *EvidenceRepository {
	return &EvidenceRepository{db: database}
}

var evidenceColumns = []string{
	"id", "criminal_id", "evidence_type", "file", "description",
	"date_collected", "collected_by",
}

func scanEvidence(row pgx.Row) (*models.CriminalEvidence, error) {
	var e models.CriminalEvidence
	err := row.Scan(
		&e.ID, &e.CriminalID, &e.EvidenceType, &e.File, &e.Description,
		&e.DateCollected, &e.CollectedByID,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts a new evidence record; date_collected is stamped by the
// database.
func (r *EvidenceRepository) Create(ctx context.Context, e *models.CriminalEvidence) error {
	query, args, err := psql.Insert("criminal_evidence").
		Columns("criminal_id", "evidence_type", "file", "description", "collected_by").
		Values(e.CriminalID, e.EvidenceType, e.File, e.Description, e.CollectedByID).
		Suffix("RETURNING id, date_collected").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build evidence insert: %w", err)
	}

	err = r.db.Pool.QueryRow(ctx, query, args...).Scan(&e.ID, &e.DateCollected)
	if err != nil {
		return fmt.Errorf("failed to insert evidence: %w", err)
	}
	return nil
}

// GetByID fetches an evidence record by primary key.
func (r *EvidenceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CriminalEvidence, error) {
	query, args, err := psql.Select(evidenceColumns...).
		From("criminal_evidence").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build evidence query: %w", err)
	}

	evidence, err := scanEvidence(r.db.Pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrEvidenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query evidence: %w", err)
	}
	return evidence, nil
}

// List returns a page of evidence records, newest first.
func (r *EvidenceRepository) List(ctx context.Context, criminalID *uuid.UUID, offset uint64, limit int) ([]*models.CriminalEvidence, int64, error) {
	countBuilder := psql.Select("COUNT(*)").From("criminal_evidence")
	listBuilder := psql.Select(evidenceColumns...).From("criminal_evidence")
	if criminalID != nil {
		countBuilder = countBuilder.Where(squirrel.Eq{"criminal_id": *criminalID})
		listBuilder = listBuilder.Where(squirrel.Eq{"criminal_id": *criminalID})
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build evidence count query: %w", err)
	}
	var total int64
	if err := r.db.Pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count evidence: %w", err)
	}

	query, args, err := listBuilder.
		OrderBy("date_collected DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build evidence list query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list evidence: %w", err)
	}
	defer rows.Close()

	records := make([]*models.CriminalEvidence, 0, limit)
	for rows.Next() {
		record, err := scanEvidence(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan evidence: %w", err)
		}
		records = append(records, record)
	}
	return records, total, rows.Err()
}

// ListByCriminal returns every evidence record for a criminal, newest
// first.
func (r *EvidenceRepository) ListByCriminal(ctx context.Context, criminalID uuid.UUID) ([]*models.CriminalEvidence, error) {
	query, args, err := psql.Select(evidenceColumns...).
		From("criminal_evidence").
		Where(squirrel.Eq{"criminal_id": criminalID}).
		OrderBy("date_collected DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build evidence query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list evidence: %w", err)
	}
	defer rows.Close()

	records := make([]*models.CriminalEvidence, 0)
	for rows.Next() {
		record, err := scanEvidence(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan evidence: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Update rewrites the evidence metadata.
func (r *EvidenceRepository) Update(ctx context.Context, e *models.CriminalEvidence) error {
	query, args, err := psql.Update("criminal_evidence").
		Set("evidence_type", e.EvidenceType).
		Set("description", e.Description).
		Where(squirrel.Eq{"id": e.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build evidence update: %w", err)
	}

	tag, err := r.db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update evidence: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEvidenceNotFound
	}
	return nil
}

// Delete removes an evidence record.
func (r *EvidenceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx, "DELETE FROM criminal_evidence WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete evidence: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEvidenceNotFound
	}
	return nil
}
