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

// DocumentRepository accesses the criminal_documents table.
type DocumentRepository struct {
	db *db.PostgresDB
}

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(database *db.PostgresDB) *DocumentRepository {
	return &DocumentRepository{db: database}
}

var documentColumns = []string{
	"id", "criminal_id", "document_type", "file", "title", "description",
	"date_uploaded", "uploaded_by",
}

func scanDocument(row pgx.Row) (*models.CriminalDocument, error) {
	var d models.CriminalDocument
	err := row.Scan(
		&d.ID, &d.CriminalID, &d.DocumentType, &d.File, &d.Title,
		&d.Description, &d.DateUploaded, &d.UploadedByID,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new document record; date_uploaded is stamped by the
// database.
func (r *DocumentRepository) Create(ctx context.Context, d *models.CriminalDocument) error {
	query, args, err := psql.Insert("criminal_documents").
		Columns("criminal_id", "document_type", "file", "title", "description", "uploaded_by").
		Values(d.CriminalID, d.DocumentType, d.File, d.Title, d.Description, d.UploadedByID).
		Suffix("RETURNING id, date_uploaded").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build document insert: %w", err)
	}

	err = r.db.Pool.QueryRow(ctx, query, args...).Scan(&d.ID, &d.DateUploaded)
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}
	return nil
}

// GetByID fetches a document by primary key.
func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CriminalDocument, error) {
	query, args, err := psql.Select(documentColumns...).
		From("criminal_documents").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build document query: %w", err)
	}

	document, err := scanDocument(r.db.Pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query document: %w", err)
	}
	return document, nil
}

// List returns a page of documents, newest first.
func (r *DocumentRepository) List(ctx context.Context, criminalID *uuid.UUID, offset uint64, limit int) ([]*models.CriminalDocument, int64, error) {
	countBuilder := psql.Select("COUNT(*)").From("criminal_documents")
	listBuilder := psql.Select(documentColumns...).From("criminal_documents")
	if criminalID != nil {
		countBuilder = countBuilder.Where(squirrel.Eq{"criminal_id": *criminalID})
		listBuilder = listBuilder.Where(squirrel.Eq{"criminal_id": *criminalID})
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build document count query: %w", err)
	}
	var total int64
	if err := r.db.Pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	query, args, err := listBuilder.
		OrderBy("date_uploaded DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build document list query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	documents := make([]*models.CriminalDocument, 0, limit)
	for rows.Next() {
		document, err := scanDocument(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan document: %w", err)
		}
		documents = append(documents, document)
	}
	return documents, total, rows.Err()
}

// ListByCriminal returns every document for a criminal, newest first.
func (r *DocumentRepository) ListByCriminal(ctx context.Context, criminalID uuid.UUID) ([]*models.CriminalDocument, error) {
	query, args, err := psql.Select(documentColumns...).
		From("criminal_documents").
		Where(squirrel.Eq{"criminal_id": criminalID}).
		OrderBy("date_uploaded DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build document query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	documents := make([]*models.CriminalDocument, 0)
	for rows.Next() {
		document, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		documents = append(documents, document)
	}
	return documents, rows.Err()
}

// Update rewrites the document metadata.
func (r *DocumentRepository) Update(ctx context.Context, d *models.CriminalDocument) error {
	query, args, err := psql.Update("criminal_documents").
		Set("document_type", d.DocumentType).
		Set("title", d.Title).
		Set("description", d.Description).
		Where(squirrel.Eq{"id": d.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build document update: %w", err)
	}

	tag, err := r.db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDocumentNotFound
	}
	return nil
}

// Delete removes a document record.
func (r *DocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx, "DELETE FROM criminal_documents WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDocumentNotFound
	}
	return nil
}
