package services

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"github.com/mkoech/police-profiling/internal/app/models"
	"github.com/mkoech/police-profiling/internal/app/models/dto"
	"github.com/mkoech/police-profiling/internal/app/repositories"
	"github.com/mkoech/police-profiling/internal/pkg/apperrors"
	"github.com/mkoech/police-profiling/internal/pkg/filestorage"
	"github.com/mkoech/police-profiling/internal/pkg/helpers"
	"github.com/mkoech/police-profiling/internal/pkg/logger"
	"github.com/mkoech/police-profiling/internal/pkg/metrics"
)

// DocumentService manages official documents attached to profiles.
type DocumentService struct {
	documents      *repositories.DocumentRepository
	criminals      *repositories.CriminalRepository
	storage        filestorage.FileStorage
	uploadsBaseURL string
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(documents *repositories.DocumentRepository, criminals *repositories.CriminalRepository, storage filestorage.FileStorage, uploadsBaseURL string) *DocumentService {
	return &DocumentService{
		documents:      documents,
		criminals:      criminals,
		storage:        storage,
		uploadsBaseURL: uploadsBaseURL,
	}
}

// List returns a page of documents, optionally scoped to one criminal.
func (s *DocumentService) List(ctx context.Context, criminalID *uuid.UUID, page, size int) ([]dto.DocumentResponse, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	documents, total, err := s.documents.List(ctx, criminalID, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	responses := make([]dto.DocumentResponse, 0, len(documents))
	for _, d := range documents {
		responses = append(responses, dto.NewDocumentResponse(d, s.uploadsBaseURL))
	}
	return responses, helpers.NewPaginationInfo(total, page, limit), nil
}

// Get fetches a single document.
func (s *DocumentService) Get(ctx context.Context, id uuid.UUID) (*dto.DocumentResponse, error) {
	document, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewDocumentResponse(document, s.uploadsBaseURL)
	return &resp, nil
}

// Create stores the uploaded file and records the document against an
// existing criminal. The acting officer, when present, is stamped as
// the uploader.
func (s *DocumentService) Create(ctx context.Context, req *dto.CreateDocumentRequest, file *multipart.FileHeader, actorOfficerID *int64) (*dto.DocumentResponse, error) {
	if file == nil {
		return nil, apperrors.New(apperrors.ErrValidationFailed, "a document file is required")
	}
	if _, err := s.criminals.GetByID(ctx, req.CriminalID); err != nil {
		return nil, err
	}

	path, err := s.storage.SaveFileWithPath(file, "criminals/"+req.CriminalID.String()+"/documents")
	if err != nil {
		return nil, apperrors.New(apperrors.ErrFileStorage, "failed to store document file")
	}

	document := &models.CriminalDocument{
		CriminalID:   req.CriminalID,
		DocumentType: models.DocumentType(req.DocumentType),
		File:         path,
		Title:        req.Title,
		Description:  req.Description,
		UploadedByID: actorOfficerID,
	}
	if err := s.documents.Create(ctx, document); err != nil {
		_ = s.storage.DeleteFile(path)
		return nil, err
	}

	logger.Info().
		Str("document_id", document.ID.String()).
		Str("criminal_id", document.CriminalID.String()).
		Str("document_type", string(document.DocumentType)).
		Msg("Document recorded")
	metrics.RecordCreated("document")

	resp := dto.NewDocumentResponse(document, s.uploadsBaseURL)
	return &resp, nil
}

// Update edits the document metadata; the stored file is immutable.
func (s *DocumentService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	document, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DocumentType != nil {
		document.DocumentType = models.DocumentType(*req.DocumentType)
	}
	if req.Title != nil {
		document.Title = *req.Title
	}
	if req.Description != nil {
		document.Description = *req.Description
	}

	if err := s.documents.Update(ctx, document); err != nil {
		return nil, err
	}
	resp := dto.NewDocumentResponse(document, s.uploadsBaseURL)
	return &resp, nil
}

// Delete removes a document and its stored file.
func (s *DocumentService) Delete(ctx context.Context, id uuid.UUID) error {
	document, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.documents.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.storage.DeleteFile(document.File)
	return nil
}
