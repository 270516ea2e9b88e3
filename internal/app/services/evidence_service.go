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

// EvidenceService manages file-backed evidence records.
type EvidenceService struct {
	evidence       *repositories.EvidenceRepository
	criminals      *repositories.CriminalRepository
	storage        filestorage.FileStorage
	uploadsBaseURL string
}

// NewEvidenceService creates a new EvidenceService.
func NewEvidenceService(evidence *repositories.EvidenceRepository, criminals *repositories.CriminalRepository, storage filestorage.FileStorage, uploadsBaseURL string) *EvidenceService {
	return &EvidenceService{
		evidence:       evidence,
		criminals:      criminals,
		storage:        storage,
		uploadsBaseURL: uploadsBaseURL,
	}
}

// List returns a page of evidence records, optionally scoped to one
// criminal.
func (s *EvidenceService) List(ctx context.Context, criminalID *uuid.UUID, page, size int) ([]dto.EvidenceResponse, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	records, total, err := s.evidence.List(ctx, criminalID, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	responses := make([]dto.EvidenceResponse, 0, len(records))
	for _, e := range records {
		responses = append(responses, dto.NewEvidenceResponse(e, s.uploadsBaseURL))
	}
	return responses, helpers.NewPaginationInfo(total, page, limit), nil
}

// Get fetches a single evidence record.
func (s *EvidenceService) Get(ctx context.Context, id uuid.UUID) (*dto.EvidenceResponse, error) {
	record, err := s.evidence.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewEvidenceResponse(record, s.uploadsBaseURL)
	return &resp, nil
}

// Create stores the uploaded file and records the evidence against an
// existing criminal. The acting officer, when present, is stamped as
// the collector.
func (s *EvidenceService) Create(ctx context.Context, req *dto.CreateEvidenceRequest, file *multipart.FileHeader, actorOfficerID *int64) (*dto.EvidenceResponse, error) {
	if file == nil {
		return nil, apperrors.New(apperrors.ErrValidationFailed, "an evidence file is required")
	}
	if _, err := s.criminals.GetByID(ctx, req.CriminalID); err != nil {
		return nil, err
	}

	path, err := s.storage.SaveFileWithPath(file, "criminals/"+req.CriminalID.String()+"/evidence")
	if err != nil {
		return nil, apperrors.New(apperrors.ErrFileStorage, "failed to store evidence file")
	}

	record := &models.CriminalEvidence{
		CriminalID:    req.CriminalID,
		EvidenceType:  models.EvidenceType(req.EvidenceType),
		File:          path,
		Description:   req.Description,
		CollectedByID: actorOfficerID,
	}
	if err := s.evidence.Create(ctx, record); err != nil {
		_ = s.storage.DeleteFile(path)
		return nil, err
	}

	logger.Info().
		Str("evidence_id", record.ID.String()).
		Str("criminal_id", record.CriminalID.String()).
		Str("evidence_type", string(record.EvidenceType)).
		Msg("Evidence recorded")
	metrics.RecordCreated("evidence")

	resp := dto.NewEvidenceResponse(record, s.uploadsBaseURL)
	return &resp, nil
}

// Update edits the evidence metadata; the stored file is immutable.
func (s *EvidenceService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateEvidenceRequest) (*dto.EvidenceResponse, error) {
	record, err := s.evidence.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.EvidenceType != nil {
		record.EvidenceType = models.EvidenceType(*req.EvidenceType)
	}
	if req.Description != nil {
		record.Description = *req.Description
	}

	if err := s.evidence.Update(ctx, record); err != nil {
		return nil, err
	}
	resp := dto.NewEvidenceResponse(record, s.uploadsBaseURL)
	return &resp, nil
}

// Delete removes an evidence record and its stored file.
func (s *EvidenceService) Delete(ctx context.Context, id uuid.UUID) error {
	record, err := s.evidence.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.evidence.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.storage.DeleteFile(record.File)
	return nil
}
