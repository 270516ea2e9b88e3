package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/mkoech/police-profiling/internal/app/models"
	"github.com/mkoech/police-profiling/internal/app/models/dto"
	"github.com/mkoech/police-profiling/internal/app/repositories"
	"github.com/mkoech/police-profiling/internal/pkg/apperrors"
	"github.com/mkoech/police-profiling/internal/pkg/helpers"
	"github.com/mkoech/police-profiling/internal/pkg/logger"
	"github.com/mkoech/police-profiling/internal/pkg/metrics"
)

// CrimeService manages crime records.
type CrimeService struct {
	crimes    *repositories.CrimeRepository
	criminals *repositories.CriminalRepository
}

// NewCrimeService creates a new CrimeService.
func NewCrimeService(crimes *repositories.CrimeRepository, criminals *repositories.CriminalRepository) *CrimeService {
	return &CrimeService{crimes: crimes, criminals: criminals}
}

// List returns a page of crimes, optionally scoped to one criminal.
func (s *CrimeService) List(ctx context.Context, criminalID *uuid.UUID, page, size int) ([]dto.CrimeResponse, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	crimes, total, err := s.crimes.List(ctx, criminalID, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	responses := make([]dto.CrimeResponse, 0, len(crimes))
	for _, c := range crimes {
		responses = append(responses, dto.NewCrimeResponse(c))
	}
	return responses, helpers.NewPaginationInfo(total, page, limit), nil
}

// Get fetches a single crime record.
func (s *CrimeService) Get(ctx context.Context, id uuid.UUID) (*dto.CrimeResponse, error) {
	crime, err := s.crimes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewCrimeResponse(crime)
	return &resp, nil
}

// Create records a new crime against an existing criminal. The acting
// officer, when present, is stamped as the arresting officer.
func (s *CrimeService) Create(ctx context.Context, req *dto.CreateCrimeRequest, actorOfficerID *int64) (*dto.CrimeResponse, error) {
	if _, err := s.criminals.GetByID(ctx, req.CriminalID); err != nil {
		return nil, err
	}

	dateCommitted, err := helpers.ParseDate(&req.DateCommitted)
	if err != nil {
		return nil, apperrors.New(apperrors.ErrValidationFailed, "date_committed must use the YYYY-MM-DD format")
	}

	status := models.CrimeStatus(req.Status)
	if req.Status == "" {
		status = models.CrimeStatusOpen
	}

	crime := &models.Crime{
		CriminalID:         req.CriminalID,
		CrimeType:          models.CrimeType(req.CrimeType),
		Description:        req.Description,
		DateCommitted:      *dateCommitted,
		Location:           req.Location,
		Status:             status,
		ArrestingOfficerID: actorOfficerID,
	}
	if err := s.crimes.Create(ctx, crime); err != nil {
		return nil, err
	}

	logger.Info().
		Str("crime_id", crime.ID.String()).
		Str("criminal_id", crime.CriminalID.String()).
		Str("crime_type", string(crime.CrimeType)).
		Msg("Crime recorded")
	metrics.RecordCreated("crime")

	resp := dto.NewCrimeResponse(crime)
	return &resp, nil
}

// Update edits an existing crime record.
func (s *CrimeService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCrimeRequest) (*dto.CrimeResponse, error) {
	crime, err := s.crimes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CrimeType != nil {
		crime.CrimeType = models.CrimeType(*req.CrimeType)
	}
	if req.Description != nil {
		crime.Description = *req.Description
	}
	if req.DateCommitted != nil {
		date, err := helpers.ParseDate(req.DateCommitted)
		if err != nil {
			return nil, apperrors.New(apperrors.ErrValidationFailed, "date_committed must use the YYYY-MM-DD format")
		}
		crime.DateCommitted = *date
	}
	if req.Location != nil {
		crime.Location = *req.Location
	}
	if req.Status != nil {
		crime.Status = models.CrimeStatus(*req.Status)
	}

	if err := s.crimes.Update(ctx, crime); err != nil {
		return nil, err
	}
	resp := dto.NewCrimeResponse(crime)
	return &resp, nil
}

// Delete removes a crime record.
func (s *CrimeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.crimes.Delete(ctx, id)
}
