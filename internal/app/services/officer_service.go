package services

import (
	"context"

	"github.com/mkoech/police-profiling/internal/app/auth"
	"github.com/mkoech/police-profiling/internal/app/models"
	"github.com/mkoech/police-profiling/internal/app/models/dto"
	"github.com/mkoech/police-profiling/internal/app/repositories"
	"github.com/mkoech/police-profiling/internal/pkg/apperrors"
	"github.com/mkoech/police-profiling/internal/pkg/helpers"
	"github.com/mkoech/police-profiling/internal/pkg/logger"
)

// OfficerService manages officer profiles and the activation workflow.
type OfficerService struct {
	officers *repositories.OfficerRepository
	sessions *repositories.SessionRepository
}

// NewOfficerService creates a new OfficerService.
func NewOfficerService(officers *repositories.OfficerRepository, sessions *repositories.SessionRepository) *OfficerService {
	return &OfficerService{officers: officers, sessions: sessions}
}

// List returns a page of officers.
func (s *OfficerService) List(ctx context.Context, page, size int) ([]dto.OfficerResponse, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	officers, total, err := s.officers.List(ctx, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	responses := make([]dto.OfficerResponse, 0, len(officers))
	for _, o := range officers {
		responses = append(responses, dto.NewOfficerResponse(o))
	}
	return responses, helpers.NewPaginationInfo(total, page, limit), nil
}

// Get fetches a single officer.
func (s *OfficerService) Get(ctx context.Context, id int64) (*dto.OfficerResponse, error) {
	officer, err := s.officers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewOfficerResponse(officer)
	return &resp, nil
}

// Update edits an officer's station or rank.
func (s *OfficerService) Update(ctx context.Context, id int64, req *dto.OfficerUpdateRequest) (*dto.OfficerResponse, error) {
	officer, err := s.officers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Station != nil {
		officer.Station = *req.Station
	}
	if req.Rank != nil {
		officer.Rank = models.Rank(*req.Rank)
	}

	if err := s.officers.Update(ctx, officer); err != nil {
		return nil, err
	}
	resp := dto.NewOfficerResponse(officer)
	return &resp, nil
}

// Delete removes an officer account and revokes its sessions.
func (s *OfficerService) Delete(ctx context.Context, id int64) error {
	officer, err := s.officers.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.sessions.RevokeAllForUser(ctx, officer.UserID); err != nil {
		return err
	}
	if err := s.officers.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Str("badge_number", officer.BadgeNumber).Msg("Officer deleted")
	return nil
}

// Activate flips a target officer's active flag on behalf of an acting
// officer. The target must exist before authorization is evaluated, and
// both the capability and the target-rank rule must pass.
func (s *OfficerService) Activate(ctx context.Context, actorUserID, targetID int64, isActive bool) (*dto.ActivateOfficerResponse, error) {
	target, err := s.officers.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	actor, err := s.officers.GetByUserID(ctx, actorUserID)
	if err != nil {
		return nil, apperrors.ErrNoOfficerProfile
	}

	if !auth.CanActivateOfficers(actor.Rank) {
		return nil, apperrors.New(apperrors.ErrRankNotAuthorized,
			"Only Commissioners and Inspectors can activate or deactivate officers")
	}
	if !auth.CanActivateTarget(actor.Rank, target.Rank) {
		return nil, apperrors.Newf(apperrors.ErrTargetRankTooHigh,
			"You cannot activate/deactivate an officer with rank %s", target.Rank)
	}

	if err := s.officers.SetActive(ctx, target.ID, isActive); err != nil {
		return nil, err
	}
	target.IsActive = isActive

	action := "deactivated"
	if isActive {
		action = "activated"
	}
	logger.Info().
		Str("actor_badge", actor.BadgeNumber).
		Str("target_badge", target.BadgeNumber).
		Str("action", action).
		Msg("Officer activation changed")

	return &dto.ActivateOfficerResponse{
		Officer: dto.NewOfficerResponse(target),
		Message: "Officer " + target.BadgeNumber + " has been " + action,
	}, nil
}

// PendingActivation lists the inactive officers the actor is allowed to
// activate, scoped by the actor's rank.
func (s *OfficerService) PendingActivation(ctx context.Context, actorUserID int64) ([]dto.OfficerResponse, error) {
	actor, err := s.officers.GetByUserID(ctx, actorUserID)
	if err != nil {
		return nil, apperrors.ErrNoOfficerProfile
	}

	scope := auth.ActivationScope(actor.Rank)
	if scope == nil {
		return nil, apperrors.New(apperrors.ErrRankNotAuthorized,
			"Only Commissioners and Inspectors can view pending activations")
	}

	officers, err := s.officers.ListInactiveByRanks(ctx, scope)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.OfficerResponse, 0, len(officers))
	for _, o := range officers {
		responses = append(responses, dto.NewOfficerResponse(o))
	}
	return responses, nil
}
