package services

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/mkoech/police-profiling/internal/app/models"
	"github.com/mkoech/police-profiling/internal/app/models/dto"
	"github.com/mkoech/police-profiling/internal/app/repositories"
	"github.com/mkoech/police-profiling/internal/db"
	"github.com/mkoech/police-profiling/internal/pkg/apperrors"
	"github.com/mkoech/police-profiling/internal/pkg/auth"
	"github.com/mkoech/police-profiling/internal/pkg/dberrors"
	"github.com/mkoech/police-profiling/internal/pkg/logger"
	"github.com/mkoech/police-profiling/internal/pkg/metrics"
	"github.com/mkoech/police-profiling/internal/pkg/validation"
)

// AuthService handles registration, login and session management.
type AuthService struct {
	users      *repositories.UserRepository
	officers   *repositories.OfficerRepository
	sessions   *repositories.SessionRepository
	db         *db.PostgresDB
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService.
func NewAuthService(users *repositories.UserRepository, officers *repositories.OfficerRepository, sessions *repositories.SessionRepository, database *db.PostgresDB, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		users:      users,
		officers:   officers,
		sessions:   sessions,
		db:         database,
		jwtService: jwtService,
	}
}

// Register creates a user account with an inactive officer profile.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if !validation.ValidatePassword(req.Password) {
		return nil, apperrors.New(apperrors.ErrValidationFailed,
			"Password must be at least 8 characters and contain at least one letter and one digit")
	}

	taken, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrUsernameExists
	}

	taken, err = s.officers.ExistsByBadgeNumber(ctx, req.BadgeNumber)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrBadgeNumberExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  req.Username,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	officer := &models.Officer{
		BadgeNumber: req.BadgeNumber,
		Rank:        models.Rank(req.Rank),
		Station:     req.Station,
		IsActive:    false,
	}

	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.users.CreateTx(ctx, tx, user); err != nil {
			return err
		}
		officer.UserID = user.ID
		return s.officers.CreateTx(ctx, tx, officer)
	})
	if err != nil {
		// Concurrent registrations can slip past the existence checks.
		switch {
		case dberrors.IsDuplicateConstraintError(err, "users_username_key"):
			return nil, apperrors.ErrUsernameExists
		case dberrors.IsDuplicateConstraintError(err, "officers_badge_number_key"):
			return nil, apperrors.ErrBadgeNumberExists
		}
		return nil, err
	}

	logger.Info().
		Str("username", user.Username).
		Str("badge_number", officer.BadgeNumber).
		Str("rank", string(officer.Rank)).
		Msg("Officer registered, awaiting activation")
	metrics.RecordCreated("officer")

	return &dto.RegisterResponse{
		OfficerID:   officer.ID,
		BadgeNumber: officer.BadgeNumber,
		IsActive:    false,
		Message:     "Registration successful. Your account is pending activation by a Commissioner or Inspector.",
	}, nil
}

// Login verifies credentials and issues a session token. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		metrics.LoginAttempt("invalid_credentials")
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		metrics.LoginAttempt("invalid_credentials")
		return nil, apperrors.ErrInvalidCredentials
	}

	officer, err := s.officers.GetByUserID(ctx, user.ID)
	if err != nil {
		metrics.LoginAttempt("no_officer_profile")
		return nil, apperrors.ErrNoOfficerProfile
	}
	if !officer.IsActive {
		metrics.LoginAttempt("pending_activation")
		return nil, apperrors.New(apperrors.ErrAccountPendingActivation,
			"Your account is pending activation by a Commissioner or Inspector")
	}

	token, tokenID, expiresAt, err := s.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Create(ctx, tokenID, user.ID, expiresAt); err != nil {
		return nil, err
	}

	logger.Info().
		Str("username", user.Username).
		Str("badge_number", officer.BadgeNumber).
		Msg("Officer logged in")
	metrics.LoginAttempt("success")

	return &dto.LoginResponse{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Officer:   dto.NewOfficerSummary(officer),
	}, nil
}

// Logout revokes every stored session for the user. Revoking an empty
// set is fine, which keeps logout idempotent.
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	if err := s.sessions.RevokeAllForUser(ctx, userID); err != nil {
		return err
	}
	logger.Debug().Int64("user_id", userID).Msg("Sessions revoked")
	return nil
}

// Check resolves the caller's identity into the auth check payload.
func (s *AuthService) Check(ctx context.Context, userID int64) (*dto.AuthCheckResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.AuthCheckResponse{
		Authenticated: true,
		UserID:        &user.ID,
		Username:      user.Username,
	}

	officer, err := s.officers.GetByUserID(ctx, user.ID)
	if err == nil {
		resp.Officer = dto.NewOfficerSummary(officer)
	}
	return resp, nil
}
