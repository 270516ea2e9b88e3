// Package seed creates the bootstrap Commissioner account so a fresh
// deployment has someone who can activate registrations.
package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5"

	"github.com/mkoech/police-profiling/internal/app/models"
	"github.com/mkoech/police-profiling/internal/app/repositories"
	"github.com/mkoech/police-profiling/internal/db"
	"github.com/mkoech/police-profiling/internal/pkg/apperrors"
	"github.com/mkoech/police-profiling/internal/pkg/auth"
	"github.com/mkoech/police-profiling/internal/pkg/logger"
)

const (
	defaultCommissionerUsername = "commissioner"
	defaultCommissionerBadge    = "HQ-0001"
	defaultCommissionerStation  = "Headquarters"
)

// EnsureDefaultCommissioner creates an active Commissioner account if
// none exists yet. The password comes from SEED_COMMISSIONER_PASSWORD;
// seeding is skipped when the variable is unset.
func EnsureDefaultCommissioner(ctx context.Context, database *db.PostgresDB, repos *repositories.Repositories) error {
	password := os.Getenv("SEED_COMMISSIONER_PASSWORD")
	if password == "" {
		logger.Debug().Msg("SEED_COMMISSIONER_PASSWORD not set, skipping seed")
		return nil
	}

	_, err := repos.Users.GetByUsername(ctx, defaultCommissionerUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user := &models.User{
		Username:  defaultCommissionerUsername,
		Password:  hashed,
		FirstName: "Default",
		LastName:  "Commissioner",
	}
	officer := &models.Officer{
		BadgeNumber: defaultCommissionerBadge,
		Rank:        models.RankCommissioner,
		Station:     defaultCommissionerStation,
		IsActive:    true,
	}

	err = database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := repos.Users.CreateTx(ctx, tx, user); err != nil {
			return err
		}
		officer.UserID = user.ID
		return repos.Officers.CreateTx(ctx, tx, officer)
	})
	if err != nil {
		return err
	}

	logger.Info().
		Str("username", user.Username).
		Str("badge_number", officer.BadgeNumber).
		Msg("Seeded default Commissioner account")
	return nil
}
