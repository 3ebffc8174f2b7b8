// Package seed creates default records needed for a fresh installation.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/repositories"
	"github.com/psanashik/academy/internal/config"
	"github.com/psanashik/academy/internal/pkg/apperrors"
	"github.com/psanashik/academy/internal/pkg/auth"
)

// CreateDefaultData seeds the bootstrap admin account and the sample sports.
// Idempotent: existing records are left alone.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)
	sportRepo := repositories.NewSportRepository(dbPool)

	lgr.Info().Msg("Checking/creating default data...")
	var finalErr error

	hash, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:        "Admin",
		Email:       cfg.Seed.AdminEmail,
		Phone:       "+919800000000",
		Password:    hash,
		Role:        models.RoleAdmin,
		Permissions: []string{"*"},
		IsActive:    true,
	}
	err = userRepo.Create(ctx, admin)
	switch {
	case err == nil:
		lgr.Info().Str("email", admin.Email).Msg("Seeded admin account")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists), errors.Is(err, apperrors.ErrPhoneAlreadyExists):
		// Already seeded
	default:
		lgr.Error().Err(err).Msg("Error seeding admin account")
		finalErr = errors.Join(finalErr, err)
	}

	for _, sport := range defaultSports() {
		err := sportRepo.Create(ctx, sport)
		if err != nil && !errors.Is(err, apperrors.ErrConflict) {
			lgr.Error().Err(err).Str("sport", sport.Name).Msg("Error seeding sport")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}

func defaultSports() []*models.Sport {
	tiers := func(base, beginner, intermediate, advanced float64) models.FeeStructure {
		return models.FeeStructure{
			BaseAmount: base,
			SkillLevels: models.SkillLevelFees{
				Beginner:     beginner,
				Intermediate: intermediate,
				Advanced:     advanced,
			},
		}
	}
	desc := func(s string) *string { return &s }

	return []*models.Sport{
		{Name: "Cricket", Description: desc("Cricket coaching across all age groups"), FeeStructure: tiers(2000, 2000, 2500, 3000), IsActive: true},
		{Name: "Football", Description: desc("Football training and fitness"), FeeStructure: tiers(1800, 1800, 2200, 2600), IsActive: true},
		{Name: "Badminton", Description: desc("Indoor badminton coaching"), FeeStructure: tiers(1500, 1500, 1800, 2200), IsActive: true},
	}
}
