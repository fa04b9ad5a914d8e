package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"fitness-center/internal/dto"
	"fitness-center/internal/entities"
	"fitness-center/internal/repositories"
	"fitness-center/pkg/config"
	apperrors "fitness-center/pkg/errors"
	"fitness-center/pkg/utils"

	"github.com/google/uuid"
)

// AdminSeed describes the first super admin account.
type AdminSeed struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// SeedSuperAdmin creates the super admin. An existing super admin with the
// same email is returned as is; an account of any other role is an error.
func SeedSuperAdmin(ctx context.Context, repo repositories.AccountRepositoryInterface, seed AdminSeed) (*entities.Account, error) {
	log.Println("  - Creating super admin account...")

	email := strings.ToLower(strings.TrimSpace(seed.Email))
	if email == "" || len(seed.Password) < 6 {
		return nil, errors.New("admin email and a password of at least 6 characters are required")
	}

	existing, err := repo.FindByEmail(ctx, email)
	if err == nil {
		if existing.Role != string(dto.RoleSuperAdmin) {
			return nil, fmt.Errorf("account %s already exists with role %q", email, existing.Role)
		}
		log.Println("    - Super admin already exists. Skipping.")
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(seed.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &entities.Account{
		ID:           "USR_" + uuid.NewString(),
		Role:         string(dto.RoleSuperAdmin),
		Name:         seed.Name,
		Email:        email,
		Phone:        utils.NormalizePhoneNumber(seed.Phone),
		PasswordHash: hashedPassword,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("create super admin: %w", err)
	}
	return account, nil
}

// SeedRateLimitSettings stores the configured defaults when no settings
// document exists yet. An existing document is left untouched.
func SeedRateLimitSettings(ctx context.Context, repo repositories.SettingsRepositoryInterface, defaults config.RateLimitConfig) error {
	log.Println("  - Writing default rate limit settings...")

	_, err := repo.GetRateLimit(ctx)
	if err == nil {
		log.Println("    - Settings already present. Skipping.")
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	return repo.SaveRateLimit(ctx, &entities.RateLimitSettings{
		Enabled:       defaults.Enabled,
		WindowSeconds: int(defaults.Window / time.Second),
		MaxRequests:   defaults.MaxRequests,
		UpdatedBy:     "seeder",
		UpdatedAt:     time.Now().UTC(),
	})
}
