// Файл: internal/services/account.go
package services

import (
	"context"
	"strings"
	"time"

	"fitness-center/internal/authz"
	"fitness-center/internal/dto"
	"fitness-center/internal/entities"
	"fitness-center/internal/repositories"
	apperrors "fitness-center/pkg/errors"
	"fitness-center/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AccountServiceInterface interface {
	Create(ctx context.Context, actor *dto.SessionPayload, payload dto.CreateAccountDTO) (*dto.UserProfileDTO, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepositoryInterface
	logger      *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepositoryInterface, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{accountRepo: accountRepo, logger: logger}
}

// Create registers an account on behalf of actor. A branch admin may only add
// members, and only to its own branch; a super admin may add any role. Every
// role except super_admin is bound to a branch.
func (s *AccountService) Create(ctx context.Context, actor *dto.SessionPayload, payload dto.CreateAccountDTO) (*dto.UserProfileDTO, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if !payload.Role.Valid() {
		return nil, apperrors.NewBadRequestError("unknown role")
	}
	if !actor.IsSuperAdmin() && payload.Role != dto.RoleMember {
		s.logger.Warn("Create: role not allowed for actor",
			zap.String("actor", actor.Subject),
			zap.String("role", string(payload.Role)),
		)
		return nil, apperrors.ErrForbidden
	}

	branchID, err := authz.ResolveBranchScope(actor, payload.BranchID)
	if err != nil {
		return nil, err
	}
	if payload.Role == dto.RoleSuperAdmin {
		branchID = nil
	} else if branchID == nil {
		return nil, apperrors.NewBadRequestError("branchId is required for this role")
	}

	hashedPassword, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &entities.Account{
		ID:           "USR_" + uuid.NewString(),
		Role:         string(payload.Role),
		Name:         strings.TrimSpace(payload.Name),
		Email:        strings.ToLower(strings.TrimSpace(payload.Email)),
		Phone:        utils.NormalizePhoneNumber(payload.Phone),
		Avatar:       payload.Avatar,
		BranchID:     branchID,
		PasswordHash: hashedPassword,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info("account created",
		zap.String("id", account.ID),
		zap.String("role", account.Role),
		zap.String("branch", utils.SafeDeref(account.BranchID)),
		zap.String("by", actor.Subject),
	)

	payloadView := SessionPayloadFromAccount(account)
	profile := dto.NewUserProfileDTO(&payloadView)
	return &profile, nil
}
