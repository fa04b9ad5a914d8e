// Файл: internal/services/auth.go
package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"fitness-center/internal/dto"
	"fitness-center/internal/entities"
	"fitness-center/internal/repositories"
	"fitness-center/pkg/config"
	apperrors "fitness-center/pkg/errors"
	"fitness-center/pkg/utils"

	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*entities.Account, error)
	SendCode(ctx context.Context, payload dto.SendCodeDTO) error
	VerifyCode(ctx context.Context, payload dto.VerifyCodeDTO) (*entities.Account, error)
}

type AuthService struct {
	accountRepo  repositories.AccountRepositoryInterface
	cacheRepo    repositories.CacheRepositoryInterface
	notification NotificationServiceInterface
	logger       *zap.Logger
	cfg          *config.AuthConfig
}

func NewAuthService(
	accountRepo repositories.AccountRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	notification NotificationServiceInterface,
	logger *zap.Logger,
	cfg *config.AuthConfig,
) AuthServiceInterface {
	return &AuthService{
		accountRepo:  accountRepo,
		cacheRepo:    cacheRepo,
		notification: notification,
		logger:       logger,
		cfg:          cfg,
	}
}

func loginCodeKey(login string) string     { return "login_code:" + login }
func loginAttemptsKey(login string) string { return "login_code_attempts:" + login }

// Login verifies identifier and password. Unknown accounts, inactive
// accounts and wrong passwords are all ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*entities.Account, error) {
	login := utils.NormalizeLogin(payload.Login)
	logger := s.logger.With(zap.String("login", login))

	account, err := s.findByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Login: account not found")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !account.IsActive {
		logger.Warn("Login: account is inactive")
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, payload.Password); err != nil {
		logger.Warn("Login: wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	return account, nil
}

// SendCode stores a fresh one-time code and hands it to the notifier.
// Unknown logins succeed silently so the endpoint does not reveal accounts.
func (s *AuthService) SendCode(ctx context.Context, payload dto.SendCodeDTO) error {
	login := utils.NormalizeLogin(payload.Login())
	logger := s.logger.With(zap.String("login", login))

	account, err := s.findByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("SendCode: account not found")
			return nil
		}
		return err
	}
	if !account.IsActive {
		logger.Warn("SendCode: account is inactive")
		return nil
	}

	code, err := generateCode(s.cfg.CodeLength)
	if err != nil {
		return err
	}

	if err := s.cacheRepo.Set(ctx, loginCodeKey(login), code, s.cfg.CodeTTL); err != nil {
		return fmt.Errorf("store login code: %w", err)
	}
	if err := s.cacheRepo.Del(ctx, loginAttemptsKey(login)); err != nil {
		logger.Warn("SendCode: failed to reset attempts", zap.Error(err))
	}

	if err := s.notification.SendLoginCode(login, code); err != nil {
		return fmt.Errorf("deliver login code: %w", err)
	}
	return nil
}

// VerifyCode consumes a one-time code. After MaxCodeAttempts wrong guesses
// the code is burned and a new one has to be requested.
func (s *AuthService) VerifyCode(ctx context.Context, payload dto.VerifyCodeDTO) (*entities.Account, error) {
	login := utils.NormalizeLogin(payload.Login())
	logger := s.logger.With(zap.String("login", login))
	codeKey, attemptsKey := loginCodeKey(login), loginAttemptsKey(login)

	stored, err := s.cacheRepo.Get(ctx, codeKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCode
		}
		return nil, err
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(payload.Code)) != 1 {
		attempts, err := s.cacheRepo.Incr(ctx, attemptsKey)
		if err != nil {
			return nil, err
		}
		if attempts == 1 {
			if _, err := s.cacheRepo.Expire(ctx, attemptsKey, s.cfg.CodeTTL); err != nil {
				logger.Warn("VerifyCode: failed to set attempts ttl", zap.Error(err))
			}
		}
		if attempts >= int64(s.cfg.MaxCodeAttempts) {
			logger.Warn("VerifyCode: too many wrong codes, code burned", zap.Int64("attempts", attempts))
			_ = s.cacheRepo.Del(ctx, codeKey, attemptsKey)
		}
		return nil, apperrors.ErrInvalidCode
	}

	if err := s.cacheRepo.Del(ctx, codeKey, attemptsKey); err != nil {
		logger.Warn("VerifyCode: failed to delete used code", zap.Error(err))
	}

	account, err := s.findByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCode
		}
		return nil, err
	}
	if !account.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}
	return account, nil
}

func (s *AuthService) findByLogin(ctx context.Context, login string) (*entities.Account, error) {
	if login == "" {
		return nil, apperrors.ErrNotFound
	}
	if strings.Contains(login, "@") {
		return s.accountRepo.FindByEmail(ctx, login)
	}
	return s.accountRepo.FindByPhone(ctx, login)
}

func generateCode(length int) (string, error) {
	if length <= 0 {
		length = 6
	}
	upper := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)
	n, err := rand.Int(rand.Reader, upper)
	if err != nil {
		return "", fmt.Errorf("generate login code: %w", err)
	}
	code := strconv.FormatInt(n.Int64(), 10)
	return strings.Repeat("0", length-len(code)) + code, nil
}

// SessionPayloadFromAccount builds the claims issued at login.
func SessionPayloadFromAccount(account *entities.Account) dto.SessionPayload {
	return dto.SessionPayload{
		Subject:  account.ID,
		Role:     dto.Role(account.Role),
		Name:     account.Name,
		Email:    account.Email,
		Phone:    account.Phone,
		Avatar:   account.Avatar,
		BranchID: account.BranchID,
	}
}
