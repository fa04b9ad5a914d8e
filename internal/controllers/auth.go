package controllers

import (
	"net/http"
	"time"

	"fitness-center/internal/authz"
	"fitness-center/internal/dto"
	"fitness-center/internal/entities"
	"fitness-center/internal/services"
	"fitness-center/pkg/config"
	apperrors "fitness-center/pkg/errors"
	"fitness-center/pkg/service"
	"fitness-center/pkg/session"
	"fitness-center/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthController struct {
	authService services.AuthServiceInterface
	jwtSvc      service.JWTService
	sessionCfg  config.SessionConfig
	logger      *zap.Logger
}

func NewAuthController(
	authService services.AuthServiceInterface,
	jwtSvc service.JWTService,
	sessionCfg config.SessionConfig,
	logger *zap.Logger,
) *AuthController {
	return &AuthController{
		authService: authService,
		jwtSvc:      jwtSvc,
		sessionCfg:  sessionCfg,
		logger:      logger,
	}
}

func (ctrl *AuthController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func (ctrl *AuthController) cookies(c echo.Context) session.CookieStore {
	return session.NewEchoCookieStore(c, ctrl.sessionCfg.CookieSecure)
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("Login: bind failed", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("invalid login payload"))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	account, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	return ctrl.issueSession(c, account, ctrl.sessionCfg.PasswordTTL, "Logged in")
}

func (ctrl *AuthController) SendCode(c echo.Context) error {
	var payload dto.SendCodeDTO
	if err := c.Bind(&payload); err != nil {
		return ctrl.errorResponse(c, apperrors.ErrBadRequest)
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	if err := ctrl.authService.SendCode(c.Request().Context(), payload); err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, nil, "If the account exists, a code has been sent.", http.StatusOK)
}

func (ctrl *AuthController) VerifyCode(c echo.Context) error {
	var payload dto.VerifyCodeDTO
	if err := c.Bind(&payload); err != nil {
		return ctrl.errorResponse(c, apperrors.ErrBadRequest)
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	account, err := ctrl.authService.VerifyCode(c.Request().Context(), payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	return ctrl.issueSession(c, account, ctrl.sessionCfg.CodeTTL, "Code confirmed")
}

// Logout only clears the cookie; an already issued token stays valid until exp.
func (ctrl *AuthController) Logout(c echo.Context) error {
	ctrl.cookies(c).Delete(ctrl.sessionCfg.CookieName)
	return utils.SuccessResponse(c, nil, "Logged out", http.StatusOK)
}

func (ctrl *AuthController) Me(c echo.Context) error {
	payload, err := utils.GetSessionFromContext(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.NewUserProfileDTO(payload), "Profile", http.StatusOK)
}

func (ctrl *AuthController) Scope(c echo.Context) error {
	branchID, err := authz.BranchScope(c)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.BranchScopeDTO{BranchID: branchID, Global: branchID == nil}, "Scope resolved", http.StatusOK)
}

func (ctrl *AuthController) issueSession(c echo.Context, account *entities.Account, ttl time.Duration, message string) error {
	payload := services.SessionPayloadFromAccount(account)
	token, err := ctrl.jwtSvc.Sign(payload, ttl)
	if err != nil {
		ctrl.logger.Error("issueSession: signing failed", zap.String("sub", account.ID), zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	ctrl.cookies(c).Set(ctrl.sessionCfg.CookieName, token, ttl)

	ctrl.logger.Info("session issued",
		zap.String("sub", account.ID),
		zap.String("role", account.Role),
		zap.Duration("ttl", ttl),
	)

	return utils.SuccessResponse(c, dto.AuthResponseDTO{
		User:      dto.NewUserProfileDTO(&payload),
		ExpiresAt: time.Now().Add(ttl).Unix(),
	}, message, http.StatusOK)
}
