package controllers

import (
	"net/http"

	"fitness-center/internal/dto"
	"fitness-center/internal/services"
	apperrors "fitness-center/pkg/errors"
	"fitness-center/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const settingsTimeoutSeconds = 5

type SettingsController struct {
	settingsService services.SettingsServiceInterface
	logger          *zap.Logger
}

func NewSettingsController(settingsService services.SettingsServiceInterface, logger *zap.Logger) *SettingsController {
	return &SettingsController{settingsService: settingsService, logger: logger}
}

func (ctrl *SettingsController) GetRateLimit(c echo.Context) error {
	ctx, cancel := utils.ContextWithTimeout(c, settingsTimeoutSeconds)
	defer cancel()

	res, err := ctrl.settingsService.GetRateLimit(ctx)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Rate limit settings", http.StatusOK)
}

func (ctrl *SettingsController) UpdateRateLimit(c echo.Context) error {
	session, err := utils.GetSessionFromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.RateLimitSettingsDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid settings payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	ctx, cancel := utils.ContextWithTimeout(c, settingsTimeoutSeconds)
	defer cancel()

	res, err := ctrl.settingsService.UpdateRateLimit(ctx, payload, session.Subject)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Rate limit settings updated", http.StatusOK)
}
