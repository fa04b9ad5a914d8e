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

type AccountController struct {
	accountService services.AccountServiceInterface
	logger         *zap.Logger
}

func NewAccountController(accountService services.AccountServiceInterface, logger *zap.Logger) *AccountController {
	return &AccountController{accountService: accountService, logger: logger}
}

func (ctrl *AccountController) Create(c echo.Context) error {
	session, err := utils.GetSessionFromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.CreateAccountDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid account payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	res, err := ctrl.accountService.Create(c.Request().Context(), session, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, res, "Account created", http.StatusCreated)
}
