package routes

import (
	"fitness-center/internal/authz"
	"fitness-center/internal/controllers"
	"fitness-center/internal/services"
	"fitness-center/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runAccountRouter(api *echo.Group, accountService services.AccountServiceInterface, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	ctrl := controllers.NewAccountController(accountService, logger)

	accountGroup := api.Group("/accounts", authMW.Require(authz.Staff...))
	{
		accountGroup.POST("", ctrl.Create)
	}
}
