package routes

import (
	"fitness-center/internal/authz"
	"fitness-center/internal/controllers"
	"fitness-center/internal/services"
	"fitness-center/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runSettingsRouter(api *echo.Group, settingsService services.SettingsServiceInterface, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	ctrl := controllers.NewSettingsController(settingsService, logger)

	settingsGroup := api.Group("/settings", authMW.Require(authz.SuperAdminOnly...))
	{
		settingsGroup.GET("/rate-limit", ctrl.GetRateLimit)
		settingsGroup.PUT("/rate-limit", ctrl.UpdateRateLimit)
	}
}
