package routes

import (
	"fitness-center/internal/authz"
	"fitness-center/internal/controllers"
	"fitness-center/internal/services"
	"fitness-center/pkg/config"
	"fitness-center/pkg/middleware"
	"fitness-center/pkg/ratelimit"
	"fitness-center/pkg/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runAuthRouter(api *echo.Group, authService services.AuthServiceInterface, jwtSvc service.JWTService, limiter *ratelimit.Limiter, authMW *middleware.AuthMiddleware, logger *zap.Logger, cfg *config.Config) {
	authCtrl := controllers.NewAuthController(authService, jwtSvc, cfg.Session, logger)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login, middleware.RateLimit(limiter, "login", logger))
		authGroup.POST("/send_code", authCtrl.SendCode, middleware.RateLimit(limiter, "send_code", logger))
		authGroup.POST("/verify_code", authCtrl.VerifyCode, middleware.RateLimit(limiter, "verify_code", logger))
		authGroup.POST("/logout", authCtrl.Logout)
		authGroup.GET("/me", authCtrl.Me, authMW.Require(authz.AnyRole...))
		authGroup.GET("/scope", authCtrl.Scope, authMW.Require(authz.AnyRole...))
	}
}
