package routes

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"fitness-center/internal/repositories"
	"fitness-center/internal/services"
	"fitness-center/pkg/config"
	"fitness-center/pkg/middleware"
	"fitness-center/pkg/ratelimit"
	"fitness-center/pkg/service"
)

type Loggers struct {
	Main *zap.Logger
	Auth *zap.Logger
}

// Services is everything the HTTP layer needs besides the token service.
type Services struct {
	Auth     services.AuthServiceInterface
	Accounts services.AccountServiceInterface
	Settings services.SettingsServiceInterface
}

func InitRouter(ctx context.Context, e *echo.Echo, db *mongo.Database, redisClient *redis.Client, jwtSvc service.JWTService, loggers *Loggers, cfg *config.Config) {
	loggers.Main.Info("InitRouter: building routes")

	// --- 1. РЕПОЗИТОРИИ ---
	accountRepo := repositories.NewAccountRepository(db, loggers.Auth)
	if err := accountRepo.EnsureIndexes(ctx); err != nil {
		loggers.Main.Warn("InitRouter: could not ensure account indexes", zap.Error(err))
	}
	settingsRepo := repositories.NewSettingsRepository(db)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- 2. СЕРВИСЫ ---
	notificationService := services.NewMockNotificationService(loggers.Auth)
	svcs := Services{
		Auth:     services.NewAuthService(accountRepo, cacheRepo, notificationService, loggers.Auth, &cfg.Auth),
		Accounts: services.NewAccountService(accountRepo, loggers.Auth),
		Settings: services.NewSettingsService(settingsRepo, cfg.RateLimit, loggers.Main),
	}

	RegisterRoutes(e, svcs, jwtSvc, loggers, cfg)

	loggers.Main.Info("InitRouter: routes ready")
}

// RegisterRoutes mounts the API on e. One limiter instance serves every
// throttled route; buckets are keyed by operation so routes do not share counts.
func RegisterRoutes(e *echo.Echo, svcs Services, jwtSvc service.JWTService, loggers *Loggers, cfg *config.Config) *ratelimit.Limiter {
	limiter := ratelimit.New(svcs.Settings, ratelimit.Settings{
		Enabled:     cfg.RateLimit.Enabled,
		Window:      cfg.RateLimit.Window,
		MaxRequests: cfg.RateLimit.MaxRequests,
	}, loggers.Main)

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, cfg.Session.CookieName, cfg.Session.CookieSecure, loggers.Auth)

	runAuthRouter(api, svcs.Auth, jwtSvc, limiter, authMW, loggers.Auth, cfg)
	runAccountRouter(api, svcs.Accounts, authMW, loggers.Auth)
	runSettingsRouter(api, svcs.Settings, authMW, loggers.Main)

	return limiter
}
