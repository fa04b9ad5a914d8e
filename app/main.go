// Файл: main.go

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"fitness-center/internal/routes"
	"fitness-center/pkg/config"
	"fitness-center/pkg/customvalidator"
	"fitness-center/pkg/database/mongodb"
	apperrors "fitness-center/pkg/errors"
	applogger "fitness-center/pkg/logger"
	appmiddleware "fitness-center/pkg/middleware"
	"fitness-center/pkg/service"
	"fitness-center/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Конфиг и логгер
	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.FilePath)
	defer func() { _ = logger.Sync() }()

	e := echo.New()
	e.HideBanner = true

	// 2. Middleware
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "internal server error", err, nil)
				_ = utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(appmiddleware.RequestLogger(logger.Named("http")))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "X-Branch-ID"},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Retry-After", "X-RateLimit-Limit", "X-RateLimit-Remaining", echo.HeaderXRequestID},
	}))

	// 3. Валидатор
	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("failed to register validation rules", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	// 4. Хранилища
	mongoClient, db, err := mongodb.ConnectDB(ctx, cfg.Mongo.URI, cfg.Mongo.Database, logger)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err),
			zap.String("hosts", mongodb.Hosts(cfg.Mongo.URI)),
			zap.String("database", cfg.Mongo.Database),
		)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	// 5. Сессии и роуты
	jwtSvc := service.NewJWTService(cfg.Session.SecretKey, logger.Named("session"))

	loggers := &routes.Loggers{
		Main: logger,
		Auth: logger.Named("auth"),
	}
	routes.InitRouter(ctx, e, db, redisClient, jwtSvc, loggers, cfg)

	// 6. Запуск
	go func() {
		logger.Info("server started", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
