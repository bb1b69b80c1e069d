package main

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"hr-reports/internal/routes"
	"hr-reports/pkg/config"
	"hr-reports/pkg/database/postgresql"
	apperrors "hr-reports/pkg/errors"
	applogger "hr-reports/pkg/logger"
	appmiddleware "hr-reports/pkg/middleware"
	"hr-reports/pkg/utils"
)

func main() {
	cfg := config.New()
	logger := applogger.NewLogger(cfg.LogPath)
	defer logger.Sync()

	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewValidator(validator.New())

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
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "internal server error", err)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(middleware.CORS())
	e.Use(appmiddleware.RequestLogger(logger))

	ctx := context.Background()
	dbConn, err := postgresql.Connect(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer dbConn.Close()

	// Redis is optional; without it the report is served uncached.
	var redisClient *redis.Client
	if cfg.Redis.Address != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if _, err := redisClient.Ping(ctx).Result(); err != nil {
			logger.Warn("redis unreachable, report cache disabled", zap.Error(err))
			redisClient = nil
		}
	}

	routes.InitRouter(e, dbConn, redisClient, logger, cfg)

	logger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
