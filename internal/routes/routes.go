package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hr-reports/internal/repositories"
	"hr-reports/pkg/config"
)

// InitRouter wires repositories, services and controllers onto the echo
// instance. redisClient may be nil; the report then runs uncached.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	logger *zap.Logger,
	cfg *config.Config,
) {
	var cacheRepo repositories.CacheRepositoryInterface
	if redisClient != nil {
		cacheRepo = repositories.NewRedisCacheRepository(redisClient)
	}

	api := e.Group("/api")

	runEmployeeRouter(api, dbConn, logger)
	runDepartmentRouter(api, dbConn, logger)
	runReportRouter(api, dbConn, cacheRepo, logger, cfg)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
}
