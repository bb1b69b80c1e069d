package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hr-reports/internal/controllers"
	"hr-reports/internal/repositories"
	"hr-reports/internal/services"
	"hr-reports/pkg/config"
)

func runReportRouter(
	g *echo.Group,
	dbConn *pgxpool.Pool,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cfg *config.Config,
) {
	reportRepository := repositories.NewReportRepository(dbConn)
	reportService := services.NewReportService(reportRepository, cacheRepo, cfg.Report.CacheTTL, logger)
	reportController := controllers.NewReportController(reportService, logger)

	g.GET("/report", reportController.GetReport)
}
