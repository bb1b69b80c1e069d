package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hr-reports/internal/controllers"
	"hr-reports/internal/repositories"
	"hr-reports/internal/services"
)

func runDepartmentRouter(g *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	departmentRepository := repositories.NewDepartmentRepository(dbConn, logger)
	assignmentRepository := repositories.NewAssignmentRepository(dbConn, logger)
	departmentService := services.NewDepartmentService(departmentRepository, assignmentRepository, logger)
	departmentController := controllers.NewDepartmentController(departmentService, logger)

	g.GET("/departments", departmentController.GetDepartments)
	g.GET("/departments/:dept_no", departmentController.FindDepartment)
}
