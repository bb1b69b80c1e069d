package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hr-reports/internal/controllers"
	"hr-reports/internal/repositories"
	"hr-reports/internal/services"
)

func runEmployeeRouter(g *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	employeeRepository := repositories.NewEmployeeRepository(dbConn, logger)
	titleRepository := repositories.NewTitleRepository(dbConn, logger)
	salaryRepository := repositories.NewSalaryRepository(dbConn, logger)
	employeeService := services.NewEmployeeService(employeeRepository, titleRepository, salaryRepository, logger)
	employeeController := controllers.NewEmployeeController(employeeService, logger)

	g.GET("/employees", employeeController.GetEmployees)
	g.GET("/employees/:emp_no", employeeController.FindEmployee)
}
