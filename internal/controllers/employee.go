package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hr-reports/internal/services"
	apperrors "hr-reports/pkg/errors"
	"hr-reports/pkg/utils"
)

type EmployeeController struct {
	employeeService *services.EmployeeService
	logger          *zap.Logger
}

func NewEmployeeController(service *services.EmployeeService, logger *zap.Logger) *EmployeeController {
	return &EmployeeController{employeeService: service, logger: logger}
}

func (c *EmployeeController) GetEmployees(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	employees, total, err := c.employeeService.GetEmployees(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, employees, "employees listed", http.StatusOK, total)
}

func (c *EmployeeController) FindEmployee(ctx echo.Context) error {
	empNo, err := strconv.ParseInt(ctx.Param("emp_no"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "invalid employee number", err), c.logger)
	}
	res, err := c.employeeService.FindEmployee(ctx.Request().Context(), empNo)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "employee found", http.StatusOK)
}
