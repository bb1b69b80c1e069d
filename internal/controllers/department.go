package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hr-reports/internal/services"
	"hr-reports/pkg/utils"
)

type DepartmentController struct {
	departmentService *services.DepartmentService
	logger            *zap.Logger
}

func NewDepartmentController(service *services.DepartmentService, logger *zap.Logger) *DepartmentController {
	return &DepartmentController{departmentService: service, logger: logger}
}

func (c *DepartmentController) GetDepartments(ctx echo.Context) error {
	departments, err := c.departmentService.GetDepartments(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, departments, "departments listed", http.StatusOK, uint64(len(departments)))
}

func (c *DepartmentController) FindDepartment(ctx echo.Context) error {
	res, err := c.departmentService.FindDepartment(ctx.Request().Context(), ctx.Param("dept_no"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "department found", http.StatusOK)
}
