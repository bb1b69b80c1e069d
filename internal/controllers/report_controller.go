package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"hr-reports/internal/dto"
	"hr-reports/internal/entities"
	"hr-reports/internal/services"
	apperrors "hr-reports/pkg/errors"
	"hr-reports/pkg/utils"
)

const (
	defaultReportPageSize = 50
	xlsxDateFormat        = "02.01.2006"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (c *ReportController) GetReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var query dto.ReportQueryDTO
	if err := ctx.Bind(&query); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "invalid query parameters", err), c.logger)
	}
	if err := ctx.Validate(&query); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	filter := buildReportFilter(query)
	c.logger.Debug("report requested",
		zap.Stringp("department", filter.DepartmentName),
		zap.String("format", query.Format),
	)

	if query.Format == "xlsx" {
		rows, _, err := c.reportService.GetReportForExport(reqCtx, filter)
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		return c.respondWithXLSX(ctx, rows)
	}

	rows, total, err := c.reportService.GetReportDTOs(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, rows, "report generated", http.StatusOK, total)
}

func buildReportFilter(query dto.ReportQueryDTO) entities.ReportFilter {
	filter := entities.ReportFilter{
		Page:    query.Page,
		PerPage: query.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = defaultReportPageSize
	}
	if query.Department != "" {
		dept := query.Department
		filter.DepartmentName = &dept
	}
	return filter
}

var reportHeaders = []string{
	"Emp No", "First Name", "Last Name", "Title", "Dept No", "Department", "From Date", "Salary",
}

func reportRowToSlice(row entities.ReportRow) []interface{} {
	return []interface{}{
		row.EmpNo, row.FirstName, row.LastName, row.Title,
		row.DeptNo, row.DeptName, row.FromDate.Format(xlsxDateFormat), row.Salary,
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, rows []entities.ReportRow) error {
	f := excelize.NewFile()
	sheet := "Employee Report"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "H1", style)

	for i, item := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := reportRowToSlice(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "C", 18)
	f.SetColWidth(sheet, "D", "D", 24)
	f.SetColWidth(sheet, "F", "F", 24)

	fileName := fmt.Sprintf("employee_report_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
