package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hr-reports/internal/dto"
	"hr-reports/internal/entities"
	apperrors "hr-reports/pkg/errors"
	"hr-reports/pkg/utils"
)

type fakeReportService struct {
	lastFilter entities.ReportFilter
	rows       []dto.ReportRowDTO
	err        error
}

func (f *fakeReportService) GetReportDTOs(_ context.Context, filter entities.ReportFilter) ([]dto.ReportRowDTO, uint64, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.rows, uint64(len(f.rows)), nil
}

func (f *fakeReportService) GetReportForExport(_ context.Context, filter entities.ReportFilter) ([]entities.ReportRow, uint64, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, 0, f.err
	}
	return []entities.ReportRow{}, 0, nil
}

func newReportTestContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = utils.NewValidator(validator.New())
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestReportController_JSON(t *testing.T) {
	svc := &fakeReportService{rows: []dto.ReportRowDTO{
		{EmpNo: 10005, FirstName: "Kyoichi", LastName: "Maliniak", Title: "Staff",
			DeptNo: "d003", DeptName: "Human Resources", FromDate: "1989-09-12", Salary: 78228},
	}}
	controller := NewReportController(svc, zap.NewNop())

	ctx, rec := newReportTestContext(t, "/api/report")
	require.NoError(t, controller.GetReport(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp utils.HttpResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	require.NotNil(t, resp.Total)
	assert.EqualValues(t, 1, *resp.Total)

	// Defaults applied when no paging is requested.
	assert.Equal(t, 1, svc.lastFilter.Page)
	assert.Equal(t, defaultReportPageSize, svc.lastFilter.PerPage)
	assert.Nil(t, svc.lastFilter.DepartmentName)
}

func TestReportController_DepartmentFilterPassedThrough(t *testing.T) {
	svc := &fakeReportService{}
	controller := NewReportController(svc, zap.NewNop())

	ctx, rec := newReportTestContext(t, "/api/report?department=Human+Resources&page=2&limit=5")
	require.NoError(t, controller.GetReport(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, svc.lastFilter.DepartmentName)
	assert.Equal(t, "Human Resources", *svc.lastFilter.DepartmentName)
	assert.Equal(t, 2, svc.lastFilter.Page)
	assert.Equal(t, 5, svc.lastFilter.PerPage)
}

func TestReportController_RejectsUnknownFormat(t *testing.T) {
	controller := NewReportController(&fakeReportService{}, zap.NewNop())

	ctx, rec := newReportTestContext(t, "/api/report?format=csv")
	require.NoError(t, controller.GetReport(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportController_XLSXHeaders(t *testing.T) {
	controller := NewReportController(&fakeReportService{}, zap.NewNop())

	ctx, rec := newReportTestContext(t, "/api/report?format=xlsx")
	require.NoError(t, controller.GetReport(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get(echo.HeaderContentType),
	)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
}

func TestReportController_ConnectionErrorMapsTo503(t *testing.T) {
	svc := &fakeReportService{err: apperrors.NewConnectionError(assert.AnError)}
	controller := NewReportController(svc, zap.NewNop())

	ctx, rec := newReportTestContext(t, "/api/report")
	require.NoError(t, controller.GetReport(ctx))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp utils.HttpResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Status)
}
