package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"hr-reports/internal/dto"
	"hr-reports/internal/entities"
	"hr-reports/internal/repositories"
)

const reportDateFormat = "2006-01-02"

type ReportServiceInterface interface {
	GetReportDTOs(ctx context.Context, filter entities.ReportFilter) ([]dto.ReportRowDTO, uint64, error)
	GetReportForExport(ctx context.Context, filter entities.ReportFilter) ([]entities.ReportRow, uint64, error)
}

type reportService struct {
	reportRepo repositories.ReportRepositoryInterface
	cache      repositories.CacheRepositoryInterface
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// NewReportService wires the report repository with an optional cache; pass
// a nil cache to serve every page from the database.
func NewReportService(
	reportRepo repositories.ReportRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) ReportServiceInterface {
	return &reportService{
		reportRepo: reportRepo,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

type cachedReport struct {
	Rows  []dto.ReportRowDTO `json:"rows"`
	Total uint64             `json:"total"`
}

// reportCacheKey escapes the department segment so a name containing the
// key delimiter cannot collide with another filter's key. The unescaped "*"
// stands for the unfiltered report and cannot be produced by escaping.
func reportCacheKey(filter entities.ReportFilter) string {
	dept := "*"
	if filter.DepartmentName != nil {
		dept = url.QueryEscape(*filter.DepartmentName)
	}
	return fmt.Sprintf("report:%s:p%d:n%d", dept, filter.Page, filter.PerPage)
}

func mapReportRow(row entities.ReportRow) dto.ReportRowDTO {
	return dto.ReportRowDTO{
		EmpNo:     row.EmpNo,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Title:     row.Title,
		DeptNo:    row.DeptNo,
		DeptName:  row.DeptName,
		FromDate:  row.FromDate.Format(reportDateFormat),
		Salary:    row.Salary,
	}
}

func (s *reportService) GetReportDTOs(ctx context.Context, filter entities.ReportFilter) ([]dto.ReportRowDTO, uint64, error) {
	key := reportCacheKey(filter)
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key); err == nil {
			var cached cachedReport
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached.Rows, cached.Total, nil
			}
			s.logger.Warn("dropping unreadable report cache entry", zap.String("key", key))
		}
	}

	items, total, err := s.reportRepo.GetReport(ctx, filter)
	if err != nil {
		s.logger.Error("report query failed", zap.Error(err))
		return nil, 0, err
	}

	dtos := make([]dto.ReportRowDTO, len(items))
	for i, item := range items {
		dtos[i] = mapReportRow(item)
	}

	if s.cache != nil {
		payload, err := json.Marshal(cachedReport{Rows: dtos, Total: total})
		if err == nil {
			if err := s.cache.Set(ctx, key, string(payload), s.cacheTTL); err != nil {
				s.logger.Warn("report cache write failed", zap.Error(err))
			}
		}
	}

	return dtos, total, nil
}

// GetReportForExport returns raw unpaginated rows for the XLSX sink. Exports
// bypass the cache.
func (s *reportService) GetReportForExport(ctx context.Context, filter entities.ReportFilter) ([]entities.ReportRow, uint64, error) {
	filter.Page = 0
	filter.PerPage = 0
	return s.reportRepo.GetReport(ctx, filter)
}
