package seeders

import (
	"context"
	"fmt"

	"hr-reports/internal/entities"
	"hr-reports/internal/repositories"
)

// decodeTitles maps CSV records in the layout emp_no,title,from_date,to_date.
func decodeTitles(records [][]string) ([]entities.Title, error) {
	titles := make([]entities.Title, 0, len(records))
	for i, rec := range records {
		if len(rec) != 4 {
			return nil, fmt.Errorf("titles row %d: expected 4 fields, got %d", i+2, len(rec))
		}
		empNo, err := parseEmpNo(rec[0])
		if err != nil {
			return nil, fmt.Errorf("titles row %d: %w", i+2, err)
		}
		fromDate, err := parseDate(rec[2])
		if err != nil {
			return nil, fmt.Errorf("titles row %d: %w", i+2, err)
		}
		toDate, err := parseNullDate(rec[3])
		if err != nil {
			return nil, fmt.Errorf("titles row %d: %w", i+2, err)
		}
		titles = append(titles, entities.Title{
			EmpNo:    empNo,
			Title:    rec[1],
			FromDate: fromDate,
			ToDate:   toDate,
		})
	}
	return titles, nil
}

func seedTitles(ctx context.Context, repo repositories.TitleRepositoryInterface, path string) (int64, error) {
	records, err := readCSVFile(path)
	if err != nil {
		return 0, err
	}
	titles, err := decodeTitles(records)
	if err != nil {
		return 0, err
	}
	return repo.BulkInsert(ctx, titles)
}
