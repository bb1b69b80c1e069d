package seeders

import (
	"context"
	"fmt"
	"strconv"

	"hr-reports/internal/entities"
	"hr-reports/internal/repositories"
)

// decodeSalaries maps CSV records in the layout emp_no,salary,from_date,to_date.
func decodeSalaries(records [][]string) ([]entities.Salary, error) {
	salaries := make([]entities.Salary, 0, len(records))
	for i, rec := range records {
		if len(rec) != 4 {
			return nil, fmt.Errorf("salaries row %d: expected 4 fields, got %d", i+2, len(rec))
		}
		empNo, err := parseEmpNo(rec[0])
		if err != nil {
			return nil, fmt.Errorf("salaries row %d: %w", i+2, err)
		}
		amount, err := strconv.ParseInt(rec[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("salaries row %d: bad salary %q: %w", i+2, rec[1], err)
		}
		fromDate, err := parseDate(rec[2])
		if err != nil {
			return nil, fmt.Errorf("salaries row %d: %w", i+2, err)
		}
		toDate, err := parseNullDate(rec[3])
		if err != nil {
			return nil, fmt.Errorf("salaries row %d: %w", i+2, err)
		}
		salaries = append(salaries, entities.Salary{
			EmpNo:    empNo,
			Salary:   amount,
			FromDate: fromDate,
			ToDate:   toDate,
		})
	}
	return salaries, nil
}

func seedSalaries(ctx context.Context, repo repositories.SalaryRepositoryInterface, path string) (int64, error) {
	records, err := readCSVFile(path)
	if err != nil {
		return 0, err
	}
	salaries, err := decodeSalaries(records)
	if err != nil {
		return 0, err
	}
	return repo.BulkInsert(ctx, salaries)
}
